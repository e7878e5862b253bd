package styledstr

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// TextMismatch is returned by Diff when the two views being compared do not
// carry identical text: the style-diff engine compares styling of two
// renders of the *same* text, not arbitrary text diffing. A snapshot test
// runner confirms text equality on its own before ever calling Diff.
type TextMismatch struct {
	Left  string
	Right string
}

func (e *TextMismatch) Error() string {
	return "styledstr: diff requires identical text on both sides"
}

// DiffRegion is one maximal byte range over which the left and right
// styles differ (after normalization), after whitespace-difference
// suppression and adjacent-region coalescing.
type DiffRegion struct {
	Start int
	End   int
	Left  Style
	Right Style
}

// StyleDiff is the result of comparing two styled renders of identical
// text: the shared text plus the list of regions whose style differs.
type StyleDiff struct {
	Text    string
	Regions []DiffRegion
}

// Diff walks left and right region by region, coalescing adjacent byte
// ranges that carry the same (differing) style pair into a single
// DiffRegion. A region whose text is entirely whitespace is suppressed
// unless the two sides paint different backgrounds there: bold, italic,
// and similar attributes are invisible on whitespace, but a background
// color is not.
func Diff(left, right StyledView) (StyleDiff, error) {
	if left.Text() != right.Text() {
		return StyleDiff{}, &TextMismatch{Left: left.Text(), Right: right.Text()}
	}
	text := left.Text()
	var regions []DiffRegion
	pos := 0
	for pos < len(text) {
		lStyle := styleAtOrDefault(left, pos)
		rStyle := styleAtOrDefault(right, pos)
		start := pos
		for pos < len(text) {
			if !styleAtOrDefault(left, pos).Equal(lStyle) || !styleAtOrDefault(right, pos).Equal(rStyle) {
				break
			}
			_, size := utf8.DecodeRuneInString(text[pos:])
			pos += size
		}
		if lStyle.Equal(rStyle) {
			continue
		}
		region := text[start:pos]
		if isWhitespaceOnly(region) && !backgroundsDiffer(lStyle, rStyle) {
			continue
		}
		regions = append(regions, DiffRegion{Start: start, End: pos, Left: lStyle, Right: rStyle})
	}
	return StyleDiff{Text: text, Regions: regions}, nil
}

func styleAtOrDefault(v StyledView, pos int) Style {
	sp, ok := v.SpanAt(pos)
	if !ok {
		return Style{}
	}
	return sp.Style
}

func backgroundsDiffer(a, b Style) bool {
	abg, aok := a.Background()
	bbg, bok := b.Background()
	if aok != bok {
		return true
	}
	return aok && !abg.Equal(bbg)
}

// isWhitespaceOnly reports whether s consists entirely of the ASCII
// whitespace set {' ', '\t', '\r', '\n'}. This is deliberately narrower
// than unicode.IsSpace: Unicode space separators (U+00A0, U+2003, ...)
// are ordinary content for diff purposes and must not have their styling
// differences suppressed.
func isWhitespaceOnly(s string) bool {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case ' ', '\t', '\r', '\n':
		default:
			return false
		}
	}
	return true
}

// IsEmpty reports whether the diff found no (unsuppressed) style
// differences.
func (d StyleDiff) IsEmpty() bool {
	return len(d.Regions) == 0
}

// highlightA and highlightB are the two alternating region highlight
// styles RenderInline cycles through, so that two adjacent diff regions on
// the same line stay visually distinguishable from one another.
var (
	highlightA = NewStyle().WithForeground(Named(White)).WithBackground(Named(Red))
	highlightB = NewStyle().WithForeground(Named(Black)).WithBackground(Named(Yellow))
)

// RenderInline renders d as an inline ANSI report: one source line per
// row, prefixed "= " for a line with no difference and "> " for a line
// containing at least one, with the differing byte ranges on a "> " line
// colored by the two alternating highlight styles. Unchanged lines more
// than two lines away from every changed line are elided; each consecutive
// run of them collapses to a single "..." row.
func (d StyleDiff) RenderInline() string {
	type lineRange struct{ start, end int }
	var lines []lineRange
	start := 0
	for i := 0; i < len(d.Text); i++ {
		if d.Text[i] == '\n' {
			lines = append(lines, lineRange{start, i})
			start = i + 1
		}
	}
	if start <= len(d.Text) {
		lines = append(lines, lineRange{start, len(d.Text)})
	}

	hasDiff := make([]bool, len(lines))
	for _, r := range d.Regions {
		for i, ln := range lines {
			if r.Start < ln.end && r.End > ln.start {
				hasDiff[i] = true
			}
		}
	}

	const context = 2
	nearDiff := func(i int) bool {
		for k := -context; k <= context; k++ {
			j := i + k
			if j >= 0 && j < len(hasDiff) && hasDiff[j] {
				return true
			}
		}
		return false
	}

	var b strings.Builder
	elided := false
	for i, ln := range lines {
		if !hasDiff[i] && !nearDiff(i) {
			if !elided {
				b.WriteString("...\n")
				elided = true
			}
			continue
		}
		elided = false
		if !hasDiff[i] {
			b.WriteString("= ")
			b.WriteString(d.Text[ln.start:ln.end])
			b.WriteString("\n")
			continue
		}
		b.WriteString("> ")
		b.WriteString(renderDiffLine(d.Text[ln.start:ln.end], ln.start, d.Regions))
		b.WriteString("\n")
	}
	return b.String()
}

func renderDiffLine(lineText string, lineStart int, regions []DiffRegion) string {
	var ss StyledString
	pos := 0
	alt := 0
	for pos < len(lineText) {
		abs := lineStart + pos
		ri := -1
		for i, r := range regions {
			if abs >= r.Start && abs < r.End {
				ri = i
				break
			}
		}
		if ri < 0 {
			_, size := utf8.DecodeRuneInString(lineText[pos:])
			ss.PushText(lineText[pos:pos+size], Style{})
			pos += size
			continue
		}
		end := regions[ri].End - lineStart
		if end > len(lineText) {
			end = len(lineText)
		}
		hi := highlightA
		if alt%2 == 1 {
			hi = highlightB
		}
		ss.PushText(lineText[pos:end], hi)
		alt++
		pos = end
	}
	return FormatAnsi(ss.View())
}

// RenderTable renders d as a fixed-width tabular summary: a header row
// followed by one row per region, with "Positions" occupying 10 columns
// and "Left style"/"Right style" occupying 25 columns each.
func (d StyleDiff) RenderTable() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-10s%-25s%-25s\n", "Positions", "Left style", "Right style")
	for _, r := range d.Regions {
		pos := fmt.Sprintf("%d..%d", r.Start, r.End)
		fmt.Fprintf(&b, "%-10s%-25s%-25s\n", pos, styleSummary(r.Left), styleSummary(r.Right))
	}
	return b.String()
}

func styleSummary(s Style) string {
	tok := s.RichToken()
	if tok == "" {
		return "default"
	}
	if len(tok) > 24 {
		tok = tok[:24]
	}
	return tok
}
