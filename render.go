package styledstr

import "github.com/rivo/uniseg"

// BreakKind distinguishes why a RenderedLine ends where it does.
type BreakKind int

const (
	// BreakNone means the line ends naturally: at a '\n' in the source
	// text, or at the end of input.
	BreakNone BreakKind = iota
	// BreakHard means the line is a non-terminal piece of a single
	// source line that RenderLines split to fit maxWidth: the source
	// line continues on the next RenderedLine.
	BreakHard
)

// RenderedLine is one physical line produced by RenderLines: a styled
// sub-view, its display width in terminal columns, and how it ended.
type RenderedLine struct {
	View  StyledView
	Width int
	Break BreakKind
}

// DisplayWidth returns the grapheme-cluster-aware display width of v's
// text, in terminal columns (wide CJK clusters count 2, combining marks
// and other zero-width clusters count 0).
func (v StyledView) DisplayWidth() int {
	return uniseg.StringWidth(v.Text())
}

// RenderLines splits v into physical lines: first on explicit '\n',
// exactly as Lines does, then, if maxWidth is positive, hard-wraps each of
// those at grapheme cluster boundaries so that no returned line's display
// width exceeds maxWidth. maxWidth <= 0 means no wrapping: RenderLines then
// returns exactly one RenderedLine per Lines() result.
//
// Wrapping never splits a grapheme cluster, so combining marks and other
// multi-rune clusters always stay with their base character; a
// zero-display-width cluster never by itself forces a break.
func RenderLines(v StyledView, maxWidth int) []RenderedLine {
	var out []RenderedLine
	for _, line := range v.Lines() {
		if maxWidth <= 0 {
			out = append(out, RenderedLine{View: line, Width: line.DisplayWidth()})
			continue
		}
		out = append(out, wrapLine(line, maxWidth)...)
	}
	return out
}

// wrapLine hard-wraps a single (already '\n'-free) line to maxWidth
// columns.
func wrapLine(line StyledView, maxWidth int) []RenderedLine {
	text := line.Text()
	if text == "" {
		return []RenderedLine{{View: line, Width: 0}}
	}

	var breaks []int
	width := 0
	pos := 0
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		cw := gr.Width()
		if width > 0 && cw > 0 && width+cw > maxWidth {
			breaks = append(breaks, pos)
			width = 0
		}
		width += cw
		_, pos = gr.Positions()
	}
	breaks = append(breaks, len(text))

	out := make([]RenderedLine, 0, len(breaks))
	start := 0
	rest := line
	for k, brk := range breaks {
		sub, r, err := rest.SplitAt(brk - start)
		if err != nil {
			// Grapheme-cluster boundaries are always UTF-8 character
			// boundaries, so SplitAt never actually fails here.
			sub = rest
		}
		kind := BreakHard
		if k == len(breaks)-1 {
			kind = BreakNone
		}
		out = append(out, RenderedLine{View: sub, Width: sub.DisplayWidth(), Break: kind})
		rest = r
		start = brk
	}
	return out
}
