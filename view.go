package styledstr

import "strings"

// StyledView is a borrowed view over a styled string: a text slice plus
// the spans covering it. Sub-slicing (SplitAt, Lines) never
// copies text or spans; it narrows the view's [start, end) window and
// clips the boundary spans on read.
//
// A StyledView is immutable and safe to share; it borrows the text and
// span slice it was built from and must not outlive them (in Go terms:
// keep the owning StyledString, or the string literal, alive for as long
// as any view over it is in use).
type StyledView struct {
	text  string
	spans []Span
	start int
	end   int
}

// NewStyledView builds a view covering the whole of text, given its spans
// in ascending, gap-free, non-overlapping order. Callers that construct
// spans by hand are responsible for maintaining that invariant; every
// parser and builder in this package does so automatically.
func NewStyledView(text string, spans []Span) StyledView {
	return StyledView{text: text, spans: spans, start: 0, end: len(text)}
}

// Text returns the view's visible text.
func (v StyledView) Text() string {
	return v.text[v.start:v.end]
}

// Len returns the number of visible bytes.
func (v StyledView) Len() int {
	return v.end - v.start
}

// IsEmpty reports whether the view covers no text.
func (v StyledView) IsEmpty() bool {
	return v.start == v.end
}

// IsPlain reports whether the view has at most one visible span and that
// span (if any) carries the default style.
func (v StyledView) IsPlain() bool {
	spans := v.clippedSpans()
	if len(spans) == 0 {
		return true
	}
	return len(spans) == 1 && spans[0].Style.IsDefault()
}

// clippedSpans returns the spans intersecting [v.start, v.end), each
// clipped to that range and with Start rebased to be relative to v.start.
func (v StyledView) clippedSpans() []Span {
	var out []Span
	for _, sp := range v.spans {
		if clipped, ok := sp.clip(v.start, v.end); ok {
			clipped.Start -= v.start
			out = append(out, clipped)
		}
	}
	return out
}

// SpanStr is a single (text, style) pair yielded by Spans.
type SpanStr struct {
	Text  string
	Style Style
}

// Spans returns the view's spans as (text, style) pairs, in order.
func (v StyledView) Spans() []SpanStr {
	clipped := v.clippedSpans()
	out := make([]SpanStr, len(clipped))
	for i, sp := range clipped {
		out[i] = SpanStr{Text: v.text[v.start+sp.Start : v.start+sp.End()], Style: sp.Style}
	}
	return out
}

// Span returns the i-th span (0-based, in the view's local coordinates).
func (v StyledView) Span(i int) (SpanStr, bool) {
	spans := v.Spans()
	if i < 0 || i >= len(spans) {
		return SpanStr{}, false
	}
	return spans[i], true
}

// SpanAt returns the span covering local byte position pos, if pos is
// within the view.
func (v StyledView) SpanAt(pos int) (SpanStr, bool) {
	if pos < 0 || pos >= v.Len() {
		return SpanStr{}, false
	}
	for _, sp := range v.clippedSpans() {
		if pos >= sp.Start && pos < sp.End() {
			return SpanStr{Text: v.text[v.start+sp.Start : v.start+sp.End()], Style: sp.Style}, true
		}
	}
	return SpanStr{}, false
}

// SplitAt splits the view at local byte position mid into [0, mid) and
// [mid, end). mid must lie on a UTF-8 character boundary and within
// [0, Len()]; a boundary span straddling mid is truncated, via the view's
// start/end offsets, in both halves without copying.
func (v StyledView) SplitAt(mid int) (StyledView, StyledView, error) {
	if mid < 0 || mid > v.Len() {
		return StyledView{}, StyledView{}, &PositionNotOnCharBoundary{Pos: mid}
	}
	abs := v.start + mid
	if !validateUTF8Boundary(v.text, abs) {
		return StyledView{}, StyledView{}, &PositionNotOnCharBoundary{Pos: mid}
	}
	lhs := StyledView{text: v.text, spans: v.spans, start: v.start, end: abs}
	rhs := StyledView{text: v.text, spans: v.spans, start: abs, end: v.end}
	return lhs, rhs, nil
}

// Lines splits the view's text on '\n'. Each yielded view has its
// terminating '\n' removed, and, if that '\n' was itself preceded by '\r',
// the '\r' is removed as well (the CR+LF pair collapses to a single line
// break; a lone trailing '\r' with no following '\n' is left untouched,
// since it is not "immediately preceded" by a line feed).
func (v StyledView) Lines() []StyledView {
	text := v.Text()
	if text == "" {
		return nil
	}
	var lines []StyledView
	abs := v.start
	for {
		nl := strings.IndexByte(v.text[abs:v.end], '\n')
		if nl < 0 {
			lines = append(lines, StyledView{text: v.text, spans: v.spans, start: abs, end: v.end})
			break
		}
		lineEnd := abs + nl
		if lineEnd > abs && v.text[lineEnd-1] == '\r' {
			lineEnd--
		}
		lines = append(lines, StyledView{text: v.text, spans: v.spans, start: abs, end: lineEnd})
		abs += nl + 1
		if abs > v.end {
			break
		}
		if abs == v.end {
			// Trailing '\n': line count is count('\n') without an extra
			// trailing empty line when the text ends in '\n'.
			break
		}
	}
	return lines
}

// Append returns a new owned StyledString equal to v with other's text and
// spans concatenated on; the join point coalesces if both sides' boundary
// spans share a normalized style.
func (v StyledView) Append(other StyledView) StyledString {
	return StyledString{text: v.Text(), spans: append([]Span(nil), v.clippedSpans()...)}.Append(other)
}

// ToStyledString copies the view into a new owned StyledString.
func (v StyledView) ToStyledString() StyledString {
	return StyledString{text: v.Text(), spans: v.clippedSpans()}
}
