package styledstr

import "unicode/utf8"

// StyledString is an owned, heap-resident styled string: growable text
// plus the spans covering it. It is the result type of every parser and
// of the builders. Use View to obtain a borrowed StyledView for read-only
// operations (SplitAt, Lines, sub-slicing) without copying.
type StyledString struct {
	text  string
	spans []Span
}

// NewStyledString returns the empty styled string.
func NewStyledString() StyledString {
	return StyledString{}
}

// Text returns the full text.
func (s StyledString) Text() string {
	return s.text
}

// Len returns the number of text bytes.
func (s StyledString) Len() int {
	return len(s.text)
}

// IsEmpty reports whether s has no text.
func (s StyledString) IsEmpty() bool {
	return len(s.text) == 0
}

// IsPlain reports whether s has at most one span and that span (if any)
// carries the default style.
func (s StyledString) IsPlain() bool {
	return len(s.spans) == 0 || (len(s.spans) == 1 && s.spans[0].Style.IsDefault())
}

// View returns a StyledView over the whole of s.
func (s StyledString) View() StyledView {
	return NewStyledView(s.text, s.spans)
}

// Spans returns s's spans as (text, style) pairs.
func (s StyledString) Spans() []SpanStr {
	return s.View().Spans()
}

// Equal reports whether s and other have identical text and,
// span-for-span, structurally equal (post-normalization) styles over
// identical ranges. This is the equality used by every round-trip law in
// this package.
func (s StyledString) Equal(other StyledString) bool {
	if s.text != other.text {
		return false
	}
	if len(s.spans) != len(other.spans) {
		return false
	}
	for i, sp := range s.spans {
		o := other.spans[i]
		if sp.Start != o.Start || sp.Length != o.Length || !sp.Style.Equal(o.Style) {
			return false
		}
	}
	return true
}

// PushText appends text under the given style, coalescing with the
// trailing span when possible. It is the primitive every builder and
// parser uses to grow a StyledString.
func (s *StyledString) PushText(text string, style Style) {
	if text == "" {
		return
	}
	s.spans = pushSpan(s.spans, len(s.text), style, len(text))
	s.text += text
}

// Append concatenates other onto s, rebasing other's span offsets by
// len(s.text) and coalescing across the join point if the styles match.
func (s StyledString) Append(other StyledView) StyledString {
	out := StyledString{text: s.text + other.Text(), spans: append([]Span(nil), s.spans...)}
	base := len(s.text)
	for _, sp := range other.clippedSpans() {
		sp.Start += base
		out.spans = append(out.spans, sp)
	}
	out.spans = coalesceAll(out.spans)
	return out
}

// PopLastChar removes the last character (UTF-8 aware) from s, shrinking
// (or dropping) the trailing span accordingly. It returns the removed rune
// and the style it carried, and ok=false if s was empty.
func (s *StyledString) PopLastChar() (r rune, style Style, ok bool) {
	if len(s.text) == 0 {
		return 0, Style{}, false
	}
	r, size := utf8.DecodeLastRuneInString(s.text)
	last := &s.spans[len(s.spans)-1]
	style = last.Style
	s.text = s.text[:len(s.text)-size]
	last.Length -= size
	if last.Length == 0 {
		s.spans = s.spans[:len(s.spans)-1]
	}
	return r, style, true
}

// SplitAt splits s at byte position mid, per StyledView.SplitAt.
func (s StyledString) SplitAt(mid int) (StyledView, StyledView, error) {
	return s.View().SplitAt(mid)
}

// Lines splits s's text on '\n', per StyledView.Lines.
func (s StyledString) Lines() []StyledView {
	return s.View().Lines()
}

// Span returns the i-th span.
func (s StyledString) Span(i int) (SpanStr, bool) {
	return s.View().Span(i)
}

// SpanAt returns the span covering byte position pos.
func (s StyledString) SpanAt(pos int) (SpanStr, bool) {
	return s.View().SpanAt(pos)
}
