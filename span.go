package styledstr

import "unicode/utf8"

// Span is a contiguous run of text, identified by byte offsets into some
// text buffer, sharing a single Style. Span stores absolute offsets; views
// over a sub-range of the text clip a Span's visible extent on read rather
// than mutating it (see StyledView).
type Span struct {
	Style  Style
	Start  int
	Length int
}

// End returns Start + Length.
func (s Span) End() int {
	return s.Start + s.Length
}

// clip returns the portion of s that falls within [lo, hi), or ok=false if
// s does not intersect that range at all.
func (s Span) clip(lo, hi int) (Span, bool) {
	start := s.Start
	end := s.End()
	if start < lo {
		start = lo
	}
	if end > hi {
		end = hi
	}
	if start >= end {
		return Span{}, false
	}
	return Span{Style: s.Style, Start: start, Length: end - start}, true
}

// pushSpan appends a (style, length) run to spans, coalescing with the
// previous span when its normalized style matches. It is the single
// choke point every span-producing code path (parsers, builders, append)
// routes through, so the "no two adjacent spans share a normalized style"
// invariant holds everywhere.
func pushSpan(spans []Span, textLen int, style Style, length int) []Span {
	if length <= 0 {
		return spans
	}
	if n := len(spans); n > 0 && spans[n-1].Style.Equal(style) {
		spans[n-1].Length += length
		return spans
	}
	return append(spans, Span{Style: style, Start: textLen, Length: length})
}

// spanAt returns the span covering byte position p (absolute offset into
// the full text that spans was built over), if any. Spans is assumed
// sorted by Start with no gaps or overlaps, so a binary search would work;
// a linear scan is used here since span counts are small (bounded by the
// number of style transitions in realistic terminal output).
func spanAt(spans []Span, p int) (Span, int, bool) {
	for i, sp := range spans {
		if p >= sp.Start && p < sp.End() {
			return sp, i, true
		}
	}
	return Span{}, -1, false
}

// validateUTF8Boundary reports whether byte offset p in s lies on a UTF-8
// character boundary (including the two ends of the string).
func validateUTF8Boundary(s string, p int) bool {
	if p == 0 || p == len(s) {
		return true
	}
	if p < 0 || p > len(s) {
		return false
	}
	return utf8.RuneStart(s[p])
}

// coalesceAll merges adjacent spans of equal normalized style in place,
// returning the (possibly shorter) result slice. Used after operations
// that can juxtapose spans without going through pushSpan, such as
// rebasing an appended view's spans.
func coalesceAll(spans []Span) []Span {
	if len(spans) < 2 {
		return spans
	}
	out := spans[:1]
	for _, sp := range spans[1:] {
		last := &out[len(out)-1]
		if last.End() == sp.Start && last.Style.Equal(sp.Style) {
			last.Length += sp.Length
			continue
		}
		out = append(out, sp)
	}
	return out
}
