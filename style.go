package styledstr

// Effect is a single boolean text attribute (bold, italic, etc). Style
// stores a bitset of these.
type Effect uint16

const (
	EffectBold Effect = 1 << iota
	EffectDimmed
	EffectItalic
	EffectUnderline
	EffectBlink
	EffectInvert
	EffectStrikethrough
	EffectHidden
)

// effectOrder is the fixed serialization order used by both the rich and
// ANSI serializers: effects are always emitted in this declaration order,
// regardless of the order they were applied in. Both the order and the
// token spellings ("dim", "strike") are canonical: "[[italic strike green
// on yellow]]world[[dim underline on cyan]]!" is the reference round trip
// for a multi-effect span.
var effectOrder = []struct {
	bit   Effect
	token string
	sgr   string
}{
	{EffectBold, "bold", "1"},
	{EffectDimmed, "dim", "2"},
	{EffectItalic, "italic", "3"},
	{EffectUnderline, "underline", "4"},
	{EffectBlink, "blink", "5"},
	{EffectInvert, "invert", "7"},
	{EffectHidden, "hidden", "8"},
	{EffectStrikethrough, "strike", "9"},
}

// Style is an immutable value carrying an effect bitset plus an optional
// foreground and background color. The zero Style is the default style:
// no effects, no colors.
type Style struct {
	effects Effect
	fg      Color
	bg      Color
}

// NewStyle returns the default (empty) style.
func NewStyle() Style {
	return Style{}
}

// Render applies s to text, producing a single-span StyledView suitable
// for Console.PrintStyled or Console.PrintStyledln.
func (s Style) Render(text string) StyledView {
	var out StyledString
	out.PushText(text, s)
	return out.View()
}

// WithEffect returns a copy of s with e set.
func (s Style) WithEffect(e Effect) Style {
	s.effects |= e
	return s
}

// WithoutEffect returns a copy of s with e cleared.
func (s Style) WithoutEffect(e Effect) Style {
	s.effects &^= e
	return s
}

// HasEffect reports whether e is set on s.
func (s Style) HasEffect(e Effect) bool {
	return s.effects&e != 0
}

// WithForeground returns a copy of s with the given foreground color.
func (s Style) WithForeground(c Color) Style {
	s.fg = c
	return s
}

// WithoutForeground returns a copy of s with no foreground color.
func (s Style) WithoutForeground() Style {
	s.fg = Color{}
	return s
}

// WithBackground returns a copy of s with the given background color.
func (s Style) WithBackground(c Color) Style {
	s.bg = c
	return s
}

// WithoutBackground returns a copy of s with no background color.
func (s Style) WithoutBackground() Style {
	s.bg = Color{}
	return s
}

// Foreground returns s's foreground color and whether one is set.
func (s Style) Foreground() (Color, bool) {
	return s.fg, s.fg.IsSet()
}

// Background returns s's background color and whether one is set.
func (s Style) Background() (Color, bool) {
	return s.bg, s.bg.IsSet()
}

// IsDefault reports whether s carries no effects and no colors.
func (s Style) IsDefault() bool {
	return s.effects == 0 && !s.fg.IsSet() && !s.bg.IsSet()
}

// Normalize returns a copy of s with its colors normalized (see
// Color.Normalize). Two styles produced by different parse paths compare
// equal, structurally, once both are normalized; this is the comparison
// every coalescing and diffing operation in this package uses.
func (s Style) Normalize() Style {
	s.fg = s.fg.Normalize()
	s.bg = s.bg.Normalize()
	return s
}

// Equal reports whether s and other denote the same style after
// normalization.
func (s Style) Equal(other Style) bool {
	a, b := s.Normalize(), other.Normalize()
	return a.effects == b.effects && a.fg == b.fg && a.bg == b.bg
}

// RichToken renders s as the interior of a single rich-markup directive:
// effects in fixed order, then the foreground color token, then "on" plus
// the background color token. A default style renders as the empty string,
// which the caller wraps as "[[]]" (or omits entirely for the leading
// span).
func (s Style) RichToken() string {
	var out []byte
	for _, e := range effectOrder {
		if s.effects&e.bit != 0 {
			if len(out) > 0 {
				out = append(out, ' ')
			}
			out = append(out, e.token...)
		}
	}
	if s.fg.IsSet() {
		if len(out) > 0 {
			out = append(out, ' ')
		}
		out = append(out, s.fg.richToken()...)
	}
	if s.bg.IsSet() {
		if len(out) > 0 {
			out = append(out, ' ')
		}
		out = append(out, "on "...)
		out = append(out, s.bg.richToken()...)
	}
	return string(out)
}
