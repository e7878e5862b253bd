package styledstr

import (
	"strconv"
	"strings"

	"github.com/eberle1080/styledstr/internal/boundedstack"
)

// richSink receives the (text, style) runs a rich-markup parse produces, in
// order. ParseRich, Capacities and the bounded-capacity path all drive the
// same cursor/token logic against a different sink, so the two passes the
// compile-time-style entry point needs (size the storage, then fill it)
// can never disagree about what the grammar means.
type richSink interface {
	pushText(text string, style Style) error
}

// stringSink builds an owned StyledString.
type stringSink struct{ out *StyledString }

func (s stringSink) pushText(text string, style Style) error {
	s.out.PushText(text, style)
	return nil
}

// countingSink only measures the text length and the number of style runs
// a parse would produce, for Capacities.
type countingSink struct {
	textLen   int
	lastSeen  bool
	lastStyle Style
	spans     int
}

func (s *countingSink) pushText(text string, style Style) error {
	if len(text) == 0 {
		return nil
	}
	s.textLen += len(text)
	if !s.lastSeen || !s.lastStyle.Equal(style) {
		s.spans++
	}
	s.lastSeen = true
	s.lastStyle = style
	return nil
}

// boundedSink fills the bounded-capacity text buffer and span stack used
// by the compile-time-style entry point.
type boundedSink struct {
	text  *boundedstack.TextBuffer
	spans *boundedstack.SpanStack[Style]
}

func (s boundedSink) pushText(text string, style Style) error {
	if text == "" {
		return nil
	}
	if last, ok := s.spans.Last(); ok && last.Style.Equal(style) {
		last.Length += len(text)
	} else if err := s.spans.Push(style, s.text.Len(), len(text)); err != nil {
		return &ParseError{Kind: SpanOverflow}
	}
	if err := s.text.PushString(text); err != nil {
		return &ParseError{Kind: TextOverflow}
	}
	return nil
}

// ParseRich parses double-bracket rich markup ("[[bold red]]text") into an
// owned StyledString.
func ParseRich(s string) (StyledString, error) {
	var out StyledString
	if err := parseRichInto(s, stringSink{out: &out}); err != nil {
		return StyledString{}, err
	}
	return out, nil
}

// Capacities computes the (text byte length, span count) a parse of s
// would produce, without building the result. The compile-time-style
// entry point uses this to size its bounded storage exactly.
func Capacities(s string) (textCap int, spanCap int, err error) {
	sink := &countingSink{}
	if err := parseRichInto(s, sink); err != nil {
		return 0, 0, err
	}
	return sink.textLen, sink.spans, nil
}

// ParseBounded parses s into the caller-provided bounded storage. textCap
// and spanCap must be at least the values Capacities(s) returns (the
// compile-time-style caller computes them first); a capacity that is too
// small surfaces as SpanOverflow/TextOverflow.
func ParseBounded(s string, text *boundedstack.TextBuffer, spans *boundedstack.SpanStack[Style]) error {
	return parseRichInto(s, boundedSink{text: text, spans: spans})
}

// MustParseBounded runs the two-pass bounded parse (Capacities, then
// ParseBounded) and panics on any parse error, mirroring the source
// grammar's const-context diagnostic: the message embeds the offending
// byte range and error kind. This is the only panicking entry point in the
// package, reserved for callers that need a statically-sized result and
// have accepted that a malformed literal is a program bug, not a runtime
// condition to recover from.
func MustParseBounded(s string) (*boundedstack.TextBuffer, *boundedstack.SpanStack[Style]) {
	textCap, spanCap, err := Capacities(s)
	if err != nil {
		panic(compilePanic(s, err.(*ParseError)))
	}
	text := boundedstack.NewTextBuffer(textCap)
	spans := boundedstack.NewSpanStack[Style](spanCap)
	if err := ParseBounded(s, text, spans); err != nil {
		panic(compilePanic(s, err.(*ParseError)))
	}
	return text, spans
}

// richCursor walks a rich-markup source string, exposing the primitives
// the directive grammar needs: peeking the current byte, advancing,
// gobbling a fixed needle, and expanding a byte range to UTF-8 character
// boundaries for error reporting.
type richCursor struct {
	s   string
	pos int
}

func newRichCursor(s string) *richCursor { return &richCursor{s: s} }

func (c *richCursor) eof() bool { return c.pos >= len(c.s) }

func (c *richCursor) currentByte() (byte, bool) {
	if c.eof() {
		return 0, false
	}
	return c.s[c.pos], true
}

func (c *richCursor) advanceByte() { c.pos++ }

// gobble reports whether the upcoming bytes equal needle; if so, it
// consumes them and returns true.
func (c *richCursor) gobble(needle string) bool {
	if strings.HasPrefix(c.s[c.pos:], needle) {
		c.pos += len(needle)
		return true
	}
	return false
}

func (c *richCursor) expandToCharBoundaries(start, end int) ByteRange {
	return expandToCharBoundaries(c.s, start, end)
}

// parseRichInto is the single entry point the grammar's two passes (and
// the runtime ParseRich) share.
func parseRichInto(s string, sink richSink) error {
	c := newRichCursor(s)
	style := Style{}
	textStart := 0

	flushPlain := func(upto int) error {
		if upto > textStart {
			segment := s[textStart:upto]
			if i := strings.IndexByte(segment, 0x1b); i >= 0 {
				rng := c.expandToCharBoundaries(textStart+i, textStart+i+1)
				return &ParseError{Kind: EscapeInText, Range: rng}
			}
			if err := sink.pushText(segment, style); err != nil {
				return err
			}
		}
		return nil
	}

	for !c.eof() {
		b, _ := c.currentByte()
		if b != '[' || c.pos+1 >= len(s) || s[c.pos+1] != '[' {
			c.advanceByte()
			continue
		}
		// Found "[[": flush preceding plain text, then parse the directive.
		if err := flushPlain(c.pos); err != nil {
			return err
		}
		openStart := c.pos
		c.gobble("[[")

		closeIdx := strings.Index(s[c.pos:], "]]")
		if closeIdx < 0 {
			rng := c.expandToCharBoundaries(openStart, len(s))
			return &ParseError{Kind: UnfinishedStyle, Range: rng}
		}
		content := s[c.pos : c.pos+closeIdx]
		contentStart := c.pos
		c.pos += closeIdx
		c.gobble("]]")

		// Leading literal-bracket escape: a directive's content may begin
		// with a run of one or more literal '[' characters, emitted into
		// the text stream as-is; the remainder of the content is then
		// parsed as an ordinary directive.
		escLen := 0
		for escLen < len(content) && content[escLen] == '[' {
			escLen++
		}
		if escLen > 0 {
			if err := sink.pushText(content[:escLen], style); err != nil {
				return err
			}
			content = content[escLen:]
			contentStart += escLen
		}

		newStyle, err := parseDirectiveContent(c, content, contentStart, style)
		if err != nil {
			return err
		}
		style = newStyle
		textStart = c.pos
	}
	return flushPlain(len(s))
}

// parseDirectiveContent parses the token list of a single directive
// (already stripped of its leading bracket-escape, if any) and returns the
// style it produces, given base (the style in effect before this
// directive).
func parseDirectiveContent(c *richCursor, content string, contentStart int, base Style) (Style, error) {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return Style{}, nil
	}

	tokens, ranges := splitTokens(content, contentStart)

	if len(tokens) == 1 && tokens[0] == "/" {
		return Style{}, nil
	}
	for i, t := range tokens {
		if t == "/" {
			rng := c.expandToCharBoundaries(ranges[i].Start, ranges[i].End)
			return Style{}, &ParseError{Kind: NonIsolatedClear, Range: rng}
		}
	}

	style := Style{}
	inherit := false
	start := 0
	if tokens[0] == "*" {
		inherit = true
		style = base
		start = 1
	}

	var effectsSet Effect
	fgSet, bgSet := false, false

	for i := start; i < len(tokens); i++ {
		tok := tokens[i]
		rng := c.expandToCharBoundaries(ranges[i].Start, ranges[i].End)

		if tok == "*" {
			return Style{}, &ParseError{Kind: NonInitialCopy, Range: rng}
		}

		if neg, name, isNeg := negationTarget(tok); isNeg {
			if !inherit {
				return Style{}, &ParseError{Kind: NegationWithoutCopy, Range: rng, Detail: neg}
			}
			if e, ok := effectAliases[name]; ok {
				if style.effects&e == 0 {
					return Style{}, &ParseError{Kind: RedundantNegation, Range: rng, Detail: name}
				}
				style.effects &^= e
				continue
			}
			switch name {
			case "fg", "color":
				if !style.fg.IsSet() {
					return Style{}, &ParseError{Kind: RedundantNegation, Range: rng, Detail: name}
				}
				style.fg = Color{}
			case "bg", "on":
				if !style.bg.IsSet() {
					return Style{}, &ParseError{Kind: RedundantNegation, Range: rng, Detail: name}
				}
				style.bg = Color{}
			default:
				return Style{}, &ParseError{Kind: UnsupportedEffect, Range: rng, Detail: name}
			}
			continue
		}

		if tok == "on" {
			if i+1 >= len(tokens) {
				return Style{}, &ParseError{Kind: UnfinishedBackground, Range: rng}
			}
			i++
			colorTok := tokens[i]
			colorRng := c.expandToCharBoundaries(ranges[i].Start, ranges[i].End)
			col, looksLikeColor, cerr := parseColorToken(colorTok)
			if cerr != nil {
				return Style{}, wrapColorErr(cerr, colorRng)
			}
			if !looksLikeColor {
				return Style{}, &ParseError{Kind: UnfinishedBackground, Range: rng}
			}
			if bgSet {
				return Style{}, &ParseError{Kind: DuplicateSpecifier, Range: colorRng, Detail: "on"}
			}
			style.bg = col
			bgSet = true
			continue
		}

		if e, ok := effectAliases[tok]; ok {
			if effectsSet&e != 0 {
				return Style{}, &ParseError{Kind: DuplicateSpecifier, Range: rng, Detail: tok}
			}
			effectsSet |= e
			style.effects |= e
			continue
		}

		col, looksLikeColor, cerr := parseColorToken(tok)
		if cerr != nil {
			return Style{}, wrapColorErr(cerr, rng)
		}
		if looksLikeColor {
			if fgSet {
				return Style{}, &ParseError{Kind: DuplicateSpecifier, Range: rng, Detail: tok}
			}
			style.fg = col
			fgSet = true
			continue
		}

		return Style{}, &ParseError{Kind: UnsupportedStyle, Range: rng, Detail: tok}
	}

	return style, nil
}

// splitTokens splits directive content on whitespace, ',' and ';', along
// with the byte range (relative to the full source string, via
// contentStart) each token occupies.
func splitTokens(content string, contentStart int) ([]string, []ByteRange) {
	var tokens []string
	var ranges []ByteRange
	i := 0
	for i < len(content) {
		for i < len(content) && isTokenSep(content[i]) {
			i++
		}
		if i >= len(content) {
			break
		}
		start := i
		for i < len(content) && !isTokenSep(content[i]) {
			i++
		}
		tokens = append(tokens, content[start:i])
		ranges = append(ranges, ByteRange{Start: contentStart + start, End: contentStart + i})
	}
	return tokens, ranges
}

func isTokenSep(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r' || b == ',' || b == ';'
}

// negationTarget reports whether tok is a negation ("-name" or "!name"),
// returning the sigil used, the bare name, and ok.
func negationTarget(tok string) (sigil string, name string, ok bool) {
	if len(tok) < 2 {
		return "", "", false
	}
	switch tok[0] {
	case '-':
		return "-", tok[1:], true
	case '!':
		return "!", tok[1:], true
	default:
		return "", "", false
	}
}

var effectAliases = map[string]Effect{
	"bold": EffectBold, "b": EffectBold,
	"italic": EffectItalic, "it": EffectItalic, "i": EffectItalic,
	"underline": EffectUnderline, "ul": EffectUnderline, "u": EffectUnderline,
	"strikethrough": EffectStrikethrough, "strike": EffectStrikethrough, "s": EffectStrikethrough,
	"dimmed": EffectDimmed, "dim": EffectDimmed,
	"invert": EffectInvert, "inverted": EffectInvert, "inv": EffectInvert,
	"blink": EffectBlink,
	"concealed": EffectHidden, "conceal": EffectHidden, "hide": EffectHidden, "hidden": EffectHidden,
}

// colorParseErr is a sentinel marker wrapping a ParseErrorKind produced
// while parsing a single color token, before the caller has a byte range
// to attach.
type colorParseErr struct {
	kind   ParseErrorKind
	detail string
}

func (e *colorParseErr) Error() string { return e.kind.String() }

func wrapColorErr(err error, rng ByteRange) error {
	if ce, ok := err.(*colorParseErr); ok {
		return &ParseError{Kind: ce.kind, Range: rng, Detail: ce.detail}
	}
	return err
}

// parseColorToken attempts to interpret tok as a color. looksLikeColor is
// false (with err nil) when tok plainly isn't a color attempt at all (so
// the caller can try interpreting it as something else, e.g. an unknown
// style keyword); it is true whenever tok commits to being a color (hex,
// "color(...)"/"colorN", or a recognized name), even if parsing then
// fails.
func parseColorToken(tok string) (Color, bool, error) {
	if strings.HasPrefix(tok, "#") {
		c, err := parseHexColor(tok[1:])
		return c, true, err
	}
	if strings.HasPrefix(tok, "color") {
		c, err := parseIndexedColor(tok[len("color"):])
		return c, true, err
	}
	name := tok
	bright := false
	switch {
	case strings.HasPrefix(name, "bright-"):
		bright = true
		name = name[len("bright-"):]
	case strings.HasSuffix(name, "!"):
		bright = true
		name = name[:len(name)-1]
	}
	if base, ok := namedColorTable[name]; ok {
		idx := base
		if bright {
			idx += 8
		}
		return Named(idx), true, nil
	}
	return Color{}, false, nil
}

func parseHexColor(hex string) (Color, error) {
	if len(hex) != 3 && len(hex) != 6 {
		return Color{}, &colorParseErr{kind: HexColorInvalidLen}
	}
	expand := func(s string) (string, error) {
		if len(s) == 3 {
			out := make([]byte, 0, 6)
			for _, ch := range []byte(s) {
				out = append(out, ch, ch)
			}
			return string(out), nil
		}
		return s, nil
	}
	full, _ := expand(hex)
	for _, ch := range []byte(full) {
		if !isHexDigit(ch) {
			return Color{}, &colorParseErr{kind: HexColorInvalidHexDigit}
		}
	}
	r, _ := strconv.ParseUint(full[0:2], 16, 8)
	g, _ := strconv.ParseUint(full[2:4], 16, 8)
	b, _ := strconv.ParseUint(full[4:6], 16, 8)
	return RGB(uint8(r), uint8(g), uint8(b)), nil
}

func isHexDigit(b byte) bool {
	return (b >= '0' && b <= '9') || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

// parseIndexedColor parses the remainder of a "color"-prefixed token: rest
// is either "(N)" or "N" directly appended ("colorN"). N must be a decimal
// integer 0..255 with no leading zeros (except the literal "0" itself).
func parseIndexedColor(rest string) (Color, error) {
	digits := rest
	if strings.HasPrefix(rest, "(") {
		end := strings.IndexByte(rest, ')')
		if end < 0 {
			return Color{}, &colorParseErr{kind: UnfinishedColor}
		}
		digits = rest[1:end]
		if digits == "" {
			return Color{}, &colorParseErr{kind: InvalidIndexColor}
		}
	} else if digits == "" {
		return Color{}, &colorParseErr{kind: UnfinishedColor}
	}
	if len(digits) > 1 && digits[0] == '0' {
		return Color{}, &colorParseErr{kind: InvalidIndexColor}
	}
	for _, ch := range []byte(digits) {
		if ch < '0' || ch > '9' {
			return Color{}, &colorParseErr{kind: InvalidIndexColor}
		}
	}
	n, err := strconv.Atoi(digits)
	if err != nil || n > 255 {
		return Color{}, &colorParseErr{kind: InvalidIndexColor}
	}
	return Indexed(uint8(n)), nil
}
