package styledstr

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/eberle1080/styledstr/internal/sgr"
)

// ParseAnsi interprets s as a byte stream carrying SGR (Select Graphic
// Rendition) escape sequences and returns the StyledString it denotes.
// Recognized CSI sequences other than SGR, and OSC sequences of any
// kind, are consumed silently and contribute no text. A bare '\r' not
// immediately followed by '\n' arms a discard of all text and spans
// accumulated since the start of the current logical line, retaining the
// current style; that discard only actually happens once further text is
// appended, so a trailing '\r' with nothing written after it (end of
// input, or only more escape sequences) loses nothing. A '\r' immediately
// followed by '\n' collapses to a plain line break with the '\r' itself
// dropped.
func ParseAnsi(s string) (StyledString, error) {
	data := []byte(s)
	var (
		outText   []byte
		outSpans  []Span
		runBuf    []byte
		runStyle  Style
		current   Style
		crPending bool
	)

	flushRun := func() {
		if len(runBuf) == 0 {
			return
		}
		outSpans = pushSpan(outSpans, len(outText), runStyle, len(runBuf))
		outText = append(outText, runBuf...)
		runBuf = runBuf[:0]
	}

	type mark struct {
		textLen   int
		spanCount int
	}
	lineStart := mark{}

	rollback := func() {
		if !crPending {
			return
		}
		outText = outText[:lineStart.textLen]
		outSpans = outSpans[:lineStart.spanCount]
		// The last kept span may have been extended past the line start by
		// coalescing; trim it back so the spans cover exactly outText.
		if n := len(outSpans); n > 0 {
			outSpans[n-1].Length = lineStart.textLen - outSpans[n-1].Start
		}
		crPending = false
	}

	i := 0
	for i < len(data) {
		b := data[i]
		switch {
		case b == sgr.ESC:
			n, err := applyEscape(data, i, &current)
			if err != nil {
				return StyledString{}, err
			}
			if current != runStyle {
				flushRun()
				runStyle = current
			}
			i = n
		case b == '\r':
			flushRun()
			if i+1 < len(data) && data[i+1] == '\n' {
				crPending = false
				i++
				continue
			}
			crPending = true
			i++
		case b == '\n':
			rollback()
			runBuf = append(runBuf, '\n')
			flushRun()
			lineStart = mark{textLen: len(outText), spanCount: len(outSpans)}
			i++
		default:
			rollback()
			runBuf = append(runBuf, b)
			i++
		}
	}
	flushRun()

	if !utf8.Valid(outText) {
		return StyledString{}, &AnsiError{Kind: Utf8Error, Detail: "final text run is not valid UTF-8"}
	}
	return StyledString{text: string(outText), spans: outSpans}, nil
}

// applyEscape parses the single escape sequence starting at data[i] (which
// must be sgr.ESC), applying any SGR update to *style, and returns the index
// just past the sequence.
func applyEscape(data []byte, i int, style *Style) (int, error) {
	if i+1 >= len(data) {
		return 0, &AnsiError{Kind: UnfinishedSequence}
	}
	switch data[i+1] {
	case sgr.CSI:
		return parseCSI(data, i, style)
	case sgr.OSC:
		return parseOSC(data, i)
	default:
		return 0, &AnsiError{Kind: UnrecognizedSequence, Byte: data[i+1]}
	}
}

// parseCSI parses "ESC [ params intermediates final" starting at data[i].
func parseCSI(data []byte, i int, style *Style) (int, error) {
	j := i + 2
	paramStart := j
	for j < len(data) && sgr.IsParamByte(data[j]) {
		j++
	}
	paramEnd := j
	for j < len(data) && sgr.IsIntermediateByte(data[j]) {
		j++
	}
	if j >= len(data) {
		return 0, &AnsiError{Kind: UnfinishedSequence}
	}
	final := data[j]
	if !sgr.IsFinalByte(final) {
		return 0, &AnsiError{Kind: InvalidSgrFinalByte, Byte: final}
	}
	j++
	if final == sgr.SGRFinal {
		if err := applySGR(style, string(data[paramStart:paramEnd])); err != nil {
			return 0, err
		}
	}
	return j, nil
}

// parseOSC parses "ESC ] ... BEL" or "ESC ] ... ESC \" starting at data[i],
// discarding its content entirely (title-setting and similar OSC sequences
// carry no style or text).
func parseOSC(data []byte, i int) (int, error) {
	j := i + 2
	for {
		if j >= len(data) {
			return 0, &AnsiError{Kind: UnfinishedSequence}
		}
		if data[j] == sgr.BEL {
			return j + 1, nil
		}
		if data[j] == sgr.ST1 && j+1 < len(data) && data[j+1] == sgr.ST2 {
			return j + 2, nil
		}
		j++
	}
}

// applySGR applies every ';'-separated parameter in params to *style.
func applySGR(style *Style, params string) error {
	if params == "" {
		*style = Style{}
		return nil
	}
	parts := strings.Split(params, ";")
	for i := 0; i < len(parts); i++ {
		p := parts[i]
		if p == "" {
			p = "0"
		}
		n, convErr := strconv.Atoi(p)
		if convErr != nil {
			continue
		}
		switch {
		case n == 0:
			*style = Style{}
		case n == 1:
			style.effects |= EffectBold
		case n == 2:
			style.effects |= EffectDimmed
		case n == 3:
			style.effects |= EffectItalic
		case n == 4:
			style.effects |= EffectUnderline
		case n == 5:
			style.effects |= EffectBlink
		case n == 7:
			style.effects |= EffectInvert
		case n == 8:
			style.effects |= EffectHidden
		case n == 9:
			style.effects |= EffectStrikethrough
		case n == 22:
			style.effects &^= EffectBold | EffectDimmed
		case n == 23:
			style.effects &^= EffectItalic
		case n == 24:
			style.effects &^= EffectUnderline
		case n == 25:
			style.effects &^= EffectBlink
		case n == 27:
			style.effects &^= EffectInvert
		case n == 28:
			style.effects &^= EffectHidden
		case n == 29:
			style.effects &^= EffectStrikethrough
		case n >= 30 && n <= 37:
			style.fg = Named(uint8(n - 30))
		case n == 38:
			col, consumed, err := parseCompoundColor(parts[i+1:])
			if err != nil {
				return err
			}
			style.fg = col
			i += consumed
		case n == 39:
			style.fg = Color{}
		case n >= 40 && n <= 47:
			style.bg = Named(uint8(n - 40))
		case n == 48:
			col, consumed, err := parseCompoundColor(parts[i+1:])
			if err != nil {
				return err
			}
			style.bg = col
			i += consumed
		case n == 49:
			style.bg = Color{}
		case n >= 90 && n <= 97:
			style.fg = Named(uint8(8 + n - 90))
		case n >= 100 && n <= 107:
			style.bg = Named(uint8(8 + n - 100))
		default:
			// Any other SGR parameter is accepted and ignored.
		}
	}
	return nil
}

// parseCompoundColor parses the sub-parameters following an indexed (38/48
// ";5;n") or true-color (38/48 ";2;r;g;b") color introducer. parts is the
// remainder of the parameter list after the 38/48 code itself; it returns
// the color, how many of parts were consumed, and an error if the
// sub-parameter sequence is malformed.
func parseCompoundColor(parts []string) (Color, int, error) {
	if len(parts) == 0 {
		return Color{}, 0, &AnsiError{Kind: AnsiUnfinishedColor}
	}
	typ := parts[0]
	if typ == "" {
		typ = "0"
	}
	switch typ {
	case "5":
		if len(parts) < 2 {
			return Color{}, 1, &AnsiError{Kind: AnsiUnfinishedColor}
		}
		idx := parts[1]
		if idx == "" {
			idx = "0"
		}
		n, err := strconv.Atoi(idx)
		if err != nil || n < 0 || n > 255 {
			return Color{}, 2, &AnsiError{Kind: InvalidColorIndex, Detail: idx}
		}
		return Indexed(uint8(n)), 2, nil
	case "2":
		if len(parts) < 4 {
			return Color{}, len(parts), &AnsiError{Kind: AnsiUnfinishedColor}
		}
		var rgb [3]uint8
		for k := 0; k < 3; k++ {
			v := parts[1+k]
			if v == "" {
				v = "0"
			}
			n, err := strconv.Atoi(v)
			if err != nil || n < 0 || n > 255 {
				return Color{}, 4, &AnsiError{Kind: InvalidColorIndex, Detail: v}
			}
			rgb[k] = uint8(n)
		}
		return RGB(rgb[0], rgb[1], rgb[2]), 4, nil
	default:
		return Color{}, 1, &AnsiError{Kind: InvalidColorType, Detail: typ}
	}
}
