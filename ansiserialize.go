package styledstr

import (
	"strconv"
	"strings"
)

// FormatAnsi renders v as a self-contained ANSI/SGR byte stream: each span
// is preceded by a CSI sequence installing exactly its style
// (computed from the default, not incrementally from the previous span)
// and followed by a reset, so spans never bleed style into one another.
//
// Bright named colors (indices 8..15) are always serialized via the
// indexed form ("38;5;n"/"48;5;n") rather than the 9x/10x shortcut, so
// that re-parsing with ParseAnsi recovers the same Color after
// normalization (Indexed(8..15) and Named(8..15) normalize identically);
// only the 8 base named colors (0..7) use the 3x/4x shortcut.
func FormatAnsi(v StyledView) string {
	var b strings.Builder
	for _, sp := range v.Spans() {
		codes := sgrCodes(sp.Style)
		b.WriteString("\x1b[")
		b.WriteString(strings.Join(codes, ";"))
		b.WriteString("m")
		b.WriteString(sp.Text)
		b.WriteString("\x1b[0m")
	}
	return b.String()
}

func sgrCodes(s Style) []string {
	var codes []string
	for _, e := range effectOrder {
		if s.effects&e.bit != 0 {
			codes = append(codes, e.sgr)
		}
	}
	if fg, ok := s.Foreground(); ok {
		codes = append(codes, fgSGRCode(fg))
	}
	if bg, ok := s.Background(); ok {
		codes = append(codes, bgSGRCode(bg))
	}
	if len(codes) == 0 {
		codes = []string{"0"}
	}
	return codes
}

func fgSGRCode(c Color) string {
	if c.kind == ColorNamed && c.named < 8 {
		return strconv.Itoa(namedSGR(c.named, true))
	}
	if c.kind == ColorNamed {
		return "38;" + Indexed(c.named).ansiParams()
	}
	return "38;" + c.ansiParams()
}

func bgSGRCode(c Color) string {
	if c.kind == ColorNamed && c.named < 8 {
		return strconv.Itoa(namedSGR(c.named, false))
	}
	if c.kind == ColorNamed {
		return "48;" + Indexed(c.named).ansiParams()
	}
	return "48;" + c.ansiParams()
}
