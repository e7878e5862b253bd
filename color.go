package styledstr

import "fmt"

// ColorKind distinguishes the three representations a Color can hold. The
// zero kind, colorNone, means "no color set" and is never exposed directly;
// callers test for it via Color.IsSet.
type ColorKind int

const (
	colorNone ColorKind = iota
	ColorNamed
	ColorIndexed
	ColorRGB
)

// Color is an immutable foreground or background color value. It holds
// exactly one of three representations:
//
//   - Named(0..15): the 8 base colors plus their 8 bright variants.
//   - Indexed(0..255): a raw xterm-256 palette index.
//   - Rgb(r, g, b): a 24-bit true color.
//
// The zero Color is "unset" and is never installed by a style.
//
// Equality between two Color values should always go through Normalize
// first: Indexed(0..15) is equivalent to the matching Named color, and
// Indexed(16..255) is equivalent to its RGB expansion under the fixed
// xterm-256 formula.
type Color struct {
	kind    ColorKind
	named   uint8 // 0..15, valid when kind == ColorNamed
	indexed uint8 // 0..255, valid when kind == ColorIndexed
	r, g, b uint8 // valid when kind == ColorRGB
}

// The 16 base/bright named color indices, matching the SGR 30..37/90..97
// numbering (base color N has index N-30, bright color N has index 8+N-90).
const (
	Black uint8 = iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
	BrightBlack
	BrightRed
	BrightGreen
	BrightYellow
	BrightBlue
	BrightMagenta
	BrightCyan
	BrightWhite
)

// Named constructs a Color from one of the 16 base/bright named indices
// (0..15, see the Black..BrightWhite constants).
func Named(n uint8) Color {
	return Color{kind: ColorNamed, named: n & 0x0f}
}

// Indexed constructs a Color from a raw xterm-256 palette index (0..255).
func Indexed(n uint8) Color {
	return Color{kind: ColorIndexed, indexed: n}
}

// RGB constructs a 24-bit true color.
func RGB(r, g, b uint8) Color {
	return Color{kind: ColorRGB, r: r, g: g, b: b}
}

// IsSet reports whether c carries a color (as opposed to being the zero
// value used for "no foreground"/"no background").
func (c Color) IsSet() bool {
	return c.kind != colorNone
}

// xterm256Levels are the six component values used by the 6x6x6 RGB cube
// that makes up palette indices 16..231.
var xterm256Levels = [6]uint8{0x00, 0x5f, 0x87, 0xaf, 0xd7, 0xff}

// Normalize maps Indexed(0..15) to the corresponding Named color and
// Indexed(16..255) to its RGB expansion, per the fixed xterm-256 formula.
// Named and RGB colors pass through unchanged. The zero (unset) color
// passes through unchanged. Two colors compare structurally equal after
// normalization exactly when they refer to the same displayed color.
func (c Color) Normalize() Color {
	if c.kind != ColorIndexed {
		return c
	}
	n := c.indexed
	if n < 16 {
		return Named(n)
	}
	if n >= 232 {
		v := uint8(10*(int(n)-232) + 8)
		return RGB(v, v, v)
	}
	n -= 16
	r := xterm256Levels[n/36]
	g := xterm256Levels[(n%36)/6]
	b := xterm256Levels[n%6]
	return RGB(r, g, b)
}

// Equal reports whether c and other denote the same color once both are
// normalized.
func (c Color) Equal(other Color) bool {
	return c.Normalize() == other.Normalize()
}

// namedSGR returns the direct SGR code for named color index n: 30..37 /
// 40..47 for base colors and 90..97 / 100..107 for bright ones. The ANSI
// serializer calls it only for the base colors.
func namedSGR(n uint8, foreground bool) int {
	base := 30
	if !foreground {
		base = 40
	}
	if n >= 8 {
		base += 60
		return base + int(n-8)
	}
	return base + int(n)
}

// namedColorTable maps the lowercase rich-markup color name to its base
// (0..7) named index. Bright variants are derived by adding 8 once the `!`
// suffix or `bright-` prefix is recognized by the rich parser.
var namedColorTable = map[string]uint8{
	"black":   Black,
	"red":     Red,
	"green":   Green,
	"yellow":  Yellow,
	"blue":    Blue,
	"magenta": Magenta,
	"cyan":    Cyan,
	"white":   White,
}

var namedColorNames = [16]string{
	"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white",
	"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white",
}

// richToken renders c as a single rich-markup color token: a bare name
// (with `!` suffix for bright variants), `colorN` for an indexed color, or
// `#rrggbb` for an RGB color.
func (c Color) richToken() string {
	switch c.kind {
	case ColorNamed:
		name := namedColorNames[c.named]
		if c.named >= 8 {
			return name + "!"
		}
		return name
	case ColorIndexed:
		return fmt.Sprintf("color(%d)", c.indexed)
	case ColorRGB:
		return fmt.Sprintf("#%02x%02x%02x", c.r, c.g, c.b)
	default:
		return ""
	}
}

// ansiParams renders c's canonical ANSI SGR color parameters (without the
// leading "38"/"48;" type code, and without the CSI wrapper): "5;n" for
// indexed, "2;r;g;b" for RGB. Named colors return the empty string: the
// ANSI serializer emits base named colors as their 3x/4x code (namedSGR)
// and bright ones in their Indexed(8..15) form.
func (c Color) ansiParams() string {
	switch c.kind {
	case ColorIndexed:
		return fmt.Sprintf("5;%d", c.indexed)
	case ColorRGB:
		return fmt.Sprintf("2;%d;%d;%d", c.r, c.g, c.b)
	default:
		return ""
	}
}
