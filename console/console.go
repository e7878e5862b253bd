// Package console is the terminal-facing output layer built on styledstr:
// it detects terminal color capability, tracks terminal dimensions, and
// writes styled text, rich markup, and Renderable widgets (tables, panels,
// reports) to an io.Writer.
//
// Color support is detected via github.com/muesli/termenv's profile
// detection rather than a hand-rolled environment-variable walk.
package console

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/eberle1080/styledstr"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// ColorMode is the level of color support a Console writes at. Every mode
// other than ColorModeNone writes the same styledstr.FormatAnsi output;
// colors are not converted to fit the mode's palette.
type ColorMode int

const (
	// ColorModeNone emits no escape sequences at all: plain text only.
	ColorModeNone ColorMode = iota
	// ColorModeStandard is detected for terminals with 8/16-color support.
	ColorModeStandard
	// ColorMode256 is detected for terminals with 256-color support.
	ColorMode256
	// ColorModeTrueColor is detected for terminals with 24-bit color support.
	ColorModeTrueColor
)

// Console is the central orchestrator for styled terminal output: the
// output writer, detected (or overridden) color mode, and terminal
// dimensions.
type Console struct {
	writer    io.Writer
	colorMode ColorMode
	width     int
	height    int
}

// New creates a Console writing to writer (os.Stdout if nil), detecting
// color support and terminal size automatically.
func New(writer io.Writer) *Console {
	if writer == nil {
		writer = os.Stdout
	}
	c := &Console{
		writer:    writer,
		colorMode: detectColorMode(writer),
		width:     80,
		height:    24,
	}
	if f, ok := writer.(*os.File); ok {
		if w, h, err := term.GetSize(int(f.Fd())); err == nil {
			c.width, c.height = w, h
		}
	}
	return c
}

// detectColorMode maps termenv's environment/terminal profile detection
// onto the four ColorMode levels this package writes at. NO_COLOR
// (https://no-color.org/) always wins over whatever the terminal reports.
func detectColorMode(w io.Writer) ColorMode {
	if os.Getenv("NO_COLOR") != "" {
		return ColorModeNone
	}
	f, ok := w.(*os.File)
	if !ok {
		return ColorModeNone
	}
	output := termenv.NewOutput(f)
	switch output.Profile {
	case termenv.TrueColor:
		return ColorModeTrueColor
	case termenv.ANSI256:
		return ColorMode256
	case termenv.ANSI:
		return ColorModeStandard
	default:
		return ColorModeNone
	}
}

// SetColorMode overrides the detected color mode.
func (c *Console) SetColorMode(mode ColorMode) { c.colorMode = mode }

// ColorMode returns the console's current color mode.
func (c *Console) ColorMode() ColorMode { return c.colorMode }

// Width returns the console width in characters.
func (c *Console) Width() int { return c.width }

// Height returns the console height in characters.
func (c *Console) Height() int { return c.height }

// Writer returns the underlying io.Writer.
func (c *Console) Writer() io.Writer { return c.writer }

// Print writes plain, unstyled text.
func (c *Console) Print(a ...any) (n int, err error) {
	return io.WriteString(c.writer, fmt.Sprint(a...))
}

// Println writes plain text followed by a newline.
func (c *Console) Println(a ...any) (n int, err error) {
	return io.WriteString(c.writer, fmt.Sprintln(a...))
}

// Printf writes formatted plain text.
func (c *Console) Printf(format string, a ...any) (n int, err error) {
	return io.WriteString(c.writer, fmt.Sprintf(format, a...))
}

// render returns v's text, styled with ANSI escapes unless the console's
// color mode is ColorModeNone (in which case styling is stripped
// entirely).
func (c *Console) render(v styledstr.StyledView) string {
	if c.colorMode == ColorModeNone {
		return v.Text()
	}
	return styledstr.FormatAnsi(v)
}

// PrintStyled writes a styled view, honoring the console's color mode.
func (c *Console) PrintStyled(v styledstr.StyledView) (n int, err error) {
	return io.WriteString(c.writer, c.render(v))
}

// PrintStyledln writes a styled view followed by a newline.
func (c *Console) PrintStyledln(v styledstr.StyledView) (n int, err error) {
	n, err = c.PrintStyled(v)
	if err != nil {
		return n, err
	}
	n2, err := io.WriteString(c.writer, "\n")
	return n + n2, err
}

// PrintMarkup parses markup as rich-markup (styledstr.ParseRich) and
// writes the result, honoring the console's color mode.
func (c *Console) PrintMarkup(markup string) (n int, err error) {
	s, perr := styledstr.ParseRich(markup)
	if perr != nil {
		return 0, perr
	}
	return c.PrintStyled(s.View())
}

// PrintMarkupln parses and writes markup followed by a newline.
func (c *Console) PrintMarkupln(markup string) (n int, err error) {
	n, err = c.PrintMarkup(markup)
	if err != nil {
		return n, err
	}
	n2, err := io.WriteString(c.writer, "\n")
	return n + n2, err
}

// Renderable is implemented by widgets (tables, panels, reports) that lay
// themselves out into styled text given an available width.
type Renderable interface {
	Render(c *Console, width int) styledstr.StyledString
}

// Render renders r at the console's width and writes the result.
func (c *Console) Render(r Renderable) (n int, err error) {
	return c.PrintStyled(r.Render(c, c.width).View())
}

// Renderln renders r at the console's width, writes it, and appends a
// newline.
func (c *Console) Renderln(r Renderable) (n int, err error) {
	n, err = c.Render(r)
	if err != nil {
		return n, err
	}
	n2, err := io.WriteString(c.writer, "\n")
	return n + n2, err
}

// Rule prints a horizontal rule across the console width, optionally
// centering a title in it.
func (c *Console) Rule(title string) (n int, err error) {
	dim := styledstr.NewStyle().WithEffect(styledstr.EffectDimmed)
	bold := styledstr.NewStyle().WithEffect(styledstr.EffectBold)

	var s styledstr.StyledString
	if title == "" {
		s.PushText(strings.Repeat("─", c.width), dim)
	} else {
		titleLen := len(title)
		if titleLen+4 > c.width {
			s.PushText(title, bold)
		} else {
			left := (c.width - titleLen - 2) / 2
			right := c.width - titleLen - 2 - left
			s.PushText(strings.Repeat("─", left), dim)
			s.PushText(" "+title+" ", bold)
			s.PushText(strings.Repeat("─", right), dim)
		}
	}
	return c.PrintStyledln(s.View())
}
