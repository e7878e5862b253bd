// Package panel provides bordered containers for styled terminal content.
//
// A panel wraps content (plain text or another Renderable) in a bordered
// box with an optional title and subtitle. Panels are useful for
// highlighting a block of output, grouping related content, or drawing
// attention to a status message.
//
// # Basic Usage
//
//	p := panel.New("Hello, World!")
//	con.Renderln(p)
//
// # Customization
//
//	p := panel.New("Important message").
//		Title("Alert").
//		Subtitle("Press any key").
//		Box(table.BoxDouble).
//		BorderStyle(styledstr.NewStyle().WithForeground(styledstr.Named(styledstr.Red))).
//		Padding(2)
package panel

import (
	"strings"

	"github.com/eberle1080/styledstr"
	"github.com/eberle1080/styledstr/console"
	"github.com/eberle1080/styledstr/table"
)

// Align specifies how content is aligned within a panel.
type Align int

const (
	// AlignLeft aligns content to the left side of the panel.
	AlignLeft Align = iota
	// AlignCenter centers content within the panel.
	AlignCenter
	// AlignRight aligns content to the right side of the panel.
	AlignRight
)

// Panel is a bordered container for content. It implements
// console.Renderable and can be rendered to a Console.
type Panel struct {
	content console.Renderable

	title    string
	subtitle string

	box table.Box

	width   int
	padding int
	align   Align

	borderStyle  styledstr.Style
	titleStyle   styledstr.Style
	contentStyle styledstr.Style

	expand bool
}

// New creates a panel wrapping content, which must be a string (wrapped
// plainly) or a console.Renderable (used directly). Any other type is
// treated as empty content.
//
// Defaults: rounded borders, 1 character of padding, left alignment, dim
// border style, bold title style, expand enabled.
func New(content interface{}) *Panel {
	var r console.Renderable

	switch c := content.(type) {
	case string:
		var s styledstr.StyledString
		s.PushText(c, styledstr.NewStyle())
		r = console.NewText(s)
	case console.Renderable:
		r = c
	default:
		r = console.NewText(styledstr.StyledString{})
	}

	return &Panel{
		content:      r,
		box:          table.BoxRounded,
		padding:      1,
		align:        AlignLeft,
		borderStyle:  styledstr.NewStyle().WithEffect(styledstr.EffectDimmed),
		titleStyle:   styledstr.NewStyle().WithEffect(styledstr.EffectBold),
		contentStyle: styledstr.NewStyle(),
		expand:       true,
	}
}

// Title sets the panel title, centered in its own row above the content.
func (p *Panel) Title(title string) *Panel {
	p.title = title
	return p
}

// Subtitle sets the panel subtitle, centered in its own row below the
// content.
func (p *Panel) Subtitle(subtitle string) *Panel {
	p.subtitle = subtitle
	return p
}

// Box sets the border style.
func (p *Panel) Box(box table.Box) *Panel {
	p.box = box
	return p
}

// Width sets a fixed panel width, overriding the expand setting.
func (p *Panel) Width(width int) *Panel {
	p.width = width
	return p
}

// Padding sets the internal padding in characters, applied to the left and
// right of each content line. No blank rows are added above or below the
// content.
func (p *Panel) Padding(padding int) *Panel {
	p.padding = padding
	return p
}

// Align sets the content alignment.
func (p *Panel) Align(align Align) *Panel {
	p.align = align
	return p
}

// BorderStyle sets the style applied to border characters.
func (p *Panel) BorderStyle(style styledstr.Style) *Panel {
	p.borderStyle = style
	return p
}

// TitleStyle sets the style applied to title and subtitle text.
func (p *Panel) TitleStyle(style styledstr.Style) *Panel {
	p.titleStyle = style
	return p
}

// ContentStyle sets the style applied to string content. Renderable
// content is responsible for its own styling and ignores this.
func (p *Panel) ContentStyle(style styledstr.Style) *Panel {
	p.contentStyle = style
	return p
}

// Expand controls whether the panel fills available width (true, the
// default) or auto-sizes to its content (false). Ignored if Width is set.
func (p *Panel) Expand(expand bool) *Panel {
	p.expand = expand
	return p
}

// Render implements console.Renderable.
func (p *Panel) Render(c *console.Console, maxWidth int) styledstr.StyledString {
	width := p.width
	if width == 0 || width > maxWidth {
		if p.expand {
			width = maxWidth
		} else {
			width = p.measureContent(c, maxWidth)
		}
	}
	if width < 3 {
		width = 3
	}

	contentWidth := width - 2 - (p.padding * 2)
	if contentWidth < 1 {
		contentWidth = 1
	}

	var out styledstr.StyledString

	out = out.Append(p.renderTopBorder(width).View())
	out.PushText("\n", styledstr.Style{})

	if p.title != "" {
		out = out.Append(p.renderTitle(width).View())
		out.PushText("\n", styledstr.Style{})
	}

	content := p.content.Render(c, contentWidth)
	for _, line := range content.Lines() {
		out = out.Append(p.renderContentLine(line, contentWidth).View())
		out.PushText("\n", styledstr.Style{})
	}

	if p.subtitle != "" {
		out = out.Append(p.renderSubtitle(width).View())
		out.PushText("\n", styledstr.Style{})
	}

	out = out.Append(p.renderBottomBorder(width).View())

	return out
}

// measureContent renders content at the available width and returns the
// total panel width (longest content line plus borders and padding). Used
// when Expand is false and no fixed Width is set.
func (p *Panel) measureContent(c *console.Console, maxWidth int) int {
	inner := maxWidth - 2 - (p.padding * 2)
	content := p.content.Render(c, inner)

	maxLen := 0
	for _, line := range content.Lines() {
		if n := line.Len(); n > maxLen {
			maxLen = n
		}
	}
	return maxLen + 2 + (p.padding * 2)
}

func (p *Panel) renderTopBorder(width int) styledstr.StyledString {
	var out styledstr.StyledString
	inner := width - 2
	out.PushText(p.box.TopLeft+strings.Repeat(p.box.Top, inner)+p.box.TopRight, p.borderStyle)
	return out
}

func (p *Panel) renderBottomBorder(width int) styledstr.StyledString {
	var out styledstr.StyledString
	inner := width - 2
	out.PushText(p.box.BottomLeft+strings.Repeat(p.box.Bottom, inner)+p.box.BottomRight, p.borderStyle)
	return out
}

func (p *Panel) renderTitle(width int) styledstr.StyledString {
	return p.renderCentered(width, p.title, p.titleStyle)
}

func (p *Panel) renderSubtitle(width int) styledstr.StyledString {
	return p.renderCentered(width, p.subtitle, p.titleStyle)
}

// renderCentered renders one bordered row with text centered within it,
// truncating text that doesn't fit.
func (p *Panel) renderCentered(width int, text string, style styledstr.Style) styledstr.StyledString {
	var out styledstr.StyledString
	inner := width - 2
	textLen := len(text)

	out.PushText(p.box.Left, p.borderStyle)
	if textLen >= inner {
		out.PushText(text[:inner], style)
	} else {
		leftPad := (inner - textLen) / 2
		rightPad := inner - textLen - leftPad
		if leftPad > 0 {
			out.PushText(strings.Repeat(" ", leftPad), styledstr.Style{})
		}
		out.PushText(text, style)
		if rightPad > 0 {
			out.PushText(strings.Repeat(" ", rightPad), styledstr.Style{})
		}
	}
	out.PushText(p.box.Right, p.borderStyle)
	return out
}

// renderContentLine renders a single bordered, padded, aligned content
// line, truncating it if it's wider than contentWidth.
func (p *Panel) renderContentLine(line styledstr.StyledView, contentWidth int) styledstr.StyledString {
	var out styledstr.StyledString
	out.PushText(p.box.Left, p.borderStyle)
	if p.padding > 0 {
		out.PushText(strings.Repeat(" ", p.padding), styledstr.Style{})
	}

	lineLen := line.Len()
	if lineLen > contentWidth {
		trunc, _, err := line.SplitAt(contentWidth)
		if err != nil {
			trunc = line
		}
		out = out.Append(trunc)
	} else {
		padding := contentWidth - lineLen
		switch p.align {
		case AlignRight:
			if padding > 0 {
				out.PushText(strings.Repeat(" ", padding), styledstr.Style{})
			}
			out = out.Append(line)
		case AlignCenter:
			leftPad := padding / 2
			rightPad := padding - leftPad
			if leftPad > 0 {
				out.PushText(strings.Repeat(" ", leftPad), styledstr.Style{})
			}
			out = out.Append(line)
			if rightPad > 0 {
				out.PushText(strings.Repeat(" ", rightPad), styledstr.Style{})
			}
		default:
			out = out.Append(line)
			if padding > 0 {
				out.PushText(strings.Repeat(" ", padding), styledstr.Style{})
			}
		}
	}

	if p.padding > 0 {
		out.PushText(strings.Repeat(" ", p.padding), styledstr.Style{})
	}
	out.PushText(p.box.Right, p.borderStyle)
	return out
}
