package console

import "github.com/eberle1080/styledstr"

// Text is a Renderable wrapping a single styled string, ignoring the
// available width.
type Text struct {
	String styledstr.StyledString
}

// NewText wraps s as a Renderable.
func NewText(s styledstr.StyledString) Text {
	return Text{String: s}
}

// Render implements Renderable.
func (t Text) Render(c *Console, width int) styledstr.StyledString {
	return t.String
}

// Lines is a Renderable joining several Renderables with newlines between
// them.
type Lines []Renderable

// Render implements Renderable, rendering each line at the given width and
// joining them with '\n'.
func (l Lines) Render(c *Console, width int) styledstr.StyledString {
	var out styledstr.StyledString
	for i, line := range l {
		if i > 0 {
			out.PushText("\n", styledstr.Style{})
		}
		out = out.Append(line.Render(c, width).View())
	}
	return out
}
