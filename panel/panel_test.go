package panel

import (
	"strings"
	"testing"

	"github.com/eberle1080/styledstr"
	"github.com/eberle1080/styledstr/console"
	"github.com/eberle1080/styledstr/table"
)

func plainText(s string) styledstr.StyledString {
	var out styledstr.StyledString
	out.PushText(s, styledstr.NewStyle())
	return out
}

func TestPanelBasic(t *testing.T) {
	p := New("Hello")

	con := console.New(nil)
	out := p.Render(con, 80).Text()

	if !strings.Contains(out, "Hello") {
		t.Error("Panel should contain content text")
	}
}

func TestPanelTitle(t *testing.T) {
	p := New("Content").Title("My Title")

	con := console.New(nil)
	out := p.Render(con, 80).Text()

	if !strings.Contains(out, "My Title") {
		t.Error("Panel should contain title")
	}
	if !strings.Contains(out, "Content") {
		t.Error("Panel should contain content")
	}
}

func TestPanelSubtitle(t *testing.T) {
	p := New("Content").
		Title("Title").
		Subtitle("Subtitle")

	con := console.New(nil)
	out := p.Render(con, 80).Text()

	if !strings.Contains(out, "Title") {
		t.Error("Panel should contain title")
	}
	if !strings.Contains(out, "Subtitle") {
		t.Error("Panel should contain subtitle")
	}
	if !strings.Contains(out, "Content") {
		t.Error("Panel should contain content")
	}
}

func TestPanelBoxStyles(t *testing.T) {
	boxes := []table.Box{
		table.BoxSimple,
		table.BoxRounded,
		table.BoxDouble,
		table.BoxHeavy,
		table.BoxASCII,
	}

	con := console.New(nil)
	for _, box := range boxes {
		p := New("Test").Box(box)
		out := p.Render(con, 80).Text()
		if out == "" {
			t.Error("Panel should render output")
		}
	}
}

func TestPanelWidth(t *testing.T) {
	p := New("Test").Width(40).Expand(false)

	con := console.New(nil)
	out := p.Render(con, 80).Text()

	if out == "" {
		t.Error("Panel should render output")
	}
	if !strings.Contains(out, "Test") {
		t.Error("Panel should contain content")
	}
}

func TestPanelPadding(t *testing.T) {
	p1 := New("Test").Padding(0).Width(40)
	p2 := New("Test").Padding(3).Width(40)

	con := console.New(nil)
	out1 := p1.Render(con, 80).Text()
	out2 := p2.Render(con, 80).Text()

	if out1 == "" || out2 == "" {
		t.Error("Both panels should render")
	}
	if p1.padding != 0 {
		t.Error("Padding should be 0")
	}
	if p2.padding != 3 {
		t.Error("Padding should be 3")
	}
}

func TestPanelAlignment(t *testing.T) {
	tests := []struct {
		align Align
		name  string
	}{
		{AlignLeft, "left"},
		{AlignCenter, "center"},
		{AlignRight, "right"},
	}

	con := console.New(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New("X").Align(tt.align).Width(40)
			out := p.Render(con, 80).Text()
			if out == "" {
				t.Error("Panel should render output")
			}
		})
	}
}

func TestPanelWithRenderable(t *testing.T) {
	lines := console.Lines{
		console.NewText(plainText("Line 1")),
		console.NewText(plainText("Line 2")),
	}

	p := New(lines)

	con := console.New(nil)
	out := p.Render(con, 80).Text()

	if !strings.Contains(out, "Line 1") {
		t.Error("Panel should contain first line")
	}
	if !strings.Contains(out, "Line 2") {
		t.Error("Panel should contain second line")
	}
}

func TestPanelChaining(t *testing.T) {
	p := New("Test").
		Title("Title").
		Subtitle("Subtitle").
		Box(table.BoxRounded).
		Width(50).
		Padding(2).
		Align(AlignCenter)

	if p.title != "Title" {
		t.Error("Title not set")
	}
	if p.subtitle != "Subtitle" {
		t.Error("Subtitle not set")
	}
	if p.width != 50 {
		t.Error("Width not set")
	}
	if p.padding != 2 {
		t.Error("Padding not set")
	}
	if p.align != AlignCenter {
		t.Error("Align not set")
	}
}

func TestPanelExpand(t *testing.T) {
	p1 := New("Test").Expand(true).Width(0)
	p2 := New("Test").Expand(false).Width(0)

	con := console.New(nil)
	out1 := p1.Render(con, 80).Text()
	out2 := p2.Render(con, 80).Text()

	if len(out1) <= len(out2) {
		t.Error("Expanded panel should be wider")
	}
}

func TestPanelCustomStyles(t *testing.T) {
	p := New("Test").
		BorderStyle(styledstr.NewStyle().WithForeground(styledstr.Named(styledstr.Red))).
		TitleStyle(styledstr.NewStyle().WithEffect(styledstr.EffectBold)).
		Title("Styled")

	con := console.New(nil)
	out := p.Render(con, 80).Text()

	if out == "" {
		t.Error("Styled panel should render")
	}
}

func TestPanelEmpty(t *testing.T) {
	p := New("")

	con := console.New(nil)
	out := p.Render(con, 80).Text()

	if out == "" {
		t.Error("Empty panel should still render")
	}
}

func TestPanelNarrowWidth(t *testing.T) {
	p := New("Test").Width(5)

	con := console.New(nil)
	out := p.Render(con, 80).Text()

	if out == "" {
		t.Error("Narrow panel should still render")
	}
}
