package table

import (
	"strings"
	"testing"

	"github.com/eberle1080/styledstr/console"
)

func TestTableBasic(t *testing.T) {
	tbl := New().
		Headers("A", "B", "C").
		Row("1", "2", "3").
		Row("4", "5", "6")

	con := console.New(nil)
	out := tbl.Render(con, 80).Text()

	if !strings.Contains(out, "A") {
		t.Error("Output should contain header 'A'")
	}
	if !strings.Contains(out, "1") {
		t.Error("Output should contain data '1'")
	}
}

func TestTableTitle(t *testing.T) {
	tbl := New().
		Title("Test Table").
		Headers("A", "B").
		Row("1", "2")

	con := console.New(nil)
	out := tbl.Render(con, 80).Text()

	if !strings.Contains(out, "Test Table") {
		t.Error("Output should contain title")
	}
}

func TestTableBoxStyles(t *testing.T) {
	boxes := []Box{
		BoxASCII,
		BoxRounded,
		BoxDouble,
		BoxHeavy,
		BoxSimple,
	}

	con := console.New(nil)
	for _, box := range boxes {
		tbl := New().
			Box(box).
			Headers("A", "B").
			Row("1", "2")

		out := tbl.Render(con, 80).Text()
		if out == "" {
			t.Errorf("Table with box style should render output")
		}
	}
}

func TestTableNoHeader(t *testing.T) {
	tbl := New().
		ShowHeader(false).
		Headers("A", "B").
		Row("1", "2")

	con := console.New(nil)
	out := tbl.Render(con, 80).Text()

	if !strings.Contains(out, "1") {
		t.Error("Output should contain data")
	}
}

func TestTableNoEdge(t *testing.T) {
	tbl := New().
		ShowEdge(false).
		Headers("A", "B").
		Row("1", "2")

	con := console.New(nil)
	out := tbl.Render(con, 80).Text()

	if !strings.Contains(out, "A") {
		t.Error("Output should contain header")
	}
}

func TestTableAlignment(t *testing.T) {
	tbl := New().
		AddColumn(NewColumn("Left").WithAlign(AlignLeft)).
		AddColumn(NewColumn("Center").WithAlign(AlignCenter)).
		AddColumn(NewColumn("Right").WithAlign(AlignRight)).
		Row("L", "C", "R")

	con := console.New(nil)
	out := tbl.Render(con, 80).Text()

	if out == "" {
		t.Error("Table should render output")
	}
}

func TestTableFixedWidth(t *testing.T) {
	tbl := New().
		AddColumn(NewColumn("Fixed").WithWidth(10)).
		Row("text")

	con := console.New(nil)
	out := tbl.Render(con, 80).Text()

	if out == "" {
		t.Error("Table should render output")
	}
}

func TestTableEmpty(t *testing.T) {
	tbl := New().
		Headers("A", "B")

	con := console.New(nil)
	out := tbl.Render(con, 80).Text()

	if out == "" {
		t.Error("Empty table should still render header")
	}
}

func TestTableNoColumns(t *testing.T) {
	tbl := New()

	con := console.New(nil)
	out := tbl.Render(con, 80)

	if !out.IsEmpty() {
		t.Error("Table with no columns should not render")
	}
}

func TestColumnChaining(t *testing.T) {
	col := NewColumn("Test").
		WithWidth(20).
		WithMinWidth(10).
		WithMaxWidth(30).
		WithAlign(AlignCenter).
		WithNoWrap()

	if col.Width != 20 {
		t.Error("Width not set")
	}
	if col.MinWidth != 10 {
		t.Error("MinWidth not set")
	}
	if col.MaxWidth != 30 {
		t.Error("MaxWidth not set")
	}
	if col.Align != AlignCenter {
		t.Error("Align not set")
	}
	if !col.NoWrap {
		t.Error("NoWrap not set")
	}
}

func TestTableChaining(t *testing.T) {
	tbl := New().
		Title("Title").
		Box(BoxRounded).
		ShowHeader(false).
		ShowEdge(false).
		Padding(2).
		Headers("A", "B").
		Row("1", "2")

	if tbl.title != "Title" {
		t.Error("Title not set")
	}
	if tbl.showHeader {
		t.Error("ShowHeader should be false")
	}
	if tbl.showEdge {
		t.Error("ShowEdge should be false")
	}
	if tbl.padding != 2 {
		t.Error("Padding not set")
	}
}

func TestAlignText(t *testing.T) {
	tbl := New()

	tests := []struct {
		text  string
		width int
		align Align
		check func(string) bool
	}{
		{"test", 10, AlignLeft, func(s string) bool {
			return strings.HasPrefix(s, "test") && len(s) == 10
		}},
		{"test", 10, AlignRight, func(s string) bool {
			return strings.HasSuffix(s, "test") && len(s) == 10
		}},
		{"test", 10, AlignCenter, func(s string) bool {
			return strings.Contains(s, "test") && len(s) == 10
		}},
	}

	for _, tt := range tests {
		result := tbl.alignText(tt.text, tt.width, tt.align)
		if !tt.check(result) {
			t.Errorf("alignText(%q, %d, %v) = %q failed check", tt.text, tt.width, tt.align, result)
		}
	}
}
