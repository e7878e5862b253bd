package report

import (
	"strings"
	"testing"

	"github.com/eberle1080/styledstr"
	"github.com/eberle1080/styledstr/console"
)

func view(text string, style styledstr.Style) styledstr.StyledView {
	var s styledstr.StyledString
	s.PushText(text, style)
	return s.View()
}

func TestCompareEqual(t *testing.T) {
	a := styledstr.NewStyle().WithEffect(styledstr.EffectBold)
	r := Compare(view("hello", a), view("hello", a))
	if !r.Equal() {
		t.Error("identical renders should compare equal")
	}
}

func TestCompareStyleMismatch(t *testing.T) {
	a := styledstr.NewStyle().WithEffect(styledstr.EffectBold)
	b := styledstr.NewStyle().WithForeground(styledstr.Named(styledstr.Red))
	r := Compare(view("hello", a), view("hello", b))
	if r.Equal() {
		t.Error("differing styles should not compare equal")
	}
	if r.textMismatch != nil {
		t.Error("same text should not produce a text mismatch")
	}
	if len(r.diff.Regions) == 0 {
		t.Error("expected at least one diff region")
	}
}

func TestCompareTextMismatch(t *testing.T) {
	s := styledstr.NewStyle()
	r := Compare(view("hello", s), view("goodbye", s))
	if r.Equal() {
		t.Error("differing text should not compare equal")
	}
	if r.textMismatch == nil {
		t.Error("expected a text mismatch")
	}
}

func TestRenderMatch(t *testing.T) {
	s := styledstr.NewStyle()
	r := Compare(view("hello", s), view("hello", s))
	con := console.New(nil)
	out := r.Render(con, 80).Text()
	if !strings.Contains(out, "match") {
		t.Error("matching report should mention a match")
	}
}

func TestRenderStyleMismatch(t *testing.T) {
	a := styledstr.NewStyle().WithEffect(styledstr.EffectBold)
	b := styledstr.NewStyle().WithForeground(styledstr.Named(styledstr.Red))
	r := Compare(view("hello", a), view("hello", b))
	con := console.New(nil)
	out := r.Render(con, 80).Text()
	if !strings.Contains(out, "Style Mismatch") {
		t.Error("expected a style mismatch panel")
	}
	if !strings.Contains(out, "hello") {
		t.Error("expected the mismatched text to appear in the report")
	}
}

func TestRenderTextMismatch(t *testing.T) {
	s := styledstr.NewStyle()
	r := Compare(view("hello", s), view("goodbye", s))
	con := console.New(nil)
	out := r.Render(con, 80).Text()
	if !strings.Contains(out, "Text Mismatch") {
		t.Error("expected a text mismatch panel")
	}
}

func TestPrint(t *testing.T) {
	s := styledstr.NewStyle()
	con := console.New(nil)

	ok, err := Print(con, view("hello", s), view("hello", s))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Error("expected matching report to return true")
	}

	ok, err = Print(con, view("hello", s), view("goodbye", s))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Error("expected mismatched report to return false")
	}
}
