package styledstr

import (
	"strings"
	"testing"
)

func TestDiffTextMismatch(t *testing.T) {
	var left, right StyledString
	left.PushText("abc", NewStyle())
	right.PushText("abd", NewStyle())

	_, err := Diff(left.View(), right.View())
	tm, ok := err.(*TextMismatch)
	if !ok {
		t.Fatalf("expected *TextMismatch, got %T (%v)", err, err)
	}
	if tm.Left != "abc" || tm.Right != "abd" {
		t.Errorf("unexpected mismatch contents: %+v", tm)
	}
}

func TestDiffNoDifferences(t *testing.T) {
	var left, right StyledString
	bold := NewStyle().WithEffect(EffectBold)
	left.PushText("hello", bold)
	right.PushText("hello", bold)

	d, err := Diff(left.View(), right.View())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !d.IsEmpty() {
		t.Errorf("expected no diff regions, got %+v", d.Regions)
	}
}

func TestDiffFindsStyleRegion(t *testing.T) {
	var left, right StyledString
	left.PushText("hello world", NewStyle())
	right.PushText("hello ", NewStyle())
	right.PushText("world", NewStyle().WithEffect(EffectBold))

	d, err := Diff(left.View(), right.View())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(d.Regions) != 1 {
		t.Fatalf("expected 1 region, got %d: %+v", len(d.Regions), d.Regions)
	}
	r := d.Regions[0]
	if r.Start != 6 || r.End != 11 {
		t.Errorf("region = [%d,%d), want [6,11)", r.Start, r.End)
	}
	if d.Text[r.Start:r.End] != "world" {
		t.Errorf("region text = %q, want %q", d.Text[r.Start:r.End], "world")
	}
}

func TestDiffSuppressesWhitespaceOnlyRegion(t *testing.T) {
	var left, right StyledString
	left.PushText("a", NewStyle())
	left.PushText(" ", NewStyle())
	left.PushText("b", NewStyle())

	right.PushText("a", NewStyle())
	right.PushText(" ", NewStyle().WithEffect(EffectBold))
	right.PushText("b", NewStyle())

	d, err := Diff(left.View(), right.View())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !d.IsEmpty() {
		t.Errorf("whitespace-only style difference without a background change should be suppressed, got %+v", d.Regions)
	}
}

func TestDiffKeepsWhitespaceRegionWithBackgroundDifference(t *testing.T) {
	var left, right StyledString
	left.PushText("a", NewStyle())
	left.PushText(" ", NewStyle())
	left.PushText("b", NewStyle())

	right.PushText("a", NewStyle())
	right.PushText(" ", NewStyle().WithBackground(Named(Red)))
	right.PushText("b", NewStyle())

	d, err := Diff(left.View(), right.View())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(d.Regions) != 1 {
		t.Fatalf("expected 1 region for a background-only whitespace difference, got %d", len(d.Regions))
	}
}

func TestDiffDoesNotSuppressUnicodeSpaceSeparator(t *testing.T) {
	// U+00A0 NO-BREAK SPACE is Unicode whitespace (unicode.IsSpace would
	// suppress it) but is not in the spec's ASCII whitespace set, so a
	// styling difference there must still be reported.
	var left, right StyledString
	left.PushText("a", NewStyle())
	left.PushText(" ", NewStyle())
	left.PushText("b", NewStyle())

	right.PushText("a", NewStyle())
	right.PushText(" ", NewStyle().WithEffect(EffectBold))
	right.PushText("b", NewStyle())

	d, err := Diff(left.View(), right.View())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(d.Regions) != 1 {
		t.Fatalf("expected the U+00A0 region to be reported, got %d regions: %+v", len(d.Regions), d.Regions)
	}
}

func TestDiffKeepsAdjacentRunsWithDifferentStylePairsSeparate(t *testing.T) {
	var left, right StyledString
	left.PushText("ab", NewStyle())
	right.PushText("a", NewStyle().WithEffect(EffectBold))
	right.PushText("b", NewStyle().WithEffect(EffectItalic))

	d, err := Diff(left.View(), right.View())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(d.Regions) != 2 {
		t.Fatalf("differing styles on each side should produce separate regions, got %d: %+v", len(d.Regions), d.Regions)
	}
}

func TestDiffRenderInlineMarksChangedLines(t *testing.T) {
	var left, right StyledString
	left.PushText("same\nchanged\nsame", NewStyle())
	right.PushText("same\n", NewStyle())
	right.PushText("changed", NewStyle().WithEffect(EffectBold))
	right.PushText("\nsame", NewStyle())

	d, err := Diff(left.View(), right.View())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := d.RenderInline()
	if !strings.Contains(out, "> ") {
		t.Errorf("expected at least one changed-line marker, got %q", out)
	}
}

func TestDiffRenderTableHeaderAndRows(t *testing.T) {
	var left, right StyledString
	left.PushText("hi", NewStyle())
	right.PushText("hi", NewStyle().WithEffect(EffectBold).WithForeground(Named(Red)))

	d, err := Diff(left.View(), right.View())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := d.RenderTable()
	if !strings.Contains(out, "Positions") || !strings.Contains(out, "Left style") || !strings.Contains(out, "Right style") {
		t.Fatalf("missing table header, got %q", out)
	}
	if !strings.Contains(out, "0..2") {
		t.Errorf("expected a 0..2 position row, got %q", out)
	}
	if !strings.Contains(out, "default") {
		t.Errorf("expected the default left style to render as %q, got %q", "default", out)
	}
}
