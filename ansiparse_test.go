package styledstr

import "testing"

func TestParseAnsiPlainText(t *testing.T) {
	s, err := ParseAnsi("hello")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Text() != "hello" || !s.IsPlain() {
		t.Errorf("got %q, plain=%v", s.Text(), s.IsPlain())
	}
}

func TestParseAnsiBoldRed(t *testing.T) {
	s, err := ParseAnsi("\x1b[1;31mhi\x1b[0m")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Text() != "hi" {
		t.Errorf("Text() = %q, want %q", s.Text(), "hi")
	}
	span, ok := s.Span(0)
	if !ok {
		t.Fatal("expected one span")
	}
	if !span.Style.HasEffect(EffectBold) {
		t.Error("expected bold")
	}
	fg, ok := span.Style.Foreground()
	if !ok || !fg.Equal(Named(Red)) {
		t.Errorf("expected red foreground, got %+v", fg)
	}
}

func TestParseAnsiReset(t *testing.T) {
	s, err := ParseAnsi("\x1b[1ma\x1b[0mb")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	spans := s.Spans()
	if len(spans) != 2 {
		t.Fatalf("expected 2 spans, got %d", len(spans))
	}
	if !spans[0].Style.HasEffect(EffectBold) {
		t.Error("first span should be bold")
	}
	if !spans[1].Style.IsDefault() {
		t.Error("second span should be reset to default")
	}
}

func TestParseAnsiIndexedAndTrueColor(t *testing.T) {
	s, err := ParseAnsi("\x1b[38;5;99mA\x1b[0m\x1b[48;2;10;20;30mB\x1b[0m")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	spans := s.Spans()
	if len(spans) != 2 {
		t.Fatalf("expected 2 spans, got %d", len(spans))
	}
	fg, _ := spans[0].Style.Foreground()
	if !fg.Equal(Indexed(99)) {
		t.Errorf("expected indexed 99, got %+v", fg)
	}
	bg, _ := spans[1].Style.Background()
	if !bg.Equal(RGB(10, 20, 30)) {
		t.Errorf("expected RGB(10,20,30), got %+v", bg)
	}
}

func TestParseAnsiBrightColors(t *testing.T) {
	s, err := ParseAnsi("\x1b[91;100mx\x1b[0m")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	span, _ := s.Span(0)
	fg, _ := span.Style.Foreground()
	bg, _ := span.Style.Background()
	if !fg.Equal(Named(BrightRed)) {
		t.Errorf("expected bright red fg, got %+v", fg)
	}
	if !bg.Equal(Named(BrightBlack)) {
		t.Errorf("expected bright black bg, got %+v", bg)
	}
}

func TestParseAnsiCRDiscardsCurrentLine(t *testing.T) {
	s, err := ParseAnsi("abc\rdef")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Text() != "def" {
		t.Errorf("Text() = %q, want %q (bare CR discards the current line)", s.Text(), "def")
	}
}

func TestParseAnsiTrailingCRPreservesText(t *testing.T) {
	s, err := ParseAnsi("\x1b[32mgreen\x1b[m\r")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Text() != "green" {
		t.Errorf("Text() = %q, want %q (a trailing CR with nothing after it must not discard content)", s.Text(), "green")
	}
}

func TestParseAnsiTrailingCRWithStyleAfterwardsPreservesText(t *testing.T) {
	s, err := ParseAnsi("\x1b[32mgreen\x1b[m!\r\x1b[m")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Text() != "green!" {
		t.Errorf("Text() = %q, want %q (a style-only escape after CR must not trigger the discard)", s.Text(), "green!")
	}
}

func TestParseAnsiCRFollowedByTextDiscardsLine(t *testing.T) {
	s, err := ParseAnsi("green\rX")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Text() != "X" {
		t.Errorf("Text() = %q, want %q (real text after CR discards the prior line content)", s.Text(), "X")
	}
}

func TestParseAnsiCRLFCollapsesToLineBreak(t *testing.T) {
	s, err := ParseAnsi("abc\r\ndef")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Text() != "abc\ndef" {
		t.Errorf("Text() = %q, want %q", s.Text(), "abc\ndef")
	}
}

func TestParseAnsiIgnoresNonSGRCSI(t *testing.T) {
	s, err := ParseAnsi("\x1b[2Jhello")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Text() != "hello" {
		t.Errorf("Text() = %q, want %q", s.Text(), "hello")
	}
}

func TestParseAnsiIgnoresOSC(t *testing.T) {
	s, err := ParseAnsi("\x1b]0;title\x07hello")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Text() != "hello" {
		t.Errorf("Text() = %q, want %q", s.Text(), "hello")
	}
}

func TestParseAnsiOSCWithStringTerminator(t *testing.T) {
	s, err := ParseAnsi("\x1b]0;title\x1b\\hello")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Text() != "hello" {
		t.Errorf("Text() = %q, want %q", s.Text(), "hello")
	}
}

func TestParseAnsiUnfinishedSequenceError(t *testing.T) {
	_, err := ParseAnsi("\x1b[1")
	ae, ok := err.(*AnsiError)
	if !ok {
		t.Fatalf("expected *AnsiError, got %T (%v)", err, err)
	}
	if ae.Kind != UnfinishedSequence {
		t.Errorf("Kind = %v, want UnfinishedSequence", ae.Kind)
	}
}

func TestParseAnsiInvalidFinalByteError(t *testing.T) {
	_, err := ParseAnsi("\x1b[1\x01")
	ae, ok := err.(*AnsiError)
	if !ok {
		t.Fatalf("expected *AnsiError, got %T (%v)", err, err)
	}
	if ae.Kind != InvalidSgrFinalByte {
		t.Errorf("Kind = %v, want InvalidSgrFinalByte", ae.Kind)
	}
}

func TestParseAnsiUnsupportedSGRParamIgnored(t *testing.T) {
	s, err := ParseAnsi("\x1b[1;999;31mhi\x1b[0m")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	span, _ := s.Span(0)
	if !span.Style.HasEffect(EffectBold) {
		t.Error("bold should still apply around the unrecognized parameter")
	}
	fg, _ := span.Style.Foreground()
	if !fg.Equal(Named(Red)) {
		t.Errorf("red should still apply, got %+v", fg)
	}
}
