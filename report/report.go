// Package report ties styledstr.Diff, table, panel, and console together
// into a single human-readable mismatch report for terminal display: given
// an expected and an actual styled render of the same text, it prints
// either a text-mismatch panel (the two texts differ) or a table of
// styling differences, one row per diff region.
package report

import (
	"strconv"

	"github.com/eberle1080/styledstr"
	"github.com/eberle1080/styledstr/console"
	"github.com/eberle1080/styledstr/panel"
	"github.com/eberle1080/styledstr/table"
)

// Report is the result of comparing an expected and an actual styled
// render. It implements console.Renderable.
type Report struct {
	expected, actual styledstr.StyledView

	diff         styledstr.StyleDiff
	textMismatch *styledstr.TextMismatch
}

// Compare builds a Report from two styled renders. If the underlying text
// differs, the report carries a TextMismatch and renders a side-by-side
// text comparison; otherwise it carries the style diff regions.
func Compare(expected, actual styledstr.StyledView) *Report {
	if expected.Text() != actual.Text() {
		return &Report{
			expected:     expected,
			actual:       actual,
			textMismatch: &styledstr.TextMismatch{Left: expected.Text(), Right: actual.Text()},
		}
	}

	diff, err := styledstr.Diff(expected, actual)
	if err != nil {
		// Text was confirmed equal above, so Diff cannot fail here; fall
		// back to a text-mismatch report rather than hiding the error.
		return &Report{
			expected:     expected,
			actual:       actual,
			textMismatch: &styledstr.TextMismatch{Left: expected.Text(), Right: actual.Text()},
		}
	}
	return &Report{expected: expected, actual: actual, diff: diff}
}

// Equal reports whether the two renders matched on both text and style.
func (r *Report) Equal() bool {
	return r.textMismatch == nil && len(r.diff.Regions) == 0
}

// Render implements console.Renderable.
func (r *Report) Render(c *console.Console, width int) styledstr.StyledString {
	if r.textMismatch != nil {
		return r.renderTextMismatch(c, width)
	}
	if r.Equal() {
		return r.renderMatch(c, width)
	}
	return r.renderStyleMismatch(c, width)
}

func (r *Report) renderMatch(c *console.Console, width int) styledstr.StyledString {
	style := styledstr.NewStyle().WithEffect(styledstr.EffectBold).WithForeground(styledstr.Named(styledstr.Green))
	p := panel.New("✓ styles match").
		Title("Report").
		BorderStyle(style).
		TitleStyle(style)
	return p.Render(c, width)
}

func (r *Report) renderTextMismatch(c *console.Console, width int) styledstr.StyledString {
	tbl := table.New().
		Headers("Expected", "Actual").
		Row(r.textMismatch.Left, r.textMismatch.Right)

	errStyle := styledstr.NewStyle().WithEffect(styledstr.EffectBold).WithForeground(styledstr.Named(styledstr.Red))
	p := panel.New(tbl).
		Title("Text Mismatch").
		BorderStyle(errStyle).
		TitleStyle(errStyle)
	return p.Render(c, width)
}

func (r *Report) renderStyleMismatch(c *console.Console, width int) styledstr.StyledString {
	tbl := table.New().
		Headers("Range", "Text", "Expected", "Actual")
	for _, region := range r.diff.Regions {
		tbl.Row(
			strconv.Itoa(region.Start)+".."+strconv.Itoa(region.End),
			r.diff.Text[region.Start:region.End],
			styleLabel(region.Left),
			styleLabel(region.Right),
		)
	}

	errStyle := styledstr.NewStyle().WithEffect(styledstr.EffectBold).WithForeground(styledstr.Named(styledstr.Yellow))
	p := panel.New(tbl).
		Title("Style Mismatch ("+strconv.Itoa(len(r.diff.Regions))+" region(s))").
		BorderStyle(errStyle).
		TitleStyle(errStyle)
	return p.Render(c, width)
}

func styleLabel(s styledstr.Style) string {
	if s.IsDefault() {
		return "(default)"
	}
	return s.RichToken()
}

// Print compares expected and actual, writes the resulting report to c,
// and returns whether they matched.
func Print(c *console.Console, expected, actual styledstr.StyledView) (bool, error) {
	r := Compare(expected, actual)
	if _, err := c.Renderln(r); err != nil {
		return false, err
	}
	return r.Equal(), nil
}
