package table

import "github.com/eberle1080/styledstr"

// Align specifies how content is aligned within a column.
type Align int

const (
	// AlignLeft aligns content to the left side of the column.
	AlignLeft Align = iota
	// AlignCenter centers content within the column.
	AlignCenter
	// AlignRight aligns content to the right side of the column.
	AlignRight
)

// Column represents a table column configuration: header text, width
// constraints, alignment, and the styles applied to its header and data
// cells.
//
// Width behavior:
//   - Width > 0: the column has a fixed width.
//   - Width == 0: width is calculated from content, constrained by
//     MinWidth/MaxWidth.
type Column struct {
	Header string

	Width    int
	MinWidth int
	MaxWidth int

	Align Align

	HeaderStyle styledstr.Style
	CellStyle   styledstr.Style

	NoWrap bool
}

// NewColumn creates a column with the given header, left-aligned with a
// bold header style and unstyled cells.
func NewColumn(header string) *Column {
	return &Column{
		Header:      header,
		Align:       AlignLeft,
		HeaderStyle: styledstr.NewStyle().WithEffect(styledstr.EffectBold),
		CellStyle:   styledstr.NewStyle(),
	}
}

// WithWidth sets a fixed column width, overriding content-based sizing.
func (c *Column) WithWidth(width int) *Column {
	c.Width = width
	return c
}

// WithMinWidth sets the column's minimum width.
func (c *Column) WithMinWidth(width int) *Column {
	c.MinWidth = width
	return c
}

// WithMaxWidth sets the column's maximum width (0 = unlimited).
func (c *Column) WithMaxWidth(width int) *Column {
	c.MaxWidth = width
	return c
}

// WithAlign sets the column's content alignment.
func (c *Column) WithAlign(align Align) *Column {
	c.Align = align
	return c
}

// WithHeaderStyle sets the style applied to this column's header cell.
func (c *Column) WithHeaderStyle(style styledstr.Style) *Column {
	c.HeaderStyle = style
	return c
}

// WithCellStyle sets the style applied to this column's data cells.
func (c *Column) WithCellStyle(style styledstr.Style) *Column {
	c.CellStyle = style
	return c
}

// WithNoWrap sets NoWrap. Table rendering never wraps cell text, with or
// without it: a cell wider than its column is truncated.
func (c *Column) WithNoWrap() *Column {
	c.NoWrap = true
	return c
}
