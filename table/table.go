package table

import (
	"strings"

	"github.com/eberle1080/styledstr"
	"github.com/eberle1080/styledstr/console"
)

// Table represents a table with headers, rows, and borders. It implements
// console.Renderable and can be displayed with a console.Console.
//
// Tables are built using a fluent API:
//
//	table.New().
//		Title("Users").
//		Headers("Name", "Age").
//		Row("Alice", "30").
//		Row("Bob", "25")
type Table struct {
	columns []*Column
	rows    [][]string

	title string
	box   Box

	showHeader bool
	showEdge   bool

	padding int

	borderStyle styledstr.Style
	titleStyle  styledstr.Style
}

// New creates a table with sensible defaults: BoxSimple borders, header
// row and outer edge visible, 1 character of padding, dim borders, bold
// title.
func New() *Table {
	return &Table{
		box:         BoxSimple,
		showHeader:  true,
		showEdge:    true,
		padding:     1,
		borderStyle: styledstr.NewStyle().WithEffect(styledstr.EffectDimmed),
		titleStyle:  styledstr.NewStyle().WithEffect(styledstr.EffectBold),
	}
}

// Title sets the table title, centered in its own row above the headers.
func (t *Table) Title(title string) *Table {
	t.title = title
	return t
}

// Box sets the border style.
func (t *Table) Box(box Box) *Table {
	t.box = box
	return t
}

// ShowHeader controls whether the header row is displayed.
func (t *Table) ShowHeader(show bool) *Table {
	t.showHeader = show
	return t
}

// ShowEdge controls whether the outer border is displayed.
func (t *Table) ShowEdge(show bool) *Table {
	t.showEdge = show
	return t
}

// Padding sets the cell padding in characters (both sides).
func (t *Table) Padding(padding int) *Table {
	t.padding = padding
	return t
}

// BorderStyle sets the style applied to border characters.
func (t *Table) BorderStyle(style styledstr.Style) *Table {
	t.borderStyle = style
	return t
}

// TitleStyle sets the style applied to the title text.
func (t *Table) TitleStyle(style styledstr.Style) *Table {
	t.titleStyle = style
	return t
}

// AddColumn adds a fully configured column to the table.
func (t *Table) AddColumn(column *Column) *Table {
	t.columns = append(t.columns, column)
	return t
}

// Headers adds one left-aligned, auto-width column per header string.
func (t *Table) Headers(headers ...string) *Table {
	for _, header := range headers {
		t.AddColumn(NewColumn(header))
	}
	return t
}

// Row adds a data row, matching cells to columns by position.
func (t *Table) Row(cells ...string) *Table {
	t.rows = append(t.rows, cells)
	return t
}

// Render implements console.Renderable.
func (t *Table) Render(c *console.Console, width int) styledstr.StyledString {
	if len(t.columns) == 0 {
		return styledstr.StyledString{}
	}

	widths := t.calculateWidths(width)
	var out styledstr.StyledString

	if t.showEdge {
		out = out.Append(t.renderTopBorder(widths).View())
		out.PushText("\n", styledstr.Style{})
	}
	if t.title != "" {
		out = out.Append(t.renderTitle(widths).View())
		out.PushText("\n", styledstr.Style{})
	}
	if t.showHeader {
		out = out.Append(t.renderHeader(widths).View())
		out.PushText("\n", styledstr.Style{})
		out = out.Append(t.renderHeaderSeparator(widths).View())
		out.PushText("\n", styledstr.Style{})
	}
	for i, row := range t.rows {
		out = out.Append(t.renderRow(row, widths).View())
		if i < len(t.rows)-1 {
			out.PushText("\n", styledstr.Style{})
		}
	}
	if len(t.rows) > 0 {
		out.PushText("\n", styledstr.Style{})
	}
	if t.showEdge {
		out = out.Append(t.renderBottomBorder(widths).View())
	}
	return out
}

// calculateWidths determines each column's actual width: the maximum of
// header length, MinWidth, and the longest cell in the column, then
// clamped by Width (fixed) or MaxWidth (ceiling).
func (t *Table) calculateWidths(totalWidth int) []int {
	widths := make([]int, len(t.columns))
	for i, col := range t.columns {
		widths[i] = len(col.Header)
		if col.MinWidth > widths[i] {
			widths[i] = col.MinWidth
		}
	}
	for _, row := range t.rows {
		for i := 0; i < len(row) && i < len(widths); i++ {
			if n := len(row[i]); n > widths[i] {
				widths[i] = n
			}
		}
	}
	for i, col := range t.columns {
		if col.Width > 0 {
			widths[i] = col.Width
		} else if col.MaxWidth > 0 && widths[i] > col.MaxWidth {
			widths[i] = col.MaxWidth
		}
	}
	return widths
}

func (t *Table) renderTopBorder(widths []int) styledstr.StyledString {
	return t.renderBorderRow(widths, t.box.TopLeft, t.box.Top, t.box.MidTop, t.box.TopRight)
}

func (t *Table) renderBottomBorder(widths []int) styledstr.StyledString {
	return t.renderBorderRow(widths, t.box.BottomLeft, t.box.Bottom, t.box.MidBottom, t.box.BottomRight)
}

func (t *Table) renderHeaderSeparator(widths []int) styledstr.StyledString {
	return t.renderBorderRow(widths, t.box.HeaderLeft, t.box.HeaderRow, t.box.Mid, t.box.HeaderRight)
}

func (t *Table) renderBorderRow(widths []int, left, fill, mid, right string) styledstr.StyledString {
	var out styledstr.StyledString
	if t.showEdge {
		out.PushText(left, t.borderStyle)
	}
	for i, width := range widths {
		out.PushText(strings.Repeat(fill, width+t.padding*2), t.borderStyle)
		if i < len(widths)-1 {
			out.PushText(mid, t.borderStyle)
		}
	}
	if t.showEdge {
		out.PushText(right, t.borderStyle)
	}
	return out
}

func (t *Table) renderTitle(widths []int) styledstr.StyledString {
	totalWidth := 0
	for i, w := range widths {
		totalWidth += w + t.padding*2
		if i < len(widths)-1 {
			totalWidth++
		}
	}

	var out styledstr.StyledString
	if t.showEdge {
		out.PushText(t.box.Left, t.borderStyle)
	}
	titleLen := len(t.title)
	leftPad := (totalWidth - titleLen) / 2
	rightPad := totalWidth - titleLen - leftPad
	if leftPad > 0 {
		out.PushText(strings.Repeat(" ", leftPad), styledstr.Style{})
	}
	out.PushText(t.title, t.titleStyle)
	if rightPad > 0 {
		out.PushText(strings.Repeat(" ", rightPad), styledstr.Style{})
	}
	if t.showEdge {
		out.PushText(t.box.Right, t.borderStyle)
	}
	return out
}

func (t *Table) renderHeader(widths []int) styledstr.StyledString {
	var out styledstr.StyledString
	if t.showEdge {
		out.PushText(t.box.Left, t.borderStyle)
	}
	for i, col := range t.columns {
		width := widths[i]
		out.PushText(strings.Repeat(" ", t.padding), styledstr.Style{})
		out.PushText(t.alignText(col.Header, width, col.Align), col.HeaderStyle)
		out.PushText(strings.Repeat(" ", t.padding), styledstr.Style{})
		if i < len(t.columns)-1 {
			out.PushText(t.box.Left, t.borderStyle)
		}
	}
	if t.showEdge {
		out.PushText(t.box.Right, t.borderStyle)
	}
	return out
}

func (t *Table) renderRow(row []string, widths []int) styledstr.StyledString {
	var out styledstr.StyledString
	if t.showEdge {
		out.PushText(t.box.Left, t.borderStyle)
	}
	for i := 0; i < len(t.columns); i++ {
		col := t.columns[i]
		width := widths[i]
		cellText := ""
		if i < len(row) {
			cellText = row[i]
		}
		out.PushText(strings.Repeat(" ", t.padding), styledstr.Style{})
		if len(cellText) > width {
			cellText = cellText[:width]
		}
		out.PushText(t.alignText(cellText, width, col.Align), col.CellStyle)
		out.PushText(strings.Repeat(" ", t.padding), styledstr.Style{})
		if i < len(t.columns)-1 {
			out.PushText(t.box.Left, t.borderStyle)
		}
	}
	if t.showEdge {
		out.PushText(t.box.Right, t.borderStyle)
	}
	return out
}

// alignText pads text to exactly width characters per align, leaving text
// unchanged if it already fills or exceeds width.
func (t *Table) alignText(text string, width int, align Align) string {
	textLen := len(text)
	if textLen >= width {
		return text
	}
	padding := width - textLen
	switch align {
	case AlignRight:
		return strings.Repeat(" ", padding) + text
	case AlignCenter:
		leftPad := padding / 2
		rightPad := padding - leftPad
		return strings.Repeat(" ", leftPad) + text + strings.Repeat(" ", rightPad)
	default:
		return text + strings.Repeat(" ", padding)
	}
}
