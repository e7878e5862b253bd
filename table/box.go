package table

// Box defines the characters drawn for a table's or panel's border: three
// corners per edge, the straight edges themselves, and the T/cross
// junctions where the header separator row meets the left/right edges and
// the column separators. `table`/`panel` expose Box as a caller-settable
// style; `report` leaves it at the default and varies only BorderStyle's
// color per mismatch severity (red for a text mismatch, yellow for a
// style mismatch, green for a match).
type Box struct {
	TopLeft  string
	Top      string
	TopRight string

	Left  string
	Right string

	BottomLeft  string
	Bottom      string
	BottomRight string

	MidLeft   string
	MidRight  string
	MidTop    string
	MidBottom string
	Mid       string

	HeaderRow   string
	HeaderLeft  string
	HeaderRight string
}

// Predefined styles, in increasing order of visual weight.
var (
	// BoxASCII draws with only '+', '-', and '|': the fallback for
	// terminals or snapshot files where Unicode box-drawing glyphs would
	// not render consistently.
	//
	//   +------+------+
	//   | Name | Age  |
	//   +------+------+
	BoxASCII = Box{
		TopLeft:     "+",
		Top:         "-",
		TopRight:    "+",
		Left:        "|",
		Right:       "|",
		BottomLeft:  "+",
		Bottom:      "-",
		BottomRight: "+",
		MidLeft:     "+",
		MidRight:    "+",
		MidTop:      "+",
		MidBottom:   "+",
		Mid:         "+",
		HeaderRow:   "-",
		HeaderLeft:  "+",
		HeaderRight: "+",
	}

	// BoxRounded is the panel default: rounded corners, thin edges.
	//
	//   ╭──────┬──────╮
	//   │ Name │ Age  │
	//   ╰──────┴──────╯
	BoxRounded = Box{
		TopLeft:     "╭",
		Top:         "─",
		TopRight:    "╮",
		Left:        "│",
		Right:       "│",
		BottomLeft:  "╰",
		Bottom:      "─",
		BottomRight: "╯",
		MidLeft:     "├",
		MidRight:    "┤",
		MidTop:      "┬",
		MidBottom:   "┴",
		Mid:         "┼",
		HeaderRow:   "─",
		HeaderLeft:  "├",
		HeaderRight: "┤",
	}

	// BoxDouble uses double-line glyphs, for a report section that should
	// stand out from the ones around it.
	//
	//   ╔══════╦══════╗
	//   ║ Name ║ Age  ║
	//   ╚══════╩══════╝
	BoxDouble = Box{
		TopLeft:     "╔",
		Top:         "═",
		TopRight:    "╗",
		Left:        "║",
		Right:       "║",
		BottomLeft:  "╚",
		Bottom:      "═",
		BottomRight: "╝",
		MidLeft:     "╠",
		MidRight:    "╣",
		MidTop:      "╦",
		MidBottom:   "╩",
		Mid:         "╬",
		HeaderRow:   "═",
		HeaderLeft:  "╠",
		HeaderRight: "╣",
	}

	// BoxHeavy uses thick single-line glyphs: bolder than BoxDouble
	// without its doubled strokes.
	//
	//   ┏━━━━━━┳━━━━━━┓
	//   ┃ Name ┃ Age  ┃
	//   ┗━━━━━━┻━━━━━━┛
	BoxHeavy = Box{
		TopLeft:     "┏",
		Top:         "━",
		TopRight:    "┓",
		Left:        "┃",
		Right:       "┃",
		BottomLeft:  "┗",
		Bottom:      "━",
		BottomRight: "┛",
		MidLeft:     "┣",
		MidRight:    "┫",
		MidTop:      "┳",
		MidBottom:   "┻",
		Mid:         "╋",
		HeaderRow:   "━",
		HeaderLeft:  "┣",
		HeaderRight: "┫",
	}

	// BoxSimple uses square corners instead of BoxRounded's curves; it is
	// the table default.
	//
	//   ┌──────┬──────┐
	//   │ Name │ Age  │
	//   └──────┴──────┘
	BoxSimple = Box{
		TopLeft:     "┌",
		Top:         "─",
		TopRight:    "┐",
		Left:        "│",
		Right:       "│",
		BottomLeft:  "└",
		Bottom:      "─",
		BottomRight: "┘",
		MidLeft:     "├",
		MidRight:    "┤",
		MidTop:      "┬",
		MidBottom:   "┴",
		Mid:         "┼",
		HeaderRow:   "─",
		HeaderLeft:  "├",
		HeaderRight: "┤",
	}

	// BoxNone draws no border at all: every field is empty, for a table
	// or panel nested inside another bordered container.
	BoxNone = Box{}
)
