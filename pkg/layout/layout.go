// Package layout maps a logical cursor index onto terminal rows and columns,
// taking the prompt and line wrapping into account.
package layout

// Width is a terminal column count. It is always at least 1, so the row
// arithmetic below never divides by zero.
type Width int

// NewWidth validates a reported column count, clamping non-positive values to 1
func NewWidth(columns int) Width {
	if columns < 1 {
		return 1
	}
	return Width(columns)
}

// Position is an absolute, zero-based screen cell
type Position struct {
	Row    int
	Column int
}

// Frame anchors one edited line on the screen: the row the prompt starts on,
// the prompt's column count and the window width the line is wrapped at.
type Frame struct {
	FirstRow  int
	PromptLen int
	Width     Width
}

// Position returns the screen cell of the logical cursor
func (f Frame) Position(cursor int) Position {
	offset := cursor + f.PromptLen
	w := int(f.Width)
	return Position{
		Row:    offset/w + f.FirstRow,
		Column: offset % w,
	}
}

// Rows returns how many screen rows a line of textLen runes spans, counting
// the row the cursor moves onto when the text ends exactly on a row boundary.
func (f Frame) Rows(textLen int) int {
	return (textLen+f.PromptLen)/int(f.Width) + 1
}

// Resize re-anchors the frame when the window width changed since the last
// placement. physicalRow is where the terminal reports its cursor now, which
// after a reflow is where the logical cursor ended up. It reports whether
// anything changed.
func (f *Frame) Resize(columns, physicalRow, cursor int) bool {
	w := NewWidth(columns)
	if w == f.Width {
		return false
	}
	f.Width = w
	// The cursor is cell cursor+PromptLen of the line, as in Position.
	f.FirstRow = physicalRow - (cursor+f.PromptLen)/int(w)
	if f.FirstRow < 0 {
		f.FirstRow = 0
	}
	return true
}

// Overflow returns how many rows the line would reach below the last screen
// row. painted is the number of cells that will be written, which can exceed
// the line itself while stale cells are being blanked. A non-positive height
// means the height is unknown and nothing overflows.
func (f Frame) Overflow(textLen, painted, height int) int {
	if height <= 0 {
		return 0
	}
	rows := f.Rows(textLen)
	if painted > 0 {
		if r := (painted-1)/int(f.Width) + 1; r > rows {
			rows = r
		}
	}
	over := f.FirstRow + rows - height
	if over < 0 {
		return 0
	}
	return over
}
