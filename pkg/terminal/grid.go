package terminal

import "strings"

// Grid is a character cell model of a terminal window. It wraps at the
// right edge with a deferred wrap like xterm, scrolls at the bottom row and
// reflows soft-wrapped rows when resized, the way modern emulators do.
// Backends that draw on a surface which does not reflow keep a Grid as the
// source of truth and paint it.
type Grid struct {
	width   int
	height  int
	cells   [][]rune
	wrapped []bool
	col     int
	row     int
}

// NewGrid creates a blank grid. Sizes below 1 are raised to 1.
func NewGrid(width, height int) *Grid {
	width, height = max(width, 1), max(height, 1)
	g := &Grid{
		width:   width,
		height:  height,
		cells:   make([][]rune, height),
		wrapped: make([]bool, height),
	}
	for y := range g.cells {
		g.cells[y] = blankRow(width)
	}
	return g
}

func blankRow(width int) []rune {
	row := make([]rune, width)
	for i := range row {
		row[i] = ' '
	}
	return row
}

// Size returns the column and row counts
func (g *Grid) Size() (width, height int) {
	return g.width, g.height
}

// Write prints text at the cursor. "\r" returns to column 0 and "\n" moves
// down one row without changing the column.
func (g *Grid) Write(text string) {
	for _, r := range text {
		switch r {
		case '\r':
			g.col = 0
		case '\n':
			g.wrapped[g.row] = false
			g.lineFeed()
		default:
			if g.col >= g.width {
				g.wrapped[g.row] = true
				g.col = 0
				g.lineFeed()
			}
			g.cells[g.row][g.col] = r
			g.col++
		}
	}
}

func (g *Grid) lineFeed() {
	g.row++
	if g.row >= g.height {
		g.cells = append(g.cells[1:], blankRow(g.width))
		g.wrapped = append(g.wrapped[1:], false)
		g.row = g.height - 1
	}
}

// MoveTo places the cursor, clamped to the grid
func (g *Grid) MoveTo(column, row int) {
	g.col = min(max(column, 0), g.width-1)
	g.row = min(max(row, 0), g.height-1)
}

// Cursor returns the cursor cell. The column equals the width while a wrap
// is pending.
func (g *Grid) Cursor() (col, row int) {
	return g.col, g.row
}

// Cell returns the rune at x, y
func (g *Grid) Cell(x, y int) rune {
	return g.cells[y][x]
}

// Row returns row y without trailing blanks
func (g *Grid) Row(y int) string {
	return strings.TrimRight(string(g.cells[y]), " ")
}

// Resize changes the size and reflows soft-wrapped rows. The cursor keeps
// its offset within its line. When the content no longer fits, blank rows
// below the cursor go first and then rows scroll off the top.
func (g *Grid) Resize(width, height int) {
	width, height = max(width, 1), max(height, 1)

	type line struct {
		text   []rune
		cursor int
	}

	var lines []line
	var cur []rune
	cursorLine, cursorOffset := -1, 0
	for y := 0; y < g.height; y++ {
		if y == g.row {
			cursorLine = len(lines)
			cursorOffset = len(cur) + g.col
		}
		if g.wrapped[y] {
			cur = append(cur, g.cells[y]...)
			continue
		}
		cur = append(cur, []rune(strings.TrimRight(string(g.cells[y]), " "))...)
		lines = append(lines, line{text: cur, cursor: -1})
		cur = nil
	}
	if cur != nil {
		lines = append(lines, line{text: cur, cursor: -1})
	}
	if cursorLine >= 0 {
		lines[cursorLine].cursor = cursorOffset
	}

	var rows [][]rune
	var wrapped []bool
	newRow, newCol := 0, 0
	for _, l := range lines {
		n := (len(l.text) + width - 1) / width
		if l.cursor >= 0 && l.cursor/width+1 > n {
			n = l.cursor/width + 1
		}
		n = max(n, 1)
		if l.cursor >= 0 {
			newRow = len(rows) + l.cursor/width
			newCol = l.cursor % width
		}
		for i := 0; i < n; i++ {
			r := blankRow(width)
			if start := i * width; start < len(l.text) {
				copy(r, l.text[start:min(start+width, len(l.text))])
			}
			rows = append(rows, r)
			wrapped = append(wrapped, i < n-1)
		}
	}

	for len(rows) > height && len(rows)-1 > newRow && strings.TrimSpace(string(rows[len(rows)-1])) == "" {
		rows = rows[:len(rows)-1]
		wrapped = wrapped[:len(wrapped)-1]
	}
	if over := len(rows) - height; over > 0 {
		rows = rows[over:]
		wrapped = wrapped[over:]
		newRow -= over
	}
	for len(rows) < height {
		rows = append(rows, blankRow(width))
		wrapped = append(wrapped, false)
	}

	g.width, g.height = width, height
	g.cells, g.wrapped = rows, wrapped
	g.row, g.col = newRow, newCol
}
