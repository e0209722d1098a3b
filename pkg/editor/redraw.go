package editor

import (
	"strings"

	"github.com/kcaldas/lineedit/pkg/layout"
)

// refresh repaints the prompt and the whole line from the first row,
// blanking cells left over from a longer earlier paint. It must be followed
// by placeCursor.
func (e *Engine) refresh(s *session) {
	textLen := s.text.Len()
	printLen := s.frame.PromptLen + textLen
	painted := max(printLen, s.maxPrinted)

	// Scroll the terminal first if the line would run past the bottom row,
	// so the paint below never scrolls behind our back.
	if height := e.term.WindowHeight(); height > 0 {
		if over := s.frame.Overflow(textLen, painted, height); over > 0 {
			e.term.SetCursorPosition(0, height-1)
			e.term.Write(strings.Repeat("\n", over))
			s.frame.FirstRow = max(s.frame.FirstRow-over, 0)
			s.logger.Debug("scrolled to fit line", "rows", over, "first_row", s.frame.FirstRow)
		}
	}

	var sb strings.Builder
	sb.WriteString(s.prompt)
	sb.WriteString(s.text.String())
	if pad := s.maxPrinted - printLen; pad > 0 {
		sb.WriteString(strings.Repeat(" ", pad))
	}

	e.term.SetCursorPosition(0, s.frame.FirstRow)
	e.term.Write(sb.String())
	s.maxPrinted = painted
}

// placeCursor moves the hardware cursor to the logical cursor
func (e *Engine) placeCursor(s *session) {
	pos := s.frame.Position(s.cursor)
	e.term.SetCursorPosition(pos.Column, pos.Row)
}

// moveCursor updates the logical cursor and places the hardware one
func (e *Engine) moveCursor(s *session, cursor int) {
	s.cursor = cursor
	e.placeCursor(s)
}

// syncWidth compares the window width with the one the session last laid
// out for. On a change it re-anchors the first row from where the terminal
// now shows the cursor, then repaints. It must run before anything moves
// the hardware cursor, since the re-anchor relies on the cursor still
// sitting where the last placement left it.
func (e *Engine) syncWidth(s *session) {
	current := e.term.WindowWidth()
	if layout.NewWidth(current) == s.frame.Width {
		return
	}

	old := s.frame.Width
	s.frame.Resize(current, e.term.CursorRow(), s.cursor)
	s.logger.Debug("window width changed",
		"from", int(old),
		"to", int(s.frame.Width),
		"first_row", s.frame.FirstRow,
	)
	e.refresh(s)
	e.placeCursor(s)
}
