// Package terminaltest provides an in-memory terminal for exercising code
// that draws through terminal.Terminal.
package terminaltest

import (
	"io"

	"github.com/kcaldas/lineedit/pkg/terminal"
)

// step is either a key to deliver or an action to run between keys
type step struct {
	key    terminal.KeyEvent
	action func()
}

// Screen is a virtual terminal backed by a terminal.Grid. Keys are scripted
// up front; once the script runs out ReadKey returns EndErr.
type Screen struct {
	grid *terminal.Grid

	steps  []step
	writes int

	// EndErr is returned by ReadKey after the last scripted key. It
	// defaults to io.EOF.
	EndErr error
}

var _ terminal.Terminal = (*Screen)(nil)

// New creates a blank screen
func New(width, height int) *Screen {
	return &Screen{
		grid:   terminal.NewGrid(width, height),
		EndErr: io.EOF,
	}
}

// Type queues one key per rune of text
func (s *Screen) Type(text string) *Screen {
	for _, r := range text {
		s.steps = append(s.steps, step{key: terminal.Char(r)})
	}
	return s
}

// Press queues keys
func (s *Screen) Press(keys ...terminal.KeyEvent) *Screen {
	for _, k := range keys {
		s.steps = append(s.steps, step{key: k})
	}
	return s
}

// Then queues fn to run after the keys queued so far have been read
func (s *Screen) Then(fn func()) *Screen {
	s.steps = append(s.steps, step{action: fn})
	return s
}

// ReadKey delivers the next scripted key
func (s *Screen) ReadKey() (terminal.KeyEvent, error) {
	for len(s.steps) > 0 {
		st := s.steps[0]
		s.steps = s.steps[1:]
		if st.action != nil {
			st.action()
			continue
		}
		return st.key, nil
	}
	return terminal.KeyEvent{}, s.EndErr
}

// Write prints text at the cursor
func (s *Screen) Write(text string) {
	s.writes++
	s.grid.Write(text)
}

// SetCursorPosition moves the cursor, clamped to the screen
func (s *Screen) SetCursorPosition(column, row int) {
	s.grid.MoveTo(column, row)
}

// CursorRow returns the cursor row
func (s *Screen) CursorRow() int {
	_, row := s.grid.Cursor()
	return row
}

// WindowWidth returns the column count
func (s *Screen) WindowWidth() int {
	w, _ := s.grid.Size()
	return w
}

// WindowHeight returns the row count
func (s *Screen) WindowHeight() int {
	_, h := s.grid.Size()
	return h
}

// Cursor returns the cursor cell. The column equals the width while a wrap
// is pending.
func (s *Screen) Cursor() (col, row int) {
	return s.grid.Cursor()
}

// MoveTo places the cursor without counting as a write
func (s *Screen) MoveTo(col, row int) {
	s.grid.MoveTo(col, row)
}

// Writes returns how many Write calls were made
func (s *Screen) Writes() int {
	return s.writes
}

// Row returns row y without trailing blanks
func (s *Screen) Row(y int) string {
	return s.grid.Row(y)
}

// Lines returns every row without trailing blanks, dropping blank rows at
// the bottom
func (s *Screen) Lines() []string {
	lines := make([]string, s.WindowHeight())
	last := -1
	for y := range lines {
		lines[y] = s.Row(y)
		if lines[y] != "" {
			last = y
		}
	}
	return lines[:last+1]
}

// Resize changes the width and reflows soft-wrapped rows
func (s *Screen) Resize(width int) {
	s.grid.Resize(width, s.WindowHeight())
}
