package terminal

import (
	"fmt"
	"io"

	"github.com/gdamore/tcell/v2"
)

// Screen implements Terminal on a tcell screen. tcell owns the whole window
// and neither wraps, scrolls nor reflows, so Screen keeps a Grid as the
// window contents and paints it. When tcell reports a new size the grid is
// reflowed and repainted, the way a terminal emulator rewraps its lines.
type Screen struct {
	screen tcell.Screen
	style  tcell.Style
	grid   *Grid
}

// NewScreen wraps an initialized tcell screen
func NewScreen(screen tcell.Screen) *Screen {
	w, h := screen.Size()
	return &Screen{
		screen: screen,
		style:  tcell.StyleDefault,
		grid:   NewGrid(w, h),
	}
}

// OpenScreen initializes the default tcell screen for the controlling terminal
func OpenScreen() (*Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize screen: %w", err)
	}
	screen.Clear()
	return NewScreen(screen), nil
}

// Close releases the underlying screen. Pending ReadKey calls return io.EOF.
func (s *Screen) Close() {
	s.screen.Fini()
}

// ReadKey waits for the next key event. A resize reflows the contents
// before the next key is returned.
func (s *Screen) ReadKey() (KeyEvent, error) {
	for {
		switch ev := s.screen.PollEvent().(type) {
		case nil:
			return KeyEvent{}, io.EOF
		case *tcell.EventResize:
			s.refit()
		case *tcell.EventKey:
			s.refit()
			key := fromTcell(ev)
			if key == Ctrl('c') || key == Ctrl('d') {
				return KeyEvent{}, io.EOF
			}
			return key, nil
		}
	}
}

// refit reflows the grid when the tcell screen changed size since the last
// paint
func (s *Screen) refit() {
	w, h := s.screen.Size()
	if gw, gh := s.grid.Size(); w == gw && h == gh {
		return
	}
	s.grid.Resize(w, h)
	s.paint()
	s.screen.Sync()
}

// paint copies the grid to the tcell back buffer and places the cursor
func (s *Screen) paint() {
	w, h := s.grid.Size()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			s.screen.SetContent(x, y, s.grid.Cell(x, y), nil, s.style)
		}
	}
	col, row := s.grid.Cursor()
	s.screen.ShowCursor(clamp(col, 0, w-1), row)
}

func fromTcell(ev *tcell.EventKey) KeyEvent {
	mod := fromTcellMod(ev.Modifiers())

	switch k := ev.Key(); k {
	case tcell.KeyRune:
		return KeyEvent{Key: KeyRune, Rune: ev.Rune(), Mod: mod}
	case tcell.KeyEnter:
		return Special(KeyEnter).With(mod)
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return Special(KeyBackspace).With(mod)
	case tcell.KeyDelete:
		return Special(KeyDelete).With(mod)
	case tcell.KeyLeft:
		return Special(KeyLeft).With(mod)
	case tcell.KeyRight:
		return Special(KeyRight).With(mod)
	case tcell.KeyUp:
		return Special(KeyUp).With(mod)
	case tcell.KeyDown:
		return Special(KeyDown).With(mod)
	case tcell.KeyHome:
		return Special(KeyHome).With(mod)
	case tcell.KeyEnd:
		return Special(KeyEnd).With(mod)
	case tcell.KeyEscape:
		return Special(KeyEscape).With(mod)
	case tcell.KeyTab:
		return Special(KeyTab).With(mod)
	case tcell.KeyBacktab:
		return Special(KeyTab).With(ModShift)
	default:
		if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
			return Ctrl(rune('a' + int(k-tcell.KeyCtrlA))).With(mod)
		}
		return Special(KeyUnknown)
	}
}

func fromTcellMod(m tcell.ModMask) Modifier {
	var mod Modifier
	if m&tcell.ModShift != 0 {
		mod |= ModShift
	}
	if m&(tcell.ModAlt|tcell.ModMeta) != 0 {
		mod |= ModAlt
	}
	if m&tcell.ModCtrl != 0 {
		mod |= ModCtrl
	}
	return mod
}

// Write draws text at the current position. "\r" returns to column 0 and
// "\n" moves down one row.
func (s *Screen) Write(text string) {
	s.refit()
	s.grid.Write(text)
	s.paint()
	s.screen.Show()
}

// SetCursorPosition moves the write position, clamped to the screen
func (s *Screen) SetCursorPosition(column, row int) {
	s.refit()
	s.grid.MoveTo(column, row)
	w, _ := s.grid.Size()
	col, y := s.grid.Cursor()
	s.screen.ShowCursor(clamp(col, 0, w-1), y)
	s.screen.Show()
}

// CursorRow returns the current write row
func (s *Screen) CursorRow() int {
	s.refit()
	_, row := s.grid.Cursor()
	return row
}

// WindowWidth returns the screen's column count
func (s *Screen) WindowWidth() int {
	s.refit()
	w, _ := s.grid.Size()
	return w
}

// WindowHeight returns the screen's row count
func (s *Screen) WindowHeight() int {
	s.refit()
	_, h := s.grid.Size()
	return h
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
