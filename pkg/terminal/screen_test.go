package terminal

import (
	"io"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSimScreen(t *testing.T, w, h int) (*Screen, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, sim.Init())
	sim.SetSize(w, h)
	sim.Clear()
	return NewScreen(sim), sim
}

func simRow(sim tcell.SimulationScreen, y int) string {
	cells, w, _ := sim.GetContents()
	var sb strings.Builder
	for x := 0; x < w; x++ {
		c := cells[y*w+x]
		if len(c.Runes) > 0 {
			sb.WriteRune(c.Runes[0])
		} else {
			sb.WriteRune(' ')
		}
	}
	return strings.TrimRight(sb.String(), " ")
}

func TestScreen_WriteWraps(t *testing.T) {
	s, sim := newSimScreen(t, 10, 4)
	defer s.Close()

	s.Write("> hello world")

	assert.Equal(t, "> hello wo", simRow(sim, 0))
	assert.Equal(t, "rld", simRow(sim, 1))
	assert.Equal(t, 1, s.CursorRow())

	x, y, visible := sim.GetCursor()
	assert.True(t, visible)
	assert.Equal(t, 3, x)
	assert.Equal(t, 1, y)
}

func TestScreen_ScrollsAtBottom(t *testing.T) {
	s, sim := newSimScreen(t, 5, 2)
	defer s.Close()

	s.Write("one\r\ntwo\r\nthree")

	assert.Equal(t, "two", simRow(sim, 0))
	assert.Equal(t, "three", simRow(sim, 1))
	assert.Equal(t, 1, s.CursorRow())
}

func TestScreen_SetCursorPosition(t *testing.T) {
	s, sim := newSimScreen(t, 10, 4)
	defer s.Close()

	s.SetCursorPosition(3, 2)
	s.Write("x")
	assert.Equal(t, "   x", simRow(sim, 2))

	s.SetCursorPosition(50, 50)
	x, y, _ := sim.GetCursor()
	assert.Equal(t, 9, x)
	assert.Equal(t, 3, y)
}

func TestScreen_Size(t *testing.T) {
	s, sim := newSimScreen(t, 12, 7)
	defer s.Close()

	assert.Equal(t, 12, s.WindowWidth())
	assert.Equal(t, 7, s.WindowHeight())

	sim.SetSize(30, 9)
	assert.Equal(t, 30, s.WindowWidth())
}

func TestScreen_ReadKey(t *testing.T) {
	s, sim := newSimScreen(t, 10, 4)
	defer s.Close()

	sim.InjectKey(tcell.KeyRune, 'a', tcell.ModNone)
	sim.InjectKey(tcell.KeyLeft, 0, tcell.ModCtrl)
	sim.InjectKey(tcell.KeyBackspace2, 0, tcell.ModNone)
	sim.InjectKey(tcell.KeyCtrlA, 0, tcell.ModCtrl)
	sim.InjectKey(tcell.KeyRune, 'b', tcell.ModAlt)
	sim.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)

	want := []KeyEvent{
		Char('a'),
		Special(KeyLeft).With(ModCtrl),
		Special(KeyBackspace),
		Ctrl('a'),
		Char('b').With(ModAlt),
		Special(KeyEnter),
	}
	for _, w := range want {
		ev, err := s.ReadKey()
		require.NoError(t, err)
		assert.Equal(t, w, ev)
	}
}

func TestScreen_ReadKeyEndOfInput(t *testing.T) {
	t.Run("ctrl+d", func(t *testing.T) {
		s, sim := newSimScreen(t, 10, 4)
		defer s.Close()

		sim.InjectKey(tcell.KeyCtrlD, 0, tcell.ModCtrl)
		_, err := s.ReadKey()
		assert.ErrorIs(t, err, io.EOF)
	})

	t.Run("screen closed", func(t *testing.T) {
		s, _ := newSimScreen(t, 10, 4)
		s.Close()

		_, err := s.ReadKey()
		assert.ErrorIs(t, err, io.EOF)
	})
}

func TestScreen_ResizeReflows(t *testing.T) {
	s, sim := newSimScreen(t, 20, 6)
	defer s.Close()

	s.Write("above\r\n\r\n> abcdefghijkl")
	sim.SetSize(10, 6)

	assert.Equal(t, 3, s.CursorRow())
	assert.Equal(t, "above", simRow(sim, 0))
	assert.Equal(t, "", simRow(sim, 1))
	assert.Equal(t, "> abcdefgh", simRow(sim, 2))
	assert.Equal(t, "ijkl", simRow(sim, 3))

	x, y, _ := sim.GetCursor()
	assert.Equal(t, 4, x)
	assert.Equal(t, 3, y)

	s.Write("m")
	assert.Equal(t, "ijklm", simRow(sim, 3))
}

func TestScreen_ReadKeyAfterResize(t *testing.T) {
	s, sim := newSimScreen(t, 20, 4)
	defer s.Close()

	s.Write("> abcdefghijkl")
	sim.SetSize(10, 4)
	sim.PostEvent(tcell.NewEventResize(10, 4))
	sim.InjectKey(tcell.KeyRune, 'x', tcell.ModNone)

	ev, err := s.ReadKey()
	require.NoError(t, err)
	assert.Equal(t, Char('x'), ev)
	assert.Equal(t, "> abcdefgh", simRow(sim, 0))
	assert.Equal(t, "ijkl", simRow(sim, 1))
}
