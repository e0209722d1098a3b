package editor

import (
	"strings"
	"unicode"

	"github.com/kcaldas/lineedit/pkg/keymap"
)

// transition applies one action to the session it is handed and reports
// the resulting state. Transitions only touch the session, the terminal and
// the history through their arguments.
type transition func(e *Engine, s *session) state

var transitions = map[keymap.Action]transition{
	keymap.ActionBackspace:   (*Engine).backspace,
	keymap.ActionDelete:      (*Engine).deleteChar,
	keymap.ActionLeft:        (*Engine).left,
	keymap.ActionRight:       (*Engine).right,
	keymap.ActionHome:        (*Engine).home,
	keymap.ActionEnd:         (*Engine).end,
	keymap.ActionClear:       (*Engine).clear,
	keymap.ActionHistoryPrev: (*Engine).historyPrev,
	keymap.ActionHistoryNext: (*Engine).historyNext,
	keymap.ActionSubmit:      (*Engine).submit,
	keymap.ActionNoop:        (*Engine).noop,
	keymap.ActionWordLeft:    (*Engine).wordLeft,
	keymap.ActionWordRight:   (*Engine).wordRight,
	keymap.ActionKillToEnd:   (*Engine).killToEnd,
	keymap.ActionKillWord:    (*Engine).killWord,
	keymap.ActionPaste:       (*Engine).paste,
}

// insert types text at the cursor
func (e *Engine) insert(s *session, text string) {
	if err := s.text.InsertString(s.cursor, text); err != nil {
		s.logger.Debug("insert rejected", "cursor", s.cursor, "error", err)
		return
	}
	e.refresh(s)
	e.moveCursor(s, s.cursor+len([]rune(text)))
}

func (e *Engine) backspace(s *session) state {
	if s.cursor == 0 {
		return editing
	}
	if err := s.text.RemoveAt(s.cursor - 1); err != nil {
		s.logger.Debug("backspace rejected", "cursor", s.cursor, "error", err)
		return editing
	}
	e.refresh(s)
	e.moveCursor(s, s.cursor-1)
	return editing
}

func (e *Engine) deleteChar(s *session) state {
	if s.cursor >= s.text.Len() {
		return editing
	}
	if err := s.text.RemoveAt(s.cursor); err != nil {
		s.logger.Debug("delete rejected", "cursor", s.cursor, "error", err)
		return editing
	}
	e.refresh(s)
	e.placeCursor(s)
	return editing
}

func (e *Engine) left(s *session) state {
	if s.cursor > 0 {
		e.moveCursor(s, s.cursor-1)
	}
	return editing
}

func (e *Engine) right(s *session) state {
	if s.cursor < s.text.Len() {
		e.moveCursor(s, s.cursor+1)
	}
	return editing
}

func (e *Engine) home(s *session) state {
	e.moveCursor(s, 0)
	return editing
}

func (e *Engine) end(s *session) state {
	e.moveCursor(s, s.text.Len())
	return editing
}

func (e *Engine) clear(s *session) state {
	s.text.Clear()
	e.refresh(s)
	e.moveCursor(s, 0)
	return editing
}

// replace swaps the whole line for a recalled entry
func (e *Engine) replace(s *session, text string) {
	s.text.Set(text)
	e.refresh(s)
	e.moveCursor(s, s.text.Len())
}

func (e *Engine) historyPrev(s *session) state {
	if entry, ok := e.history.Previous(); ok {
		e.replace(s, entry)
	}
	return editing
}

func (e *Engine) historyNext(s *session) state {
	if entry, ok := e.history.Next(); ok {
		e.replace(s, entry)
	}
	return editing
}

func (e *Engine) submit(s *session) state {
	return submitted
}

func (e *Engine) noop(s *session) state {
	return editing
}

func (e *Engine) wordLeft(s *session) state {
	e.moveCursor(s, s.text.PrevWordStart(s.cursor))
	return editing
}

func (e *Engine) wordRight(s *session) state {
	e.moveCursor(s, s.text.NextWordEnd(s.cursor))
	return editing
}

func (e *Engine) killToEnd(s *session) state {
	if s.cursor >= s.text.Len() {
		return editing
	}
	if err := s.text.Truncate(s.cursor); err != nil {
		s.logger.Debug("kill rejected", "cursor", s.cursor, "error", err)
		return editing
	}
	e.refresh(s)
	e.placeCursor(s)
	return editing
}

func (e *Engine) killWord(s *session) state {
	if s.cursor == 0 {
		return editing
	}
	start := s.text.PrevWordStart(s.cursor)
	if err := s.text.RemoveRange(start, s.cursor); err != nil {
		s.logger.Debug("kill rejected", "cursor", s.cursor, "error", err)
		return editing
	}
	e.refresh(s)
	e.moveCursor(s, start)
	return editing
}

func (e *Engine) paste(s *session) state {
	text, err := e.clipboard.Paste()
	if err != nil {
		s.logger.Debug("paste failed", "error", err)
		return editing
	}
	if text = pasteable(text); text != "" {
		e.insert(s, text)
	}
	return editing
}

// pasteable keeps the first line of text and drops runes that would not
// occupy exactly one cell.
func pasteable(text string) string {
	if i := strings.IndexAny(text, "\r\n"); i >= 0 {
		text = text[:i]
	}
	return strings.Map(func(r rune) rune {
		if !unicode.IsPrint(r) {
			return -1
		}
		return r
	}, text)
}
