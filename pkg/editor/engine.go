// Package editor implements interactive single-line editing on a terminal:
// key dispatch, in-place redraw across wrapped rows and history recall.
package editor

import (
	"errors"
	"fmt"
	"io"

	"github.com/kcaldas/lineedit/pkg/clipboard"
	"github.com/kcaldas/lineedit/pkg/keymap"
	"github.com/kcaldas/lineedit/pkg/logging"
	"github.com/kcaldas/lineedit/pkg/terminal"
)

// History is the recall log shared by every line read
type History interface {
	Add(text string)
	Previous() (string, bool)
	Next() (string, bool)
}

// Engine reads lines from a terminal. It keeps no per-line state between
// calls; only the history and keymap outlive a ReadLine.
type Engine struct {
	term      terminal.Terminal
	keys      *keymap.Keymap
	history   History
	clipboard clipboard.Clipboard
	logger    logging.Logger
}

// Option configures an Engine
type Option func(*Engine)

// WithClipboard sets the source for the paste action
func WithClipboard(c clipboard.Clipboard) Option {
	return func(e *Engine) {
		e.clipboard = c
	}
}

// WithLogger sets the logger used for debug output
func WithLogger(l logging.Logger) Option {
	return func(e *Engine) {
		e.logger = l
	}
}

// New creates an engine. keys is shared, never modified, and may be reused
// across engines.
func New(term terminal.Terminal, keys *keymap.Keymap, history History, opts ...Option) *Engine {
	e := &Engine{
		term:      term,
		keys:      keys,
		history:   history,
		clipboard: &clipboard.Static{Err: clipboard.ErrUnavailable},
		logger:    logging.NewDisabledLogger(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ReadLine shows prompt and edits a line until Enter is pressed. The
// submitted text is recorded in history and returned; an empty line is a
// valid result. When the key source runs out first it returns io.EOF and
// records nothing.
func (e *Engine) ReadLine(prompt string) (string, error) {
	s := newSession(prompt, e.term.CursorRow(), e.term.WindowWidth(), e.logger)
	s.logger.Debug("line started", "first_row", s.frame.FirstRow, "width", int(s.frame.Width))

	e.refresh(s)
	e.placeCursor(s)

	for {
		ev, err := e.term.ReadKey()
		if err != nil {
			e.finish(s)
			if errors.Is(err, io.EOF) {
				s.logger.Debug("end of input")
				return "", io.EOF
			}
			return "", fmt.Errorf("read key: %w", err)
		}

		if e.handle(s, ev) == submitted {
			break
		}
	}

	e.finish(s)
	text := s.text.String()
	e.history.Add(text)
	s.logger.Debug("line submitted", "length", s.text.Len())
	return text, nil
}

// finish leaves the cursor on a fresh row below the line
func (e *Engine) finish(s *session) {
	e.moveCursor(s, s.text.Len())
	e.term.Write("\r\n")
}

// handle applies one key to the session
func (e *Engine) handle(s *session, ev terminal.KeyEvent) state {
	e.syncWidth(s)

	action, ok := e.keys.Lookup(ev)
	if !ok {
		if ev.Printable() {
			e.insert(s, string(ev.Rune))
		} else {
			s.logger.Debug("ignoring key", "key", ev.String())
		}
		return editing
	}

	transition, ok := transitions[action]
	if !ok {
		s.logger.Warn("no transition for action", "action", action)
		return editing
	}
	s.logger.Debug("key", "key", ev.String(), "action", action)
	return transition(e, s)
}
