package editor

import (
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/kcaldas/lineedit/pkg/buffer"
	"github.com/kcaldas/lineedit/pkg/layout"
	"github.com/kcaldas/lineedit/pkg/logging"
)

type state int

const (
	editing state = iota
	submitted
)

// session is the state of one ReadLine call. It is created when the call
// starts, owned by the engine for its duration and dropped on return.
type session struct {
	id     string
	logger logging.Logger
	prompt string
	text   *buffer.Buffer
	cursor int

	// frame anchors the line on screen: prompt row, prompt width and the
	// window width the wrap math uses.
	frame layout.Frame

	// maxPrinted is the longest prompt+text ever painted, so shorter
	// repaints know how many stale cells to blank.
	maxPrinted int
}

func newSession(prompt string, firstRow, width int, logger logging.Logger) *session {
	id := uuid.NewString()
	return &session{
		id:     id,
		logger: logger.With("session", id),
		prompt: prompt,
		text:   buffer.New(""),
		frame: layout.Frame{
			FirstRow:  firstRow,
			PromptLen: utf8.RuneCountInString(prompt),
			Width:     layout.NewWidth(width),
		},
	}
}
