package terminal

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/kcaldas/lineedit/pkg/logging"
	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

const (
	readBufSize    = 256
	inputChanBuf   = 64
	defaultColumns = 80

	// DefaultEscapeTimeout is how long a lone ESC waits for the rest of a
	// sequence before it counts as the Escape key.
	DefaultEscapeTimeout = 25 * time.Millisecond
	// DefaultReportTimeout bounds the wait for a cursor position report.
	DefaultReportTimeout = time.Second
)

// ErrNotTerminal is returned by Open when the input is not a TTY
var ErrNotTerminal = errors.New("input is not a terminal")

var errTimeout = errors.New("timed out waiting for input")

// ANSI drives a VT100-compatible terminal: the input file is switched to raw
// mode, keys are decoded from escape sequences and the cursor row is queried
// with a Device Status Report.
type ANSI struct {
	in     *os.File
	out    io.Writer
	fd     int
	saved  *term.State
	logger logging.Logger

	input   chan []byte
	readErr error
	pending []byte

	lastRow  int
	lastCols int
	lastRows int

	EscapeTimeout time.Duration
	ReportTimeout time.Duration
}

// NewANSI creates a terminal reading keys from in and drawing on out
func NewANSI(in *os.File, out io.Writer, logger logging.Logger) *ANSI {
	if logger == nil {
		logger = logging.NewDisabledLogger()
	}
	return &ANSI{
		in:            in,
		out:           out,
		fd:            int(in.Fd()),
		logger:        logger,
		lastCols:      defaultColumns,
		EscapeTimeout: DefaultEscapeTimeout,
		ReportTimeout: DefaultReportTimeout,
	}
}

// Open switches the input to raw mode and starts reading it
func (t *ANSI) Open() error {
	if !isatty.IsTerminal(t.in.Fd()) && !isatty.IsCygwinTerminal(t.in.Fd()) {
		return ErrNotTerminal
	}
	state, err := term.MakeRaw(t.fd)
	if err != nil {
		return fmt.Errorf("failed to enter raw mode: %w", err)
	}
	t.saved = state
	t.input = make(chan []byte, inputChanBuf)
	go t.readLoop()
	return nil
}

// Close restores the terminal mode saved by Open
func (t *ANSI) Close() error {
	if t.saved == nil {
		return nil
	}
	err := term.Restore(t.fd, t.saved)
	t.saved = nil
	return err
}

// readLoop copies raw input into the channel until the source fails. The
// error is published before the channel is closed.
func (t *ANSI) readLoop() {
	buf := make([]byte, readBufSize)
	for {
		n, err := t.in.Read(buf)
		if n > 0 {
			b := make([]byte, n)
			copy(b, buf[:n])
			t.input <- b
		}
		if err != nil {
			t.readErr = err
			close(t.input)
			return
		}
	}
}

// fill appends the next chunk of input to pending. A non-positive timeout
// waits indefinitely.
func (t *ANSI) fill(timeout time.Duration) error {
	var timer <-chan time.Time
	if timeout > 0 {
		tm := time.NewTimer(timeout)
		defer tm.Stop()
		timer = tm.C
	}

	select {
	case b, ok := <-t.input:
		if !ok {
			if t.readErr != nil {
				return t.readErr
			}
			return io.EOF
		}
		t.pending = append(t.pending, b...)
		return nil
	case <-timer:
		return errTimeout
	}
}

// ReadKey returns the next decoded key. Ctrl+C and Ctrl+D end the key
// source and are reported as io.EOF.
func (t *ANSI) ReadKey() (KeyEvent, error) {
	if t.input == nil {
		return KeyEvent{}, io.EOF
	}
	for {
		if len(t.pending) > 0 {
			ev, n := decodeKey(t.pending)
			if n > 0 {
				t.pending = t.pending[n:]
				if ev == Ctrl('c') || ev == Ctrl('d') {
					return KeyEvent{}, io.EOF
				}
				return ev, nil
			}

			if t.pending[0] == esc {
				err := t.fill(t.EscapeTimeout)
				if err == nil {
					continue
				}
				// Nothing completed the sequence: the ESC stands alone.
				t.pending = t.pending[1:]
				return Special(KeyEscape), nil
			}
		}

		if err := t.fill(0); err != nil {
			if len(t.pending) > 0 {
				t.logger.Debug("dropping incomplete input", "bytes", len(t.pending))
				t.pending = nil
			}
			return KeyEvent{}, err
		}
	}
}

// Write sends text to the output. Failures are logged, not returned.
func (t *ANSI) Write(text string) {
	if _, err := io.WriteString(t.out, text); err != nil {
		logging.LogError(t.logger, "terminal write failed", err)
	}
}

// SetCursorPosition moves the hardware cursor to a zero-based cell
func (t *ANSI) SetCursorPosition(column, row int) {
	t.Write(fmt.Sprintf("\x1b[%d;%dH", row+1, column+1))
}

// CursorRow asks the terminal where its cursor is. Keys typed while the
// report is outstanding are kept for ReadKey. On timeout the last known row
// is returned.
func (t *ANSI) CursorRow() int {
	if t.input == nil {
		return t.lastRow
	}
	t.Write("\x1b[6n")

	deadline := time.Now().Add(t.ReportTimeout)
	for {
		if row, start, end, ok := findCursorReport(t.pending); ok {
			t.pending = append(t.pending[:start:start], t.pending[end:]...)
			t.lastRow = row - 1
			return t.lastRow
		}

		remaining := time.Until(deadline)
		if remaining <= 0 {
			t.logger.Warn("cursor position report timed out", "row", t.lastRow)
			return t.lastRow
		}
		if err := t.fill(remaining); err != nil {
			if !errors.Is(err, errTimeout) {
				t.logger.Debug("input closed while waiting for cursor report", "error", err)
			}
			return t.lastRow
		}
	}
}

// WindowWidth returns the column count, or the last known one if the size
// cannot be read.
func (t *ANSI) WindowWidth() int {
	t.refreshSize()
	return t.lastCols
}

// WindowHeight returns the row count, or 0 if it was never readable
func (t *ANSI) WindowHeight() int {
	t.refreshSize()
	return t.lastRows
}

func (t *ANSI) refreshSize() {
	cols, rows, err := term.GetSize(t.fd)
	if err != nil {
		t.logger.Debug("failed to read window size", "error", err)
		return
	}
	t.lastCols = cols
	t.lastRows = rows
}
