package clipboard

import (
	"errors"

	"github.com/atotto/clipboard"
)

// ErrUnavailable is returned when no clipboard utility can be used
var ErrUnavailable = errors.New("clipboard unavailable")

// Clipboard reads text for the paste action
type Clipboard interface {
	Paste() (string, error)
}

// System reads the system clipboard
type System struct{}

func NewSystem() *System {
	return &System{}
}

func (c *System) Paste() (string, error) {
	if clipboard.Unsupported {
		return "", ErrUnavailable
	}
	return clipboard.ReadAll()
}

// Static always pastes the same text. Useful when no system clipboard exists
// and in tests.
type Static struct {
	Text string
	Err  error
}

func (c *Static) Paste() (string, error) {
	return c.Text, c.Err
}
