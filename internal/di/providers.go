package di

import (
	"fmt"
	"os"

	"github.com/google/wire"
	"github.com/kcaldas/lineedit/pkg/clipboard"
	"github.com/kcaldas/lineedit/pkg/config"
	"github.com/kcaldas/lineedit/pkg/editor"
	"github.com/kcaldas/lineedit/pkg/history"
	"github.com/kcaldas/lineedit/pkg/keymap"
	"github.com/kcaldas/lineedit/pkg/logging"
	"github.com/kcaldas/lineedit/pkg/terminal"
)

// Editor is a ready engine together with the terminal it draws on, so the
// host can write its own output between lines.
type Editor struct {
	Engine   *editor.Engine
	Terminal terminal.Terminal
}

// EditorSet provides everything InitializeEditor needs besides its inputs
var EditorSet = wire.NewSet(
	ProvideKeymap,
	ProvideHistory,
	ProvideClipboard,
	ProvideTerminal,
	ProvideEngine,
	wire.Struct(new(Editor), "*"),
)

// ProvideKeymap builds the stock keymap with the configured overrides
func ProvideKeymap(settings config.Settings) (*keymap.Keymap, error) {
	return keymap.New(settings.Bindings)
}

// ProvideHistory provides the history shared by every line read
func ProvideHistory(settings config.Settings) editor.History {
	return history.New(settings.HistorySize)
}

// ProvideClipboard provides the system clipboard for the paste action
func ProvideClipboard() clipboard.Clipboard {
	return clipboard.NewSystem()
}

// ProvideTerminal opens the configured backend on the controlling terminal.
// The cleanup restores the terminal.
func ProvideTerminal(settings config.Settings, logger logging.Logger) (terminal.Terminal, func(), error) {
	switch settings.Backend {
	case config.BackendTcell:
		screen, err := terminal.OpenScreen()
		if err != nil {
			return nil, nil, err
		}
		return screen, screen.Close, nil
	case config.BackendANSI, "":
		ansi := terminal.NewANSI(os.Stdin, os.Stdout, logging.NewComponentLogger(logger, "terminal"))
		if err := ansi.Open(); err != nil {
			return nil, nil, err
		}
		cleanup := func() {
			if err := ansi.Close(); err != nil {
				logging.LogError(logger, "failed to restore terminal", err)
			}
		}
		return ansi, cleanup, nil
	default:
		return nil, nil, fmt.Errorf("unknown backend %q", settings.Backend)
	}
}

// ProvideEngine assembles the editor
func ProvideEngine(keys *keymap.Keymap, hist editor.History, clip clipboard.Clipboard, term terminal.Terminal, logger logging.Logger) *editor.Engine {
	return editor.New(term, keys, hist,
		editor.WithClipboard(clip),
		editor.WithLogger(logging.NewComponentLogger(logger, "editor")),
	)
}
