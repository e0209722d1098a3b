package pkg

import (
	internalDI "github.com/kcaldas/lineedit/internal/di"
	"github.com/kcaldas/lineedit/pkg/config"
	"github.com/kcaldas/lineedit/pkg/logging"
)

// Editor is an engine bound to the terminal it draws on
type Editor = internalDI.Editor

// OpenEditor puts the configured terminal backend into editing mode and
// returns an editor reading from it. The cleanup restores the terminal and
// must be called once the program is done reading lines. A nil logger uses
// the global logger.
func OpenEditor(settings config.Settings, logger logging.Logger) (*Editor, func(), error) {
	if logger == nil {
		logger = logging.GetGlobalLogger()
	}
	if err := settings.Validate(); err != nil {
		return nil, nil, err
	}
	return internalDI.InitializeEditor(settings, logger)
}
