//go:build wireinject

package di

import (
	"github.com/google/wire"
	"github.com/kcaldas/lineedit/pkg/config"
	"github.com/kcaldas/lineedit/pkg/logging"
)

// InitializeEditor is an injector function - Wire will generate the implementation
func InitializeEditor(settings config.Settings, logger logging.Logger) (*Editor, func(), error) {
	wire.Build(EditorSet)
	return nil, nil, nil
}
