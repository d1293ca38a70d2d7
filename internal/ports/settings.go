package ports

import (
	"context"

	"github.com/emomoto/auto-recruiter/internal/domain/model"
)

// SettingsStore persists the recruitment bot settings.
type SettingsStore interface {
	// Load returns found=false when nothing has been saved yet.
	Load(ctx context.Context) (settings model.BotSettings, found bool, err error)
	Save(ctx context.Context, settings model.BotSettings) error
}
