package memory

import (
	"context"
	"sync"

	"github.com/emomoto/auto-recruiter/internal/domain/model"
)

// SettingsStore holds the bot settings for a single process.
type SettingsStore struct {
	mu       sync.RWMutex
	settings model.BotSettings
	found    bool
}

// NewSettingsStore creates an empty settings store.
func NewSettingsStore() *SettingsStore { return &SettingsStore{} }

func (s *SettingsStore) Load(_ context.Context) (model.BotSettings, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings.Clone(), s.found, nil
}

func (s *SettingsStore) Save(_ context.Context, settings model.BotSettings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = settings.Clone()
	s.found = true
	return nil
}
