package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/emomoto/auto-recruiter/internal/domain/model"
)

// SettingsStore keeps the bot settings as one JSON document.
type SettingsStore struct {
	client redis.UniversalClient
	key    string
}

// NewSettingsStore creates a settings store under prefix + "bot-settings".
func NewSettingsStore(client redis.UniversalClient, prefix string) *SettingsStore {
	return &SettingsStore{client: client, key: prefix + "bot-settings"}
}

func (s *SettingsStore) Load(ctx context.Context) (model.BotSettings, bool, error) {
	data, err := s.client.Get(ctx, s.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return model.BotSettings{}, false, nil
		}
		return model.BotSettings{}, false, fmt.Errorf("redis get: %w", err)
	}

	var settings model.BotSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		return model.BotSettings{}, false, fmt.Errorf("unmarshal settings: %w", err)
	}
	return settings, true, nil
}

func (s *SettingsStore) Save(ctx context.Context, settings model.BotSettings) error {
	data, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}
	if err := s.client.Set(ctx, s.key, data, 0).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}
