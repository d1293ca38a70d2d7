package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/emomoto/auto-recruiter/internal/domain/model"
	apperrors "github.com/emomoto/auto-recruiter/internal/errors"
	"github.com/emomoto/auto-recruiter/internal/observability/metrics"
	"github.com/emomoto/auto-recruiter/internal/ports"
)

// SettingsServiceOptions groups dependencies for SettingsService.
type SettingsServiceOptions struct {
	Store       ports.SettingsStore
	Broadcaster ports.ActivityBroadcaster // optional
	Clock       func() time.Time
	Logger      *slog.Logger
}

// SettingsService reads and updates the recruitment bot settings.
type SettingsService struct {
	store       ports.SettingsStore
	broadcaster ports.ActivityBroadcaster
	now         func() time.Time
	logger      *slog.Logger
}

// NewSettingsService constructs a SettingsService.
func NewSettingsService(opts SettingsServiceOptions) *SettingsService {
	now := opts.Clock
	if now == nil {
		now = time.Now
	}
	return &SettingsService{
		store:       opts.Store,
		broadcaster: opts.Broadcaster,
		now:         now,
		logger:      opts.Logger,
	}
}

func (s *SettingsService) log() *slog.Logger {
	if s.logger != nil {
		return s.logger
	}
	return slog.Default()
}

// SettingsValidationError carries per-field messages for a rejected update.
// It unwraps to a validation AppError.
type SettingsValidationError struct {
	Fields map[string]string
	err    *apperrors.AppError
}

func (e *SettingsValidationError) Error() string { return e.err.Error() }
func (e *SettingsValidationError) Unwrap() error { return e.err }

// Get returns the stored settings, or the defaults when none were saved.
func (s *SettingsService) Get(ctx context.Context) (model.BotSettings, error) {
	settings, found, err := s.store.Load(ctx)
	if err != nil {
		metrics.RecordFault("settings_store", err)
		return model.BotSettings{}, apperrors.Wrap(err, apperrors.ErrCodeInternal, "load settings")
	}
	if !found {
		return model.DefaultBotSettings(), nil
	}
	return settings, nil
}

// Update normalizes and validates in, stamps it with actor and persists it.
// Connected dashboards are told through the broadcaster.
func (s *SettingsService) Update(ctx context.Context, in model.BotSettings, actor string) (model.BotSettings, error) {
	settings := in.Clone()
	settings.Normalize()

	if err := settings.Validate(); err != nil {
		return model.BotSettings{}, &SettingsValidationError{
			Fields: settings.FieldErrors(),
			err:    apperrors.Wrap(err, apperrors.ErrCodeValidation, "invalid settings"),
		}
	}

	settings.UpdatedAt = s.now().UTC()
	settings.UpdatedBy = actor

	if err := s.store.Save(ctx, settings); err != nil {
		metrics.RecordFault("settings_store", err)
		return model.BotSettings{}, apperrors.Wrap(err, apperrors.ErrCodeInternal, "save settings")
	}

	if s.broadcaster != nil {
		n := s.broadcaster.BroadcastActivity(activityMessage(settings))
		s.log().InfoContext(ctx, "bot settings updated", "updated_by", actor, "notified", n)
	}
	return settings, nil
}

func activityMessage(settings model.BotSettings) string {
	state := "paused"
	if settings.AutoScreeningEnabled {
		state = "enabled"
	}
	return fmt.Sprintf("Recruitment bot settings updated by %s: auto-screening %s, up to %d candidates.",
		settings.UpdatedBy, state, settings.MaximumCandidates)
}
