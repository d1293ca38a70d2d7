package httpx

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/emomoto/auto-recruiter/internal/domain/model"
)

// SettingsServiceInterface defines the recruitment bot settings operations.
type SettingsServiceInterface interface {
	Get(ctx context.Context) (model.BotSettings, error)
	Update(ctx context.Context, in model.BotSettings, actor string) (model.BotSettings, error)
}

// SettingsHandlers backs the dashboard's bot configuration form.
type SettingsHandlers struct {
	Svc    SettingsServiceInterface
	Logger *slog.Logger
}

func (h *SettingsHandlers) logger() *slog.Logger {
	if h != nil && h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

// Get returns the current settings.
// GET /api/recruitment-bot/settings.
func (h *SettingsHandlers) Get(w http.ResponseWriter, r *http.Request) {
	settings, err := h.Svc.Get(r.Context())
	if err != nil {
		writeGateFailure(w, r, err, h.logger())
		return
	}
	WriteJSON(w, http.StatusOK, settings)
}

// Put replaces the settings with the request body.
// PUT /api/recruitment-bot/settings.
func (h *SettingsHandlers) Put(w http.ResponseWriter, r *http.Request) {
	var in model.BotSettings
	if !DecodeJSON(w, r, &in) {
		return
	}

	saved, err := h.Svc.Update(r.Context(), in, currentUser(r))
	if err != nil {
		writeGateFailure(w, r, err, h.logger())
		return
	}
	WriteJSON(w, http.StatusOK, saved)
}
