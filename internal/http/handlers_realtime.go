package httpx

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/emomoto/auto-recruiter/internal/realtime"
)

// RealtimeServer runs one upgraded connection to completion.
type RealtimeServer interface {
	Serve(ctx context.Context, ws *websocket.Conn, info realtime.ConnInfo) (realtime.DisconnectReason, error)
}

// RealtimeHandler upgrades requests on the notification channel path.
type RealtimeHandler struct {
	Hub      RealtimeServer
	Upgrader *websocket.Upgrader
	// Auth is consulted only when RequireAuth is set.
	Auth        SessionResolver
	RequireAuth bool
	Logger      *slog.Logger
}

func (h *RealtimeHandler) logger() *slog.Logger {
	if h != nil && h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

// ServeHTTP upgrades the request and blocks until the connection is Disconnected.
// GET /ws.
func (h *RealtimeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	info := realtime.ConnInfo{RemoteAddr: r.RemoteAddr}
	if h.RequireAuth {
		identity, err := h.Auth.Resolve(r.Context(), sessionCookie(r))
		if err != nil {
			writeGateFailure(w, r, err, h.logger())
			return
		}
		info.Username = identity.Username
	}

	ws, err := h.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already answered with an HTTP error.
		h.logger().DebugContext(r.Context(), "websocket upgrade failed", "error", err)
		return
	}

	if _, err := h.Hub.Serve(r.Context(), ws, info); err != nil {
		h.logger().DebugContext(r.Context(), "realtime connection refused", "error", err)
	}
}
