package httpx

import (
	"net/http"
)

type healthResponse struct {
	Status              string `json:"status"`
	RealtimeConnections int    `json:"realtime_connections"`
}

// healthHandler returns 200 OK for readiness/liveness checks.
// connections may be nil.
func healthHandler(connections func() int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodHead {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			return
		}
		resp := healthResponse{Status: "ok"}
		if connections != nil {
			resp.RealtimeConnections = connections()
		}
		WriteJSON(w, http.StatusOK, resp)
	}
}
