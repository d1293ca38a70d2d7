package httpx

import (
	"io/fs"
	"log/slog"
	"net/http"
	"os"

	recruiter "github.com/emomoto/auto-recruiter"
	"github.com/emomoto/auto-recruiter/internal/realtime"
)

// RouterServices holds all the services needed by the HTTP router.
type RouterServices struct {
	Auth     AuthServiceInterface
	Settings SettingsServiceInterface
	Hub      *realtime.Hub

	CookieDomain string

	// Realtime channel
	RealtimePath        string // default "/ws"
	RealtimeRequireAuth bool
	AllowedOrigins      []string

	// Optional: Prometheus handler mounted at MetricsPath.
	Metrics     http.Handler
	MetricsPath string

	// Optional asset overrides; default to the embedded frontend.
	StaticFS fs.FS
	PagesFS  fs.FS

	IsDev  bool         // serve frontend from disk for hot reloading
	Logger *slog.Logger // Logger for HTTP errors and access logs (optional)
}

func (s RouterServices) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}

// NewRouter creates the gateway router wrapped in Recover and Logging.
func NewRouter(services RouterServices) http.Handler {
	logger := services.logger()
	mux := http.NewServeMux()
	staticFS, pagesFS := frontendFS(services)

	requireSession := RequireSession(services.Auth, logger)

	authHandlers := &AuthHandlers{
		Svc:          services.Auth,
		CookieDomain: services.CookieDomain,
		Pages:        pagesFS,
		Logger:       logger,
	}
	registerAuthRoutes(mux, authHandlers)

	dashboard := &DashboardHandlers{Pages: pagesFS}
	mux.Handle("GET "+PathDashboard, requireSession(http.HandlerFunc(dashboard.Dashboard)))
	mux.HandleFunc("GET /{$}", dashboard.Index)

	if services.Settings != nil {
		settings := &SettingsHandlers{Svc: services.Settings, Logger: logger}
		mux.Handle("GET "+PathSettings, requireSession(http.HandlerFunc(settings.Get)))
		mux.Handle("PUT "+PathSettings, requireSession(http.HandlerFunc(settings.Put)))
	}

	var connections func() int
	if services.Hub != nil {
		path := services.RealtimePath
		if path == "" {
			path = "/ws"
		}
		mux.Handle("GET "+path, &RealtimeHandler{
			Hub:         services.Hub,
			Upgrader:    realtime.NewUpgrader(services.AllowedOrigins),
			Auth:        services.Auth,
			RequireAuth: services.RealtimeRequireAuth,
			Logger:      logger,
		})
		connections = services.Hub.Count
	}

	mux.Handle("GET /static/", staticHandler(staticFS, services.IsDev))
	mux.Handle("GET /healthz", healthHandler(connections))

	if services.Metrics != nil {
		path := services.MetricsPath
		if path == "" {
			path = "/metrics"
		}
		mux.Handle("GET "+path, services.Metrics)
	}

	return Chain(mux, Recover(logger), Logging(logger))
}

func registerAuthRoutes(mux *http.ServeMux, h *AuthHandlers) {
	mux.HandleFunc("GET "+PathLogin, h.LoginPage)
	mux.HandleFunc("POST "+PathLogin, h.Login)
	mux.HandleFunc("POST "+PathLogout, h.Logout)
	mux.HandleFunc("GET "+PathStatus, h.Status)
}

// frontendFS picks the asset filesystems.
// Dev mode serves from disk for hot reloading; otherwise the embedded copies are used.
func frontendFS(services RouterServices) (static, pages fs.FS) {
	static, pages = services.StaticFS, services.PagesFS
	if services.IsDev {
		if static == nil {
			static = os.DirFS("frontend/static")
		}
		if pages == nil {
			pages = os.DirFS("frontend/pages")
		}
	}
	if static == nil {
		static = mustSub(recruiter.StaticFS, "frontend/static")
	}
	if pages == nil {
		pages = mustSub(recruiter.PagesFS, "frontend/pages")
	}
	return static, pages
}

func mustSub(fsys fs.FS, dir string) fs.FS {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		panic("embedded frontend missing " + dir + ": " + err.Error()) //nolint:forbidigo // Fail fast during server setup.
	}
	return sub
}
