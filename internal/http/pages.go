package httpx

import (
	"errors"
	"io/fs"
	"net/http"
)

// servePage writes an embedded HTML page. Pages are per-user views and never cached.
func servePage(w http.ResponseWriter, r *http.Request, pages fs.FS, name string) {
	if pages == nil {
		http.Error(w, internalErrorMessage, http.StatusInternalServerError)
		return
	}
	if _, err := fs.Stat(pages, name); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			http.NotFound(w, r)
			return
		}
		http.Error(w, internalErrorMessage, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Cache-Control", "no-store")
	http.ServeFileFS(w, r, pages, name)
}

// DashboardHandlers serves the protected dashboard.
type DashboardHandlers struct {
	Pages fs.FS
}

// Dashboard serves the dashboard page. Only reachable through RequireSession.
// GET /dashboard.
func (h *DashboardHandlers) Dashboard(w http.ResponseWriter, r *http.Request) {
	servePage(w, r, h.Pages, pageDashboard)
}

// Index sends the site root to the dashboard.
// GET /.
func (h *DashboardHandlers) Index(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, PathDashboard, http.StatusSeeOther)
}

// staticHandler serves /static/* from fsys.
func staticHandler(fsys fs.FS, isDev bool) http.Handler {
	files := http.StripPrefix("/static/", http.FileServerFS(fsys))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isDev {
			w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
		} else {
			w.Header().Set("Cache-Control", "public, max-age=300")
		}
		files.ServeHTTP(w, r)
	})
}
