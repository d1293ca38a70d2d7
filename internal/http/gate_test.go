package httpx

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "github.com/emomoto/auto-recruiter/internal/errors"
)

func TestWriteGateFailure(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		path         string
		accept       string
		wantStatus   int
		wantLocation string
		wantBody     string
	}{
		{
			name:         "resolution browser",
			err:          apperrors.Resolution("no session"),
			path:         "/dashboard",
			accept:       "text/html",
			wantStatus:   http.StatusSeeOther,
			wantLocation: "/login?redirect_uri=%2Fdashboard",
		},
		{
			name:       "resolution api",
			err:        apperrors.Resolution("no session"),
			path:       "/api/recruitment-bot/settings",
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"error":"authentication_required","message":"authentication required"}`,
		},
		{
			name:         "credential browser",
			err:          apperrors.Credential("incorrect username or password"),
			path:         "/login",
			wantStatus:   http.StatusSeeOther,
			wantLocation: "/login?failed=1",
		},
		{
			name:         "credential page ignores accept",
			err:          apperrors.Credential("incorrect username or password"),
			path:         "/login",
			accept:       "application/json",
			wantStatus:   http.StatusSeeOther,
			wantLocation: "/login?failed=1",
		},
		{
			name:         "resolution page ignores accept",
			err:          apperrors.Resolution("no session"),
			path:         "/dashboard",
			accept:       "application/json",
			wantStatus:   http.StatusSeeOther,
			wantLocation: "/login?redirect_uri=%2Fdashboard",
		},
		{
			name:       "credential api",
			err:        apperrors.Credential("incorrect username or password"),
			path:       "/api/x",
			accept:     "application/json",
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"error":"invalid_credentials","message":"incorrect username or password"}`,
		},
		{
			name:       "validation",
			err:        apperrors.Validation("bad input"),
			path:       "/api/recruitment-bot/settings",
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"validation_failed","message":"bad input"}`,
		},
		{
			name:       "not found",
			err:        apperrors.NotFound("gone"),
			path:       "/api/x",
			wantStatus: http.StatusNotFound,
			wantBody:   `{"error":"not_found","message":"not found"}`,
		},
		{
			name:       "internal browser",
			err:        apperrors.Internal("redis down"),
			path:       "/dashboard",
			accept:     "text/html",
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:       "unclassified api",
			err:        errors.New("boom"),
			path:       "/api/x",
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"internal_error","message":"An internal server error occurred"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logs bytes.Buffer
			logger := slog.New(slog.NewTextHandler(&logs, nil))
			r := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.accept != "" {
				r.Header.Set("Accept", tt.accept)
			}
			w := httptest.NewRecorder()

			writeGateFailure(w, r, tt.err, logger)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantLocation != "" {
				assert.Equal(t, tt.wantLocation, w.Header().Get("Location"))
			}
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, w.Body.String())
			}
			if tt.wantStatus == http.StatusInternalServerError {
				assert.Contains(t, logs.String(), "request failed")
				assert.NotContains(t, w.Body.String(), "redis down")
			} else {
				assert.Empty(t, logs.String())
			}
		})
	}
}

func TestIsBrowserRequest(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		headers map[string]string
		want    bool
	}{
		{name: "no accept header", path: "/dashboard", want: true},
		{name: "html", path: "/dashboard", headers: map[string]string{"Accept": "text/html,application/xhtml+xml"}, want: true},
		{name: "json accept", path: "/dashboard", headers: map[string]string{"Accept": "application/json"}, want: true},
		{name: "json body", path: "/login", headers: map[string]string{"Content-Type": "application/json"}, want: true},
		{name: "api path", path: "/api/recruitment-bot/settings", want: false},
		{name: "auth status", path: "/auth/status", want: false},
		{name: "static path", path: "/static/js/app.js", want: false},
		{name: "websocket", path: "/ws", headers: map[string]string{"Connection": "Upgrade", "Upgrade": "websocket"}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, tt.path, nil)
			for k, v := range tt.headers {
				r.Header.Set(k, v)
			}
			assert.Equal(t, tt.want, IsBrowserRequest(r))
		})
	}
}

func TestSafeRedirectPath(t *testing.T) {
	tests := map[string]string{
		"":                        "/",
		"/dashboard":              "/dashboard",
		"/dashboard?tab=settings": "/dashboard?tab=settings",
		"https://evil.test/x":     "/",
		"//evil.test":             "/",
		`/\evil.test`:             "/",
		"dashboard":               "/",
		"javascript:alert(1)":     "/",
	}
	for in, want := range tests {
		assert.Equal(t, want, safeRedirectPath(in), "input %q", in)
	}
}

func TestPostLoginTarget(t *testing.T) {
	assert.Equal(t, PathDashboard, postLoginTarget(""))
	assert.Equal(t, PathDashboard, postLoginTarget("/"))
	assert.Equal(t, PathDashboard, postLoginTarget("/login?failed=1"))
	assert.Equal(t, "/dashboard?tab=2", postLoginTarget("/dashboard?tab=2"))
}
