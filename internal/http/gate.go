package httpx

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/gorilla/websocket"

	domainauth "github.com/emomoto/auto-recruiter/internal/domain/auth"
	apperrors "github.com/emomoto/auto-recruiter/internal/errors"
	"github.com/emomoto/auto-recruiter/internal/service"
)

const internalErrorMessage = "An internal server error occurred"

// writeGateFailure turns a service error into the response for r.
// Credential and resolution errors never produce a 5xx; anything unclassified does.
func writeGateFailure(w http.ResponseWriter, r *http.Request, err error, logger *slog.Logger) {
	switch {
	case apperrors.IsCredential(err):
		if IsBrowserRequest(r) {
			redirectToLoginFailed(w, r, r.FormValue(queryRedirect))
			return
		}
		WriteError(w, ErrorParams{
			Code:    http.StatusUnauthorized,
			ErrCode: "invalid_credentials",
			Err:     errors.New(domainauth.FailureReason),
		})
	case apperrors.IsResolution(err):
		if IsBrowserRequest(r) {
			redirectToLogin(w, r)
			return
		}
		WriteError(w, ErrorParams{
			Code:    http.StatusUnauthorized,
			ErrCode: "authentication_required",
			Err:     errors.New("authentication required"),
		})
	case apperrors.IsValidation(err):
		p := ErrorParams{Code: http.StatusBadRequest, ErrCode: "validation_failed", Err: err}
		var verr *service.SettingsValidationError
		if errors.As(err, &verr) {
			p.Fields = verr.Fields
		}
		WriteError(w, p)
	case apperrors.IsNotFound(err):
		WriteError(w, ErrorParams{Code: http.StatusNotFound, ErrCode: "not_found", Err: errors.New("not found")})
	default:
		logger.ErrorContext(r.Context(), "request failed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Any("error", err),
		)
		if IsBrowserRequest(r) {
			http.Error(w, internalErrorMessage, http.StatusInternalServerError)
			return
		}
		WriteError(w, ErrorParams{
			Code:    http.StatusInternalServerError,
			ErrCode: "internal_error",
			Err:     errors.New(internalErrorMessage),
		})
	}
}

// IsBrowserRequest reports whether failures on r are answered with redirects
// rather than JSON. Only the path decides: JSON endpoints live under /api/ and
// /auth/, and static assets and websocket upgrades never redirect. Content-Type
// and Accept are ignored so a page route behaves the same for every client.
func IsBrowserRequest(r *http.Request) bool {
	for _, prefix := range noRedirectPrefixes {
		if strings.HasPrefix(r.URL.Path, prefix) {
			return false
		}
	}
	return !websocket.IsWebSocketUpgrade(r)
}

var noRedirectPrefixes = []string{"/api/", "/auth/", "/static/"}

// redirectToLogin sends the browser to the login page, remembering where it was going.
func redirectToLogin(w http.ResponseWriter, r *http.Request) {
	q := url.Values{}
	q.Set(queryRedirect, safeRedirectPath(r.URL.RequestURI()))
	http.Redirect(w, r, PathLogin+"?"+q.Encode(), http.StatusSeeOther)
}

// redirectToLoginFailed sends the browser back to the login page after a rejected
// login, keeping target when it is a safe local path.
func redirectToLoginFailed(w http.ResponseWriter, r *http.Request, target string) {
	q := url.Values{}
	q.Set(queryFailed, "1")
	if target != "" {
		if safe := safeRedirectPath(target); safe != "/" {
			q.Set(queryRedirect, safe)
		}
	}
	http.Redirect(w, r, PathLogin+"?"+q.Encode(), http.StatusSeeOther)
}

// safeRedirectPath ensures the provided redirect is a same-origin relative path
// starting with "/" and not an absolute URL. Returns "/" when invalid.
func safeRedirectPath(candidate string) string {
	if candidate == "" || strings.HasPrefix(candidate, "//") || strings.Contains(candidate, `\`) {
		return "/"
	}
	u, err := url.Parse(candidate)
	if err != nil || u.IsAbs() || u.Host != "" || !strings.HasPrefix(u.Path, "/") {
		return "/"
	}
	return candidate
}

// postLoginTarget picks where a successful login lands.
func postLoginTarget(candidate string) string {
	target := safeRedirectPath(candidate)
	if target == "/" || strings.HasPrefix(target, PathLogin) {
		return PathDashboard
	}
	return target
}
