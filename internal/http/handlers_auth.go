package httpx

import (
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"strings"

	apperrors "github.com/emomoto/auto-recruiter/internal/errors"
	"github.com/emomoto/auto-recruiter/internal/service"
)

// AuthServiceInterface defines the interface for auth service operations.
type AuthServiceInterface interface {
	SessionResolver
	Login(ctx context.Context, in service.LoginInput) (*service.LoginResult, error)
	Logout(ctx context.Context, cookie string) error
}

// AuthHandlers provides HTTP handlers for authentication operations.
type AuthHandlers struct {
	Svc          AuthServiceInterface
	CookieDomain string
	Pages        fs.FS
	Logger       *slog.Logger
}

func (h *AuthHandlers) logger() *slog.Logger {
	if h != nil && h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

type loginRequest struct {
	Username    string `json:"username"`
	Password    string `json:"password"`
	RedirectURI string `json:"redirect_uri,omitempty"`
}

// LoginPage serves the login form, or skips it for an already Authenticated client.
// GET /login?redirect_uri=<optional_redirect>&failed=<optional>.
func (h *AuthHandlers) LoginPage(w http.ResponseWriter, r *http.Request) {
	if cookie := sessionCookie(r); cookie != "" {
		if _, err := h.Svc.Resolve(r.Context(), cookie); err == nil {
			http.Redirect(w, r, postLoginTarget(r.URL.Query().Get(queryRedirect)), http.StatusSeeOther)
			return
		}
	}
	servePage(w, r, h.Pages, pageLogin)
}

// Login verifies credentials and establishes a session.
// POST /login with a form (username, password, redirect_uri) or the same fields as JSON.
// Every outcome is a 303: the target page on success, the login page otherwise.
func (h *AuthHandlers) Login(w http.ResponseWriter, r *http.Request) {
	req, err := readLoginRequest(w, r)
	if err != nil {
		h.logger().InfoContext(r.Context(), "malformed login request",
			slog.String("remote_addr", r.RemoteAddr), slog.Any("error", err))
		redirectToLoginFailed(w, r, "")
		return
	}

	result, err := h.Svc.Login(r.Context(), service.LoginInput{
		Username:    req.Username,
		Password:    req.Password,
		PriorCookie: sessionCookie(r),
	})
	if err != nil {
		if apperrors.IsCredential(err) {
			h.logger().InfoContext(r.Context(), "login rejected", slog.String("remote_addr", r.RemoteAddr))
			redirectToLoginFailed(w, r, req.RedirectURI)
			return
		}
		writeGateFailure(w, r, err, h.logger())
		return
	}

	setSessionCookie(w, r, h.CookieDomain, result.CookieValue, result.Session.ExpiresAt)
	h.logger().InfoContext(r.Context(), "login succeeded", slog.String("user", result.Identity.Username))
	http.Redirect(w, r, postLoginTarget(req.RedirectURI), http.StatusSeeOther)
}

func readLoginRequest(w http.ResponseWriter, r *http.Request) (loginRequest, error) {
	var req loginRequest
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	if strings.HasPrefix(strings.ToLower(r.Header.Get("Content-Type")), "application/json") {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return req, fmt.Errorf("decode login json: %w", err)
		}
		return req, nil
	}

	if err := r.ParseForm(); err != nil {
		return req, fmt.Errorf("parse login form: %w", err)
	}
	req.Username = r.PostFormValue("username")
	req.Password = r.PostFormValue("password")
	req.RedirectURI = r.PostFormValue(queryRedirect)
	return req, nil
}

// Logout revokes the current session and clears the cookie.
// POST /logout.
func (h *AuthHandlers) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie := sessionCookie(r); cookie != "" {
		if err := h.Svc.Logout(r.Context(), cookie); err != nil {
			h.logger().WarnContext(r.Context(), "logout failed", "error", err)
		}
	}
	clearSessionCookie(w, r, h.CookieDomain)
	http.Redirect(w, r, PathLogin, http.StatusSeeOther)
}

type statusUser struct {
	Username string `json:"username"`
}

type statusResponse struct {
	Authenticated bool        `json:"authenticated"`
	User          *statusUser `json:"user,omitempty"`
}

// Status returns the current authentication status.
// GET /auth/status.
func (h *AuthHandlers) Status(w http.ResponseWriter, r *http.Request) {
	cookie := sessionCookie(r)
	if cookie == "" {
		WriteJSON(w, http.StatusOK, statusResponse{})
		return
	}

	identity, err := h.Svc.Resolve(r.Context(), cookie)
	switch {
	case err == nil:
		WriteJSON(w, http.StatusOK, statusResponse{
			Authenticated: true,
			User:          &statusUser{Username: identity.Username},
		})
	case apperrors.IsResolution(err):
		// Session is invalid or expired, clear the cookie
		clearSessionCookie(w, r, h.CookieDomain)
		WriteJSON(w, http.StatusOK, statusResponse{})
	default:
		writeGateFailure(w, r, err, h.logger())
	}
}

// currentUser returns the username RequireSession put in the context.
func currentUser(r *http.Request) string {
	identity, ok := GetIdentityFromContext(r.Context())
	if !ok {
		return ""
	}
	return identity.Username
}
