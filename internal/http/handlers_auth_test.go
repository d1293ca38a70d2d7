package httpx

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/emomoto/auto-recruiter/internal/domain/auth"
	apperrors "github.com/emomoto/auto-recruiter/internal/errors"
	"github.com/emomoto/auto-recruiter/internal/service"
)

func TestLogin_SuccessRedirectsToDashboard(t *testing.T) {
	s := newTestStack(t, stackOptions{})

	w := s.serve(loginForm("alice", "s3cret"))

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, PathDashboard, w.Header().Get("Location"))
	c := findCookie(w.Result().Cookies(), SessionCookieName)
	require.NotNil(t, c)
	assert.True(t, c.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, c.SameSite)
	assert.Positive(t, c.MaxAge)
	assert.Equal(t, 1, s.sessions.Len())
}

func TestLogin_FailureRedirectsWithoutSession(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
	}{
		{name: "wrong password", username: "alice", password: "nope"},
		{name: "unknown user", username: "mallory", password: "s3cret"},
		{name: "empty form"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestStack(t, stackOptions{})

			w := s.serve(loginForm(tt.username, tt.password))

			assert.Equal(t, http.StatusSeeOther, w.Code)
			assert.Equal(t, "/login?failed=1", w.Header().Get("Location"))
			assert.Nil(t, findCookie(w.Result().Cookies(), SessionCookieName))
			assert.Zero(t, s.sessions.Len())
		})
	}
}

func TestLogin_FailureKeepsSafeRedirect(t *testing.T) {
	s := newTestStack(t, stackOptions{})
	r := httptest.NewRequest(http.MethodPost, PathLogin,
		strings.NewReader("username=alice&password=nope&redirect_uri=%2Fdashboard%3Ftab%3D2"))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	w := s.serve(r)

	assert.Equal(t, "/login?failed=1&redirect_uri=%2Fdashboard%3Ftab%3D2", w.Header().Get("Location"))
}

func TestLogin_RedirectURIHonoredWhenSafe(t *testing.T) {
	tests := []struct {
		redirect string
		want     string
	}{
		{redirect: "/dashboard?tab=settings", want: "/dashboard?tab=settings"},
		{redirect: "https://evil.test/", want: PathDashboard},
		{redirect: "//evil.test", want: PathDashboard},
		{redirect: "/login", want: PathDashboard},
	}

	for _, tt := range tests {
		t.Run(tt.redirect, func(t *testing.T) {
			s := newTestStack(t, stackOptions{})
			body := "username=alice&password=s3cret&redirect_uri=" + strings.ReplaceAll(tt.redirect, "?", "%3F")
			r := httptest.NewRequest(http.MethodPost, PathLogin, strings.NewReader(body))
			r.Header.Set("Content-Type", "application/x-www-form-urlencoded")

			w := s.serve(r)

			assert.Equal(t, http.StatusSeeOther, w.Code)
			assert.Equal(t, tt.want, w.Header().Get("Location"))
		})
	}
}

func TestLogin_JSONStillRedirects(t *testing.T) {
	s := newTestStack(t, stackOptions{})

	t.Run("success", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, PathLogin, strings.NewReader(`{"username":"alice","password":"s3cret"}`))
		r.Header.Set("Content-Type", "application/json")
		r.Header.Set("Accept", "application/json")
		w := s.serve(r)

		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, PathDashboard, w.Header().Get("Location"))
		assert.NotNil(t, findCookie(w.Result().Cookies(), SessionCookieName))
	})

	t.Run("redirect target", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, PathLogin,
			strings.NewReader(`{"username":"alice","password":"s3cret","redirect_uri":"/dashboard?tab=2"}`))
		r.Header.Set("Content-Type", "application/json")
		w := s.serve(r)

		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/dashboard?tab=2", w.Header().Get("Location"))
	})

	t.Run("wrong password", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, PathLogin,
			strings.NewReader(`{"username":"alice","password":"bad","redirect_uri":"/dashboard?tab=2"}`))
		r.Header.Set("Content-Type", "application/json")
		r.Header.Set("Accept", "application/json")
		w := s.serve(r)

		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/login?failed=1&redirect_uri=%2Fdashboard%3Ftab%3D2", w.Header().Get("Location"))
		assert.Nil(t, findCookie(w.Result().Cookies(), SessionCookieName))
	})

	t.Run("malformed", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, PathLogin, strings.NewReader(`{"username":`))
		r.Header.Set("Content-Type", "application/json")
		w := s.serve(r)

		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/login?failed=1", w.Header().Get("Location"))
	})
}

func TestDashboard_JSONAcceptWithoutSessionRedirects(t *testing.T) {
	s := newTestStack(t, stackOptions{})

	r := httptest.NewRequest(http.MethodGet, PathDashboard, nil)
	r.Header.Set("Accept", "application/json")
	w := s.serve(r)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login?redirect_uri=%2Fdashboard", w.Header().Get("Location"))
}

func TestLogin_RotatesPriorSession(t *testing.T) {
	s := newTestStack(t, stackOptions{})
	first := s.login(t)

	r := loginForm("alice", "s3cret")
	r.AddCookie(first)
	w := s.serve(r)
	require.Equal(t, http.StatusSeeOther, w.Code)
	second := findCookie(w.Result().Cookies(), SessionCookieName)
	require.NotNil(t, second)
	assert.NotEqual(t, first.Value, second.Value)
	assert.Equal(t, 1, s.sessions.Len())

	_, err := s.auth.Resolve(context.Background(), first.Value)
	assert.True(t, apperrors.IsResolution(err))
}

func TestLogin_FaultIsInternalError(t *testing.T) {
	auth := &fakeAuth{
		loginFunc: func(context.Context, service.LoginInput) (*service.LoginResult, error) {
			return nil, apperrors.Internal("session store unavailable")
		},
	}
	router := NewRouter(RouterServices{Auth: auth, PagesFS: testPages, StaticFS: testStatic})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, loginForm("alice", "s3cret"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), internalErrorMessage)
	assert.Nil(t, findCookie(w.Result().Cookies(), SessionCookieName))
}

func TestLoginPage(t *testing.T) {
	s := newTestStack(t, stackOptions{})

	t.Run("anonymous sees the form", func(t *testing.T) {
		w := s.serve(httptest.NewRequest(http.MethodGet, PathLogin, nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Sign in")
		assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))
	})

	t.Run("authenticated skips to dashboard", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, PathLogin, nil)
		r.AddCookie(s.login(t))
		w := s.serve(r)
		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, PathDashboard, w.Header().Get("Location"))
	})
}

func TestLogout(t *testing.T) {
	s := newTestStack(t, stackOptions{})
	cookie := s.login(t)

	r := httptest.NewRequest(http.MethodPost, PathLogout, nil)
	r.AddCookie(cookie)
	w := s.serve(r)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, PathLogin, w.Header().Get("Location"))
	cleared := findCookie(w.Result().Cookies(), SessionCookieName)
	require.NotNil(t, cleared)
	assert.Negative(t, cleared.MaxAge)
	assert.Zero(t, s.sessions.Len())

	r = httptest.NewRequest(http.MethodGet, PathDashboard, nil)
	r.AddCookie(cookie)
	w = s.serve(r)
	assert.Equal(t, http.StatusSeeOther, w.Code)
}

func TestLogout_JSONAcceptStillRedirects(t *testing.T) {
	s := newTestStack(t, stackOptions{})

	r := httptest.NewRequest(http.MethodPost, PathLogout, nil)
	r.Header.Set("Accept", "application/json")
	w := s.serve(r)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, PathLogin, w.Header().Get("Location"))
}

func TestStatus(t *testing.T) {
	s := newTestStack(t, stackOptions{})

	t.Run("no cookie", func(t *testing.T) {
		w := s.serve(httptest.NewRequest(http.MethodGet, PathStatus, nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"authenticated":false}`, w.Body.String())
	})

	t.Run("valid session", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, PathStatus, nil)
		r.AddCookie(s.login(t))
		w := s.serve(r)
		assert.JSONEq(t, `{"authenticated":true,"user":{"username":"alice"}}`, w.Body.String())
	})

	t.Run("tampered cookie is cleared", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, PathStatus, nil)
		r.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "garbage"})
		w := s.serve(r)
		assert.JSONEq(t, `{"authenticated":false}`, w.Body.String())
		cleared := findCookie(w.Result().Cookies(), SessionCookieName)
		require.NotNil(t, cleared)
		assert.Negative(t, cleared.MaxAge)
	})

	t.Run("orphaned session", func(t *testing.T) {
		cookie := s.login(t)
		require.True(t, s.directory.Remove("alice"))

		r := httptest.NewRequest(http.MethodGet, PathStatus, nil)
		r.AddCookie(cookie)
		w := s.serve(r)
		assert.JSONEq(t, `{"authenticated":false}`, w.Body.String())
	})
}

func TestStatus_FaultIsInternalError(t *testing.T) {
	auth := &fakeAuth{
		resolveFunc: func(context.Context, string) (domainauth.Identity, error) {
			return domainauth.Identity{}, apperrors.Internal("redis down")
		},
	}
	router := NewRouter(RouterServices{Auth: auth, PagesFS: testPages, StaticFS: testStatic})

	r := httptest.NewRequest(http.MethodGet, PathStatus, nil)
	r.Header.Set("Accept", "application/json")
	r.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "x"})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"internal_error","message":"An internal server error occurred"}`, w.Body.String())
}
