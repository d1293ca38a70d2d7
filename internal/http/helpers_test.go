package httpx

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/emomoto/auto-recruiter/internal/adapters/argon2id"
	"github.com/emomoto/auto-recruiter/internal/adapters/jwtcookie"
	"github.com/emomoto/auto-recruiter/internal/adapters/memory"
	domainauth "github.com/emomoto/auto-recruiter/internal/domain/auth"
	"github.com/emomoto/auto-recruiter/internal/realtime"
	"github.com/emomoto/auto-recruiter/internal/service"
)

const testSecret = "0123456789abcdef0123456789abcdef"

var testPages = fstest.MapFS{
	"login.html":     {Data: []byte("<h1>Sign in</h1>")},
	"dashboard.html": {Data: []byte("<h1>Dashboard</h1>")},
}

var testStatic = fstest.MapFS{
	"js/dashboard.js": {Data: []byte("console.log('ok');")},
}

type testStack struct {
	router    http.Handler
	auth      *service.AuthService
	sessions  *memory.SessionStore
	directory *memory.Directory
	hub       *realtime.Hub
}

type stackOptions struct {
	realtimeRequireAuth bool
	metrics             http.Handler
}

// newTestStack wires the real services over in-memory adapters with alice/s3cret registered.
func newTestStack(t *testing.T, opts stackOptions) *testStack {
	t.Helper()
	hasher := argon2id.NewHasher(argon2id.Params{Time: 1, Memory: 8 * 1024, Threads: 1})
	hash, err := hasher.Hash("s3cret")
	require.NoError(t, err)

	dir, err := memory.NewDirectory([]domainauth.Identity{{Username: "alice", PasswordHash: hash}})
	require.NoError(t, err)
	authenticator, err := service.NewAuthenticator(service.AuthenticatorOptions{Directory: dir, Hasher: hasher})
	require.NoError(t, err)
	signer, err := jwtcookie.NewSigner(testSecret)
	require.NoError(t, err)

	sessions := memory.NewSessionStore()
	auth := service.NewAuthService(service.AuthServiceOptions{
		Authenticator: authenticator,
		Codec:         service.NewIdentityCodec(dir),
		Sessions:      sessions,
		Signer:        signer,
		TTL:           time.Hour,
	})

	hub := realtime.NewHub(realtime.HubOptions{
		PingInterval: time.Minute,
		Observer:     realtime.ObserverFuncs{},
	})
	settings := service.NewSettingsService(service.SettingsServiceOptions{
		Store:       memory.NewSettingsStore(),
		Broadcaster: hub,
	})

	router := NewRouter(RouterServices{
		Auth:                auth,
		Settings:            settings,
		Hub:                 hub,
		RealtimeRequireAuth: opts.realtimeRequireAuth,
		Metrics:             opts.metrics,
		StaticFS:            testStatic,
		PagesFS:             testPages,
	})
	return &testStack{router: router, auth: auth, sessions: sessions, directory: dir, hub: hub}
}

func (s *testStack) serve(r *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, r)
	return w
}

func loginForm(username, password string) *http.Request {
	form := url.Values{"username": {username}, "password": {password}}
	r := httptest.NewRequest(http.MethodPost, PathLogin, strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	r.Header.Set("Accept", "text/html")
	return r
}

// login returns the session cookie for alice.
func (s *testStack) login(t *testing.T) *http.Cookie {
	t.Helper()
	w := s.serve(loginForm("alice", "s3cret"))
	require.Equal(t, http.StatusSeeOther, w.Code)
	c := findCookie(w.Result().Cookies(), SessionCookieName)
	require.NotNil(t, c, "session cookie")
	return c
}

func findCookie(cookies []*http.Cookie, name string) *http.Cookie {
	for _, c := range cookies {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// fakeAuth is a hand-written AuthServiceInterface for fault paths.
type fakeAuth struct {
	resolveFunc func(ctx context.Context, cookie string) (domainauth.Identity, error)
	loginFunc   func(ctx context.Context, in service.LoginInput) (*service.LoginResult, error)
	logoutFunc  func(ctx context.Context, cookie string) error
}

func (f *fakeAuth) Resolve(ctx context.Context, cookie string) (domainauth.Identity, error) {
	return f.resolveFunc(ctx, cookie)
}

func (f *fakeAuth) Login(ctx context.Context, in service.LoginInput) (*service.LoginResult, error) {
	return f.loginFunc(ctx, in)
}

func (f *fakeAuth) Logout(ctx context.Context, cookie string) error {
	if f.logoutFunc == nil {
		return nil
	}
	return f.logoutFunc(ctx, cookie)
}
