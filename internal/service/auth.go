package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	domainauth "github.com/emomoto/auto-recruiter/internal/domain/auth"
	apperrors "github.com/emomoto/auto-recruiter/internal/errors"
	"github.com/emomoto/auto-recruiter/internal/observability/metrics"
	"github.com/emomoto/auto-recruiter/internal/ports"
)

// DefaultSessionTTL bounds a session when no TTL is configured.
const DefaultSessionTTL = 12 * time.Hour

// AuthServiceOptions groups dependencies for AuthService.
type AuthServiceOptions struct {
	Authenticator *Authenticator
	Codec         *IdentityCodec
	Sessions      ports.SessionStore
	Signer        ports.SessionSigner
	TTL           time.Duration
	Clock         func() time.Time
	Logger        *slog.Logger
}

// AuthService is the session gate: it turns credentials into sessions and
// cookie values back into identities. Callers map its AppError codes to responses.
type AuthService struct {
	authenticator *Authenticator
	codec         *IdentityCodec
	sessions      ports.SessionStore
	signer        ports.SessionSigner
	ttl           time.Duration
	now           func() time.Time
	logger        *slog.Logger
}

// NewAuthService constructs a new AuthService.
func NewAuthService(opts AuthServiceOptions) *AuthService {
	ttl := opts.TTL
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	now := opts.Clock
	if now == nil {
		now = time.Now
	}
	return &AuthService{
		authenticator: opts.Authenticator,
		codec:         opts.Codec,
		sessions:      opts.Sessions,
		signer:        opts.Signer,
		ttl:           ttl,
		now:           now,
		logger:        opts.Logger,
	}
}

func (s *AuthService) log() *slog.Logger {
	if s.logger != nil {
		return s.logger
	}
	return slog.Default()
}

// LoginInput groups parameters for Login.
type LoginInput struct {
	Username string
	Password string
	// PriorCookie is the session cookie the client presented, if any. It is revoked on success.
	PriorCookie string
}

// LoginResult contains the established session and the cookie value to hand the client.
type LoginResult struct {
	Session     domainauth.Session
	CookieValue string
	Identity    domainauth.Identity
}

// Login authenticates the credentials and persists a new session.
// Wrong credentials yield a credential AppError; everything else is internal.
func (s *AuthService) Login(ctx context.Context, in LoginInput) (*LoginResult, error) {
	result, err := s.authenticator.Authenticate(ctx, in.Username, in.Password)
	if err != nil {
		metrics.RecordLogin(metrics.ResultError)
		metrics.RecordFault("authenticator", err)
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "authenticate")
	}
	if !result.OK {
		metrics.RecordLogin(metrics.ResultFailure)
		return nil, apperrors.Credential(result.Reason)
	}

	s.revoke(ctx, in.PriorCookie)

	now := s.now()
	session := domainauth.Session{
		ID:        generateSessionID(),
		Token:     s.codec.Serialize(result.Identity),
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}

	if saveErr := s.sessions.Save(ctx, session); saveErr != nil {
		metrics.RecordLogin(metrics.ResultError)
		metrics.RecordFault("session_store", saveErr)
		return nil, apperrors.Wrap(saveErr, apperrors.ErrCodeInternal, "save session")
	}

	cookie, err := s.signer.Sign(session)
	if err != nil {
		metrics.RecordLogin(metrics.ResultError)
		metrics.RecordFault("session_signer", err)
		if delErr := s.sessions.Delete(ctx, session.ID); delErr != nil {
			s.log().WarnContext(ctx, "failed to delete unsigned session", "error", delErr)
		}
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "sign session")
	}

	metrics.RecordLogin(metrics.ResultSuccess)
	return &LoginResult{Session: session, CookieValue: cookie, Identity: result.Identity}, nil
}

// revoke drops the session behind cookie so a re-login never leaves the old one live.
func (s *AuthService) revoke(ctx context.Context, cookie string) {
	if cookie == "" {
		return
	}
	id, err := s.signer.Verify(cookie)
	if err != nil {
		return
	}
	if delErr := s.sessions.Delete(ctx, id); delErr != nil {
		s.log().WarnContext(ctx, "failed to revoke prior session", "error", delErr)
	}
}

// Resolve maps a cookie value to the live identity behind it.
// Missing, tampered, unknown, expired and orphaned sessions are resolution errors;
// store and directory failures are internal errors.
func (s *AuthService) Resolve(ctx context.Context, cookie string) (domainauth.Identity, error) {
	identity, err := s.resolve(ctx, cookie)
	switch {
	case err == nil:
		metrics.RecordResolution(metrics.ResultAuthenticated)
	case apperrors.IsResolution(err):
		metrics.RecordResolution(metrics.ResultUnauthenticated)
	default:
		metrics.RecordResolution(metrics.ResultError)
	}
	return identity, err
}

func (s *AuthService) resolve(ctx context.Context, cookie string) (domainauth.Identity, error) {
	if cookie == "" {
		return domainauth.Identity{}, apperrors.Resolution("no session")
	}

	sessionID, err := s.signer.Verify(cookie)
	if err != nil {
		return domainauth.Identity{}, apperrors.Wrap(err, apperrors.ErrCodeResolution, "invalid session cookie")
	}

	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, domainauth.ErrSessionNotFound) {
			return domainauth.Identity{}, apperrors.Wrap(err, apperrors.ErrCodeResolution, "session not found")
		}
		metrics.RecordFault("session_store", err)
		return domainauth.Identity{}, apperrors.Wrap(err, apperrors.ErrCodeInternal, "load session")
	}

	if session.Expired(s.now()) {
		if delErr := s.sessions.Delete(ctx, sessionID); delErr != nil {
			s.log().WarnContext(ctx, "failed to delete expired session", "error", delErr)
		}
		return domainauth.Identity{}, apperrors.Resolution("session expired")
	}

	identity, err := s.codec.Deserialize(ctx, session.Token)
	if err != nil {
		if errors.Is(err, domainauth.ErrIdentityNotFound) {
			if delErr := s.sessions.Delete(ctx, sessionID); delErr != nil {
				s.log().WarnContext(ctx, "failed to delete orphaned session", "error", delErr)
			}
			return domainauth.Identity{}, apperrors.Wrap(err, apperrors.ErrCodeResolution, "identity not found")
		}
		metrics.RecordFault("directory", err)
		return domainauth.Identity{}, apperrors.Wrap(err, apperrors.ErrCodeInternal, "resolve identity")
	}

	return identity, nil
}

// Logout removes the session behind cookie. Unknown or invalid cookies are a no-op.
func (s *AuthService) Logout(ctx context.Context, cookie string) error {
	if cookie == "" {
		return nil
	}
	sessionID, err := s.signer.Verify(cookie)
	if err != nil {
		return nil
	}
	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		metrics.RecordFault("session_store", err)
		return apperrors.Wrap(err, apperrors.ErrCodeInternal, "delete session")
	}
	return nil
}

// TTL reports the lifetime given to new sessions.
func (s *AuthService) TTL() time.Duration { return s.ttl }

// generateSessionID creates a cryptographically secure random session ID.
func generateSessionID() string {
	return uuid.NewString()
}

