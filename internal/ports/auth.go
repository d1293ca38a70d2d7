package ports

// Package ports defines interfaces (hexagonal ports) for auth-related behavior.
// Implementations live in internal/adapters; orchestration in internal/service.

import (
	"context"

	domainauth "github.com/emomoto/auto-recruiter/internal/domain/auth"
)

// CredentialDirectory looks registered identities up by username.
type CredentialDirectory interface {
	// Find returns domainauth.ErrIdentityNotFound when username is not registered.
	// Any other error is a server fault.
	Find(ctx context.Context, username string) (domainauth.Identity, error)
}

// PasswordHasher produces and verifies salted one-way password hashes.
type PasswordHasher interface {
	Hash(password string) (string, error)
	// Verify returns (false, nil) on mismatch and an error only for malformed hashes.
	Verify(password, encodedHash string) (bool, error)
}

// SessionStore persists and retrieves user sessions.
// Writes are atomic per session ID; concurrent logins never contend on a shared lock.
type SessionStore interface {
	Save(ctx context.Context, sess domainauth.Session) error
	// Get returns domainauth.ErrSessionNotFound for unknown or expired IDs.
	Get(ctx context.Context, id string) (domainauth.Session, error)
	Delete(ctx context.Context, id string) error
}

// SessionSigner turns a session ID into a tamper-evident cookie value and back.
type SessionSigner interface {
	Sign(sess domainauth.Session) (string, error)
	Verify(value string) (sessionID string, err error)
}
