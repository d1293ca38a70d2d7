package auth

// Package auth contains domain-level types for authentication and sessions.
// It is pure and free of framework/adapter concerns.

import (
	"errors"
	"time"
)

// FailureReason is the single outward-facing reason for a failed login.
// Unknown usernames and wrong passwords both report it.
const FailureReason = "incorrect username or password"

// ErrIdentityNotFound is returned when a username is not registered.
var ErrIdentityNotFound = errors.New("identity not found")

// ErrSessionNotFound is returned by session stores for unknown or expired IDs.
var ErrSessionNotFound = errors.New("session not found")

// Identity is a registered principal. PasswordHash is an argon2id PHC string;
// plaintext passwords are never stored.
type Identity struct {
	Username     string
	PasswordHash string
}

// SessionToken is the serialized form of an Identity held in a session.
// It carries the username only.
type SessionToken string

// Session is the server-side record we persist for an authenticated user.
// ID is an opaque session identifier (random UUID).
type Session struct {
	ID        string       `json:"id"`
	Token     SessionToken `json:"token"`
	CreatedAt time.Time    `json:"created_at"`
	ExpiresAt time.Time    `json:"expires_at"`
}

// Expired reports whether the session is past its expiry at now.
func (s Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// AuthResult is the outcome of verifying a credential pair.
// OK=false always carries FailureReason.
type AuthResult struct {
	Identity Identity
	OK       bool
	Reason   string
}

// Success builds a successful result for identity.
func Success(identity Identity) AuthResult {
	return AuthResult{Identity: identity, OK: true}
}

// Failure builds the uniform failed result.
func Failure() AuthResult {
	return AuthResult{Reason: FailureReason}
}
