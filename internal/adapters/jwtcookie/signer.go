// Package jwtcookie signs session cookies as HS256 JWTs carrying only the session ID.
package jwtcookie

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	domainauth "github.com/emomoto/auto-recruiter/internal/domain/auth"
)

// Issuer is stamped into and required on every cookie token.
const Issuer = "auto-recruiter"

// ErrInvalidCookie is returned for tampered, expired or malformed cookie values.
var ErrInvalidCookie = errors.New("invalid session cookie")

// Signer implements ports.SessionSigner.
type Signer struct {
	key []byte
	now func() time.Time
}

// Option configures a Signer.
type Option func(*Signer)

// WithClock overrides the time source used for iat/exp handling.
func WithClock(now func() time.Time) Option {
	return func(s *Signer) {
		if now != nil {
			s.now = now
		}
	}
}

// NewSigner creates a signer keyed with secret. An empty secret is rejected.
func NewSigner(secret string, opts ...Option) (*Signer, error) {
	if secret == "" {
		return nil, errors.New("session signing secret is empty")
	}
	s := &Signer{key: []byte(secret), now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Sign returns the cookie value for sess. The JWT expiry mirrors the session's.
func (s *Signer) Sign(sess domainauth.Session) (string, error) {
	if sess.ID == "" {
		return "", errors.New("session ID cannot be empty")
	}
	claims := jwt.RegisteredClaims{
		ID:        sess.ID,
		Issuer:    Issuer,
		IssuedAt:  jwt.NewNumericDate(s.now()),
		ExpiresAt: jwt.NewNumericDate(sess.ExpiresAt),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.key)
	if err != nil {
		return "", fmt.Errorf("sign session cookie: %w", err)
	}
	return signed, nil
}

// Verify checks signature, algorithm, issuer and expiry and returns the session ID.
func (s *Signer) Verify(value string) (string, error) {
	if value == "" {
		return "", ErrInvalidCookie
	}
	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(value, &claims,
		func(*jwt.Token) (any, error) { return s.key, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(Issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidCookie, err)
	}
	if claims.ID == "" {
		return "", fmt.Errorf("%w: missing session id", ErrInvalidCookie)
	}
	return claims.ID, nil
}
