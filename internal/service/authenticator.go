package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"

	domainauth "github.com/emomoto/auto-recruiter/internal/domain/auth"
	"github.com/emomoto/auto-recruiter/internal/ports"
)

// AuthenticatorOptions groups dependencies for Authenticator.
type AuthenticatorOptions struct {
	Directory ports.CredentialDirectory
	Hasher    ports.PasswordHasher
}

// Authenticator verifies a username/password pair against the credential directory.
type Authenticator struct {
	directory ports.CredentialDirectory
	hasher    ports.PasswordHasher
	// dummyHash is verified for unknown usernames so both failure paths cost one hash.
	dummyHash string
}

// NewAuthenticator constructs an Authenticator. It hashes a random throwaway
// password up front, which fails only if the hasher does.
func NewAuthenticator(opts AuthenticatorOptions) (*Authenticator, error) {
	if opts.Directory == nil || opts.Hasher == nil {
		return nil, errors.New("authenticator requires a directory and a hasher")
	}

	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return nil, fmt.Errorf("generate dummy password: %w", err)
	}
	dummy, err := opts.Hasher.Hash(hex.EncodeToString(buf))
	if err != nil {
		return nil, fmt.Errorf("hash dummy password: %w", err)
	}

	return &Authenticator{
		directory: opts.Directory,
		hasher:    opts.Hasher,
		dummyHash: dummy,
	}, nil
}

// Authenticate returns Success(identity) when the password matches the stored hash
// and Failure() for a wrong password or an unknown username alike.
// A non-nil error means a server fault (directory unavailable, corrupt stored hash).
func (a *Authenticator) Authenticate(ctx context.Context, username, password string) (domainauth.AuthResult, error) {
	identity, err := a.directory.Find(ctx, username)
	switch {
	case errors.Is(err, domainauth.ErrIdentityNotFound):
		// Result ignored; only the cost matters.
		_, _ = a.hasher.Verify(password, a.dummyHash)
		return domainauth.Failure(), nil
	case err != nil:
		return domainauth.AuthResult{}, fmt.Errorf("find identity: %w", err)
	}

	ok, err := a.hasher.Verify(password, identity.PasswordHash)
	if err != nil {
		return domainauth.AuthResult{}, fmt.Errorf("verify password for %q: %w", identity.Username, err)
	}
	if !ok {
		return domainauth.Failure(), nil
	}
	return domainauth.Success(identity), nil
}
