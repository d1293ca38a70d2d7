package service

import (
	"context"
	"errors"
	"fmt"

	domainauth "github.com/emomoto/auto-recruiter/internal/domain/auth"
	"github.com/emomoto/auto-recruiter/internal/ports"
)

// IdentityCodec converts identities to session tokens and back.
type IdentityCodec struct {
	directory ports.CredentialDirectory
}

// NewIdentityCodec creates a codec resolving tokens against directory.
func NewIdentityCodec(directory ports.CredentialDirectory) *IdentityCodec {
	return &IdentityCodec{directory: directory}
}

// Serialize returns a token carrying only the username.
func (c *IdentityCodec) Serialize(identity domainauth.Identity) domainauth.SessionToken {
	return domainauth.SessionToken(identity.Username)
}

// Deserialize looks the token's username up again. It returns
// domainauth.ErrIdentityNotFound when the identity was removed after the session was issued.
func (c *IdentityCodec) Deserialize(ctx context.Context, token domainauth.SessionToken) (domainauth.Identity, error) {
	if token == "" {
		return domainauth.Identity{}, domainauth.ErrIdentityNotFound
	}
	identity, err := c.directory.Find(ctx, string(token))
	if err != nil {
		if errors.Is(err, domainauth.ErrIdentityNotFound) {
			return domainauth.Identity{}, domainauth.ErrIdentityNotFound
		}
		return domainauth.Identity{}, fmt.Errorf("resolve identity: %w", err)
	}
	return identity, nil
}
