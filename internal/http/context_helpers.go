package httpx

import (
	"context"

	domainauth "github.com/emomoto/auto-recruiter/internal/domain/auth"
)

// identityKey is an unexported context key type to avoid collisions across packages.
type identityKey struct{}

// SetIdentityInContext returns a child context that carries the resolved identity.
// The password hash is stripped before it enters the context.
func SetIdentityInContext(ctx context.Context, identity domainauth.Identity) context.Context {
	identity.PasswordHash = ""
	return context.WithValue(ctx, identityKey{}, identity)
}

// GetIdentityFromContext returns the identity set by RequireSession, if any.
func GetIdentityFromContext(ctx context.Context) (domainauth.Identity, bool) {
	identity, ok := ctx.Value(identityKey{}).(domainauth.Identity)
	return identity, ok && identity.Username != ""
}
