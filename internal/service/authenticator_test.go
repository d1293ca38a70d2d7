package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/emomoto/auto-recruiter/internal/adapters/argon2id"
	"github.com/emomoto/auto-recruiter/internal/adapters/memory"
	domainauth "github.com/emomoto/auto-recruiter/internal/domain/auth"
	"github.com/emomoto/auto-recruiter/internal/mocks"
)

var cheapParams = argon2id.Params{Time: 1, Memory: 8 * 1024, Threads: 1}

type registered struct {
	username string
	password string
}

// newTestDirectory hashes each password and loads the identities into a memory directory.
func newTestDirectory(t *testing.T, users ...registered) (*memory.Directory, *argon2id.Hasher) {
	t.Helper()
	hasher := argon2id.NewHasher(cheapParams)
	ids := make([]domainauth.Identity, 0, len(users))
	for _, u := range users {
		hash, err := hasher.Hash(u.password)
		require.NoError(t, err)
		ids = append(ids, domainauth.Identity{Username: u.username, PasswordHash: hash})
	}
	dir, err := memory.NewDirectory(ids)
	require.NoError(t, err)
	return dir, hasher
}

func newTestAuthenticator(t *testing.T, users ...registered) (*Authenticator, *memory.Directory) {
	t.Helper()
	dir, hasher := newTestDirectory(t, users...)
	a, err := NewAuthenticator(AuthenticatorOptions{Directory: dir, Hasher: hasher})
	require.NoError(t, err)
	return a, dir
}

func TestAuthenticator_RegisteredIdentitiesSucceed(t *testing.T) {
	users := []registered{{"alice", "s3cret"}, {"bob", "hunter2"}, {"carol", "p@ss:word"}}
	a, dir := newTestAuthenticator(t, users...)

	for _, u := range users {
		res, err := a.Authenticate(context.Background(), u.username, u.password)
		require.NoError(t, err)
		require.True(t, res.OK, "user %s", u.username)

		want, findErr := dir.Find(context.Background(), u.username)
		require.NoError(t, findErr)
		assert.Equal(t, domainauth.Success(want), res)
	}
}

func TestAuthenticator_FailuresAreIndistinguishable(t *testing.T) {
	a, _ := newTestAuthenticator(t, registered{"alice", "s3cret"})
	ctx := context.Background()

	unknown, err := a.Authenticate(ctx, "mallory", "s3cret")
	require.NoError(t, err)

	for _, pw := range []string{"wrong", "", "S3CRET", "s3cret "} {
		res, err := a.Authenticate(ctx, "alice", pw)
		require.NoError(t, err)
		assert.Equal(t, unknown, res, "password %q", pw)
	}
	assert.Equal(t, domainauth.Failure(), unknown)
	assert.Equal(t, domainauth.FailureReason, unknown.Reason)
}

func TestAuthenticator_UnknownUserStillVerifiesAHash(t *testing.T) {
	ctrl := gomock.NewController(t)
	dir := mocks.NewMockCredentialDirectory(ctrl)
	hasher := mocks.NewMockPasswordHasher(ctrl)

	hasher.EXPECT().Hash(gomock.Any()).Return("dummy-hash", nil)
	a, err := NewAuthenticator(AuthenticatorOptions{Directory: dir, Hasher: hasher})
	require.NoError(t, err)

	dir.EXPECT().Find(gomock.Any(), "mallory").Return(domainauth.Identity{}, domainauth.ErrIdentityNotFound)
	hasher.EXPECT().Verify("guess", "dummy-hash").Return(false, nil)

	res, err := a.Authenticate(context.Background(), "mallory", "guess")
	require.NoError(t, err)
	assert.False(t, res.OK)
}

func TestAuthenticator_Faults(t *testing.T) {
	t.Run("directory failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		dir := mocks.NewMockCredentialDirectory(ctrl)
		a, err := NewAuthenticator(AuthenticatorOptions{Directory: dir, Hasher: argon2id.NewHasher(cheapParams)})
		require.NoError(t, err)

		dir.EXPECT().Find(gomock.Any(), "alice").Return(domainauth.Identity{}, errors.New("connection refused"))
		_, err = a.Authenticate(context.Background(), "alice", "s3cret")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "connection refused")
	})

	t.Run("corrupt stored hash", func(t *testing.T) {
		dir, err := memory.NewDirectory([]domainauth.Identity{{Username: "alice", PasswordHash: "s3cret"}})
		require.NoError(t, err)
		a, err := NewAuthenticator(AuthenticatorOptions{Directory: dir, Hasher: argon2id.NewHasher(cheapParams)})
		require.NoError(t, err)

		_, err = a.Authenticate(context.Background(), "alice", "s3cret")
		assert.ErrorIs(t, err, argon2id.ErrInvalidHash)
	})

	t.Run("hasher failure at construction", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		hasher := mocks.NewMockPasswordHasher(ctrl)
		hasher.EXPECT().Hash(gomock.Any()).Return("", errors.New("no entropy"))

		_, err := NewAuthenticator(AuthenticatorOptions{Directory: mocks.NewMockCredentialDirectory(ctrl), Hasher: hasher})
		require.Error(t, err)
	})

	t.Run("missing dependencies", func(t *testing.T) {
		_, err := NewAuthenticator(AuthenticatorOptions{})
		require.Error(t, err)
	})
}
