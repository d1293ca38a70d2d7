package argon2id

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Cheap parameters keep the suite fast; production uses DefaultParams.
var testParams = Params{Time: 1, Memory: 8 * 1024, Threads: 1}

func TestHasher_HashAndVerify(t *testing.T) {
	h := NewHasher(testParams)

	hash, err := h.Hash("s3cret")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "$argon2id$v=19$m=8192,t=1,p=1$"))

	ok, err := h.Verify("s3cret", hash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = h.Verify("wrong", hash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHasher_SaltedHashesDiffer(t *testing.T) {
	h := NewHasher(testParams)
	a, err := h.Hash("s3cret")
	require.NoError(t, err)
	b, err := h.Hash("s3cret")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestHasher_VerifyUsesEmbeddedParams(t *testing.T) {
	hash, err := NewHasher(testParams).Hash("s3cret")
	require.NoError(t, err)

	ok, err := NewHasher(Params{}).Verify("s3cret", hash)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestHasher_EmptyPassword(t *testing.T) {
	_, err := NewHasher(testParams).Hash("")
	assert.ErrorIs(t, err, ErrEmptyPassword)
}

func TestHasher_InvalidHashes(t *testing.T) {
	h := NewHasher(testParams)
	for _, bad := range []string{
		"",
		"s3cret",
		"$bcrypt$v=19$m=8192,t=1,p=1$c2FsdA$aGFzaA",
		"$argon2id$v=18$m=8192,t=1,p=1$c2FsdA$aGFzaA",
		"$argon2id$v=19$m=8192,t=1,p=0$c2FsdA$aGFzaA",
		"$argon2id$v=19$m=8192,t=1,p=1$!!$aGFzaA",
		"$argon2id$v=19$m=8192,t=1,p=1$c2FsdA$",
	} {
		_, err := h.Verify("s3cret", bad)
		assert.ErrorIs(t, err, ErrInvalidHash, "hash %q", bad)
		assert.False(t, IsHash(bad))
	}
}
