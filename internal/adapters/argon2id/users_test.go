package argon2id

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseUserList(t *testing.T) {
	h := NewHasher(testParams)
	aliceHash, err := h.Hash("s3cret")
	require.NoError(t, err)
	bobHash, err := h.Hash("hunter2")
	require.NoError(t, err)

	ids, err := ParseUserList([]string{"alice:" + aliceHash, "", "  bob : " + bobHash + " "})
	require.NoError(t, err)
	require.Len(t, ids, 2)
	assert.Equal(t, "alice", ids[0].Username)
	assert.Equal(t, aliceHash, ids[0].PasswordHash)
	assert.Equal(t, "bob", ids[1].Username)
	assert.Equal(t, bobHash, ids[1].PasswordHash)
}

func TestParseUserList_Errors(t *testing.T) {
	hash, err := NewHasher(testParams).Hash("s3cret")
	require.NoError(t, err)

	tests := []struct {
		name    string
		entries []string
		errMsg  string
	}{
		{"missing separator", []string{"alice"}, "expected username:hash"},
		{"empty username", []string{":" + hash}, "expected username:hash"},
		{"plaintext password", []string{"alice:s3cret"}, "must be an argon2id hash"},
		{"duplicate", []string{"alice:" + hash, "alice:" + hash}, "duplicate username"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseUserList(tt.entries)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}
