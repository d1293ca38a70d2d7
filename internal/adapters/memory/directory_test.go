package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/emomoto/auto-recruiter/internal/domain/auth"
)

func TestDirectory_Find(t *testing.T) {
	alice := domainauth.Identity{Username: "alice", PasswordHash: "hash-a"}
	d, err := NewDirectory([]domainauth.Identity{alice})
	require.NoError(t, err)

	got, err := d.Find(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, alice, got)

	_, err = d.Find(context.Background(), "mallory")
	assert.ErrorIs(t, err, domainauth.ErrIdentityNotFound)
}

func TestDirectory_RejectsDuplicates(t *testing.T) {
	_, err := NewDirectory([]domainauth.Identity{{Username: "alice"}, {Username: "alice"}})
	require.Error(t, err)

	_, err = NewDirectory([]domainauth.Identity{{Username: ""}})
	require.Error(t, err)
}

func TestDirectory_ReplaceFailureKeepsSnapshot(t *testing.T) {
	d, err := NewDirectory([]domainauth.Identity{{Username: "alice"}})
	require.NoError(t, err)

	require.Error(t, d.Replace([]domainauth.Identity{{Username: "bob"}, {Username: "bob"}}))
	_, err = d.Find(context.Background(), "alice")
	assert.NoError(t, err)
	assert.Equal(t, 1, d.Len())
}

func TestDirectory_Remove(t *testing.T) {
	d, err := NewDirectory([]domainauth.Identity{{Username: "alice"}, {Username: "bob"}})
	require.NoError(t, err)

	assert.True(t, d.Remove("alice"))
	assert.False(t, d.Remove("alice"))
	assert.Equal(t, 1, d.Len())

	_, err = d.Find(context.Background(), "alice")
	assert.ErrorIs(t, err, domainauth.ErrIdentityNotFound)
	_, err = d.Find(context.Background(), "bob")
	assert.NoError(t, err)
}

func TestDirectory_ConcurrentFindAndRemove(t *testing.T) {
	ids := make([]domainauth.Identity, 0, 50)
	for i := range 50 {
		ids = append(ids, domainauth.Identity{Username: fmt.Sprintf("user-%d", i)})
	}
	d, err := NewDirectory(ids)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			d.Remove(fmt.Sprintf("user-%d", i))
		}()
		go func() {
			defer wg.Done()
			_, findErr := d.Find(context.Background(), fmt.Sprintf("user-%d", (i+25)%50))
			if findErr != nil {
				assert.ErrorIs(t, findErr, domainauth.ErrIdentityNotFound)
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 0, d.Len())
}
