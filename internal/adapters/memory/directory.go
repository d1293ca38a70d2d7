// Package memory provides in-process adapters for the credential directory,
// session store and settings store.
package memory

import (
	"context"
	"fmt"
	"sync/atomic"

	domainauth "github.com/emomoto/auto-recruiter/internal/domain/auth"
)

type snapshot map[string]domainauth.Identity

// Directory is a credential directory backed by an immutable snapshot.
// Find never locks; Replace and Remove publish a new snapshot atomically.
type Directory struct {
	snap atomic.Pointer[snapshot]
}

// NewDirectory builds a directory from the startup registration list.
func NewDirectory(identities []domainauth.Identity) (*Directory, error) {
	d := &Directory{}
	if err := d.Replace(identities); err != nil {
		return nil, err
	}
	return d, nil
}

// Find implements ports.CredentialDirectory.
func (d *Directory) Find(_ context.Context, username string) (domainauth.Identity, error) {
	if s := d.snap.Load(); s != nil {
		if id, ok := (*s)[username]; ok {
			return id, nil
		}
	}
	return domainauth.Identity{}, domainauth.ErrIdentityNotFound
}

// Replace swaps the whole directory. Duplicate or empty usernames are rejected
// and leave the current snapshot in place.
func (d *Directory) Replace(identities []domainauth.Identity) error {
	next := make(snapshot, len(identities))
	for _, id := range identities {
		if id.Username == "" {
			return fmt.Errorf("identity with empty username")
		}
		if _, dup := next[id.Username]; dup {
			return fmt.Errorf("duplicate identity %q", id.Username)
		}
		next[id.Username] = id
	}
	d.snap.Store(&next)
	return nil
}

// Remove drops username from the directory and reports whether it was present.
// Sessions that still reference it stop resolving on their next request.
func (d *Directory) Remove(username string) bool {
	for {
		cur := d.snap.Load()
		if cur == nil {
			return false
		}
		if _, ok := (*cur)[username]; !ok {
			return false
		}
		next := make(snapshot, len(*cur)-1)
		for k, v := range *cur {
			if k != username {
				next[k] = v
			}
		}
		if d.snap.CompareAndSwap(cur, &next) {
			return true
		}
	}
}

// Len returns the number of registered identities.
func (d *Directory) Len() int {
	if s := d.snap.Load(); s != nil {
		return len(*s)
	}
	return 0
}
