package memory

import (
	"context"
	"errors"
	"sync"
	"time"

	domainauth "github.com/emomoto/auto-recruiter/internal/domain/auth"
)

// ErrNotFound is returned when a session is unknown or expired.
var ErrNotFound = domainauth.ErrSessionNotFound

// SessionStore keeps sessions in a sync.Map so unrelated logins never share a lock.
type SessionStore struct {
	sessions sync.Map // id -> domainauth.Session
	now      func() time.Time
}

// SessionStoreOption configures a SessionStore.
type SessionStoreOption func(*SessionStore)

// WithClock overrides the time source used for expiry checks.
func WithClock(now func() time.Time) SessionStoreOption {
	return func(s *SessionStore) {
		if now != nil {
			s.now = now
		}
	}
}

// NewSessionStore creates an empty in-memory session store.
func NewSessionStore(opts ...SessionStoreOption) *SessionStore {
	s := &SessionStore{now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *SessionStore) Save(_ context.Context, sess domainauth.Session) error {
	if sess.ID == "" {
		return errors.New("session ID cannot be empty")
	}
	if sess.Expired(s.now()) {
		return errors.New("session is expired")
	}
	s.sessions.Store(sess.ID, sess)
	return nil
}

func (s *SessionStore) Get(_ context.Context, id string) (domainauth.Session, error) {
	v, ok := s.sessions.Load(id)
	if !ok {
		return domainauth.Session{}, ErrNotFound
	}
	sess, _ := v.(domainauth.Session)
	if sess.Expired(s.now()) {
		s.sessions.CompareAndDelete(id, v)
		return domainauth.Session{}, ErrNotFound
	}
	return sess, nil
}

func (s *SessionStore) Delete(_ context.Context, id string) error {
	s.sessions.Delete(id)
	return nil
}

// Sweep removes every session expired at now and returns how many were dropped.
func (s *SessionStore) Sweep(now time.Time) int {
	removed := 0
	s.sessions.Range(func(key, value any) bool {
		if sess, _ := value.(domainauth.Session); sess.Expired(now) {
			if s.sessions.CompareAndDelete(key, value) {
				removed++
			}
		}
		return true
	})
	return removed
}

// Len counts stored sessions, expired or not.
func (s *SessionStore) Len() int {
	n := 0
	s.sessions.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}
