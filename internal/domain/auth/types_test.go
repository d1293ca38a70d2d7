package auth

import (
	"testing"
	"time"
)

func TestSession_Expired(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	s := Session{ExpiresAt: now.Add(time.Minute)}
	if s.Expired(now) {
		t.Fatalf("did not expect expired")
	}
	if !s.Expired(now.Add(time.Minute)) {
		t.Fatalf("expected expired at the boundary")
	}
}

func TestAuthResult_Constructors(t *testing.T) {
	id := Identity{Username: "alice", PasswordHash: "$argon2id$..."}
	ok := Success(id)
	if !ok.OK || ok.Identity != id || ok.Reason != "" {
		t.Fatalf("unexpected success result: %+v", ok)
	}

	fail := Failure()
	if fail.OK || fail.Reason != FailureReason || fail.Identity != (Identity{}) {
		t.Fatalf("unexpected failure result: %+v", fail)
	}
	if Failure() != fail {
		t.Fatalf("failures must be indistinguishable")
	}
}
