package argon2id

import (
	"fmt"
	"strings"

	domainauth "github.com/emomoto/auto-recruiter/internal/domain/auth"
)

// ParseUserList turns AUTH_USERS entries ("username:<argon2id hash>") into identities.
// Blank entries are skipped. Plaintext passwords are rejected.
func ParseUserList(entries []string) ([]domainauth.Identity, error) {
	out := make([]domainauth.Identity, 0, len(entries))
	seen := make(map[string]struct{}, len(entries))
	for i, raw := range entries {
		entry := strings.TrimSpace(raw)
		if entry == "" {
			continue
		}
		username, hash, ok := strings.Cut(entry, ":")
		username = strings.TrimSpace(username)
		hash = strings.TrimSpace(hash)
		if !ok || username == "" {
			return nil, fmt.Errorf("AUTH_USERS entry %d: expected username:hash", i+1)
		}
		if !IsHash(hash) {
			return nil, fmt.Errorf("AUTH_USERS entry %d (%s): password must be an argon2id hash", i+1, username)
		}
		if _, dup := seen[username]; dup {
			return nil, fmt.Errorf("AUTH_USERS entry %d: duplicate username %q", i+1, username)
		}
		seen[username] = struct{}{}
		out = append(out, domainauth.Identity{Username: username, PasswordHash: hash})
	}
	return out, nil
}
