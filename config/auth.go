package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// SessionStoreMode selects the session store implementation.
type SessionStoreMode string

const (
	// SessionStoreMemory keeps sessions in process memory (single instance).
	SessionStoreMemory SessionStoreMode = "memory"
	// SessionStoreRedis keeps sessions in Redis (shared across instances).
	SessionStoreRedis SessionStoreMode = "redis"
)

// UnmarshalText implements encoding.TextUnmarshaler for SessionStoreMode.
func (m *SessionStoreMode) UnmarshalText(text []byte) error {
	v := strings.ToLower(strings.TrimSpace(string(text)))
	switch v {
	case "memory", "redis":
		*m = SessionStoreMode(v)
		return nil
	default:
		return fmt.Errorf("invalid SessionStoreMode: %q (valid options: memory, redis)", v)
	}
}

// DirectoryBackend selects where registered identities are loaded from.
type DirectoryBackend string

const (
	// DirectoryBackendStatic loads identities from AUTH_USERS at startup.
	DirectoryBackendStatic DirectoryBackend = "static"
	// DirectoryBackendPostgres looks identities up in the identities table.
	DirectoryBackendPostgres DirectoryBackend = "postgres"
)

// UnmarshalText implements encoding.TextUnmarshaler for DirectoryBackend.
func (b *DirectoryBackend) UnmarshalText(text []byte) error {
	v := strings.ToLower(strings.TrimSpace(string(text)))
	switch v {
	case "static", "postgres":
		*b = DirectoryBackend(v)
		return nil
	default:
		return fmt.Errorf("invalid DirectoryBackend: %q (valid options: static, postgres)", v)
	}
}

// MinSessionSecretLen is the minimum accepted length of SESSION_SECRET_KEY in bytes.
const MinSessionSecretLen = 32

// AuthConfig groups all authentication-related configuration.
type AuthConfig struct {
	// SessionSecret signs session cookies. Required.
	SessionSecret string `env:"SESSION_SECRET_KEY,required,unset"`

	// SessionTTL bounds the lifetime of a session from login.
	SessionTTL time.Duration `env:"SESSION_TTL" envDefault:"12h"`

	// SessionStore selects the session store implementation.
	SessionStore SessionStoreMode `env:"SESSION_STORE" envDefault:"memory"`

	// SweepInterval controls how often expired in-memory sessions are purged.
	SweepInterval time.Duration `env:"SESSION_SWEEP_INTERVAL" envDefault:"1m"`

	// DirectoryBackend selects the credential directory implementation.
	DirectoryBackend DirectoryBackend `env:"DIRECTORY_BACKEND" envDefault:"static"`

	// Users is the static registration list: "username:<argon2id PHC hash>" entries.
	Users []string `env:"AUTH_USERS" envSeparator:";"`
}

// Sanitize applies defaults to session timings and trims list entries.
func (a *AuthConfig) Sanitize() {
	a.SessionSecret = strings.TrimSpace(a.SessionSecret)
	if a.SessionTTL <= 0 {
		a.SessionTTL = 12 * time.Hour
	}
	if a.SweepInterval <= 0 {
		a.SweepInterval = time.Minute
	}
	if a.SessionStore == "" {
		a.SessionStore = SessionStoreMemory
	}
	if a.DirectoryBackend == "" {
		a.DirectoryBackend = DirectoryBackendStatic
	}

	users := a.Users[:0]
	for _, u := range a.Users {
		if u = strings.TrimSpace(u); u != "" {
			users = append(users, u)
		}
	}
	a.Users = users
}

// Validate checks the signing secret strength.
func (a *AuthConfig) Validate() error {
	if a.SessionSecret == "" {
		return errors.New("SESSION_SECRET_KEY is required")
	}
	if len(a.SessionSecret) < MinSessionSecretLen {
		return fmt.Errorf("SESSION_SECRET_KEY must be at least %d bytes", MinSessionSecretLen)
	}
	return nil
}
