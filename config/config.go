package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// AppConfig is the main application configuration struct that composes
// domain-specific configuration from separate files.
//
// Configuration is loaded from environment variables using the
// github.com/caarlos0/env library. See individual domain config
// files for details on available environment variables:
//   - auth.go: Credential directory and session configuration
//   - database.go: Redis and PostgreSQL configuration
//   - http.go: HTTP server configuration
//   - realtime.go: Notification channel configuration
type AppConfig struct {
	// IsDev serves frontend pages and static assets from disk instead of the embedded copy,
	// with caching disabled. Cookie Secure flags do not depend on it; they follow each request.
	// Set DEV=true or NODE_ENV=development for development mode.
	IsDev bool `env:"DEV" envDefault:"false"`

	// Authentication and session configuration
	Auth AuthConfig

	// Storage configuration
	Postgres DBConfig    `envPrefix:"DB_"`
	Redis    RedisConfig `envPrefix:"REDIS_"`

	// HTTP server configuration
	HTTP HTTPConfig

	// Realtime notification channel configuration
	Realtime RealtimeConfig `envPrefix:"REALTIME_"`

	// Metrics exposure
	Metrics MetricsConfig `envPrefix:"METRICS_"`
}

// MetricsConfig controls the Prometheus /metrics endpoint.
type MetricsConfig struct {
	Enabled bool   `env:"ENABLED" envDefault:"false"`
	Path    string `env:"PATH"    envDefault:"/metrics"`
}

// Sanitize applies guardrails to configuration values loaded from env.
// This should be called after loading configuration from environment variables.
func (c *AppConfig) Sanitize() {
	c.Auth.Sanitize()
	c.HTTP.Sanitize()
	c.Realtime.Sanitize()

	c.Metrics.Path = strings.TrimSpace(c.Metrics.Path)
	if !strings.HasPrefix(c.Metrics.Path, "/") {
		c.Metrics.Path = "/metrics"
	}

	c.detectDevMode()
}

// Validate reports configuration that must stop the process at startup.
// Call after Sanitize.
func (c *AppConfig) Validate() error {
	var errs []error
	if err := c.Auth.Validate(); err != nil {
		errs = append(errs, err)
	}
	if err := c.HTTP.Validate(); err != nil {
		errs = append(errs, err)
	}
	if c.Auth.SessionStore == SessionStoreRedis && strings.TrimSpace(c.Redis.URI) == "" &&
		!c.Redis.UseSentinel && !c.Redis.UseCluster {
		errs = append(errs, errors.New("SESSION_STORE=redis requires REDIS_URI"))
	}
	if c.Auth.DirectoryBackend == DirectoryBackendPostgres && strings.TrimSpace(c.Postgres.Host) == "" {
		errs = append(errs, errors.New("DIRECTORY_BACKEND=postgres requires DB_HOST"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid configuration: %w", errors.Join(errs...))
	}
	return nil
}

// detectDevMode checks both DEV and NODE_ENV environment variables.
// NODE_ENV is checked as a fallback (common in frontend tooling).
func (c *AppConfig) detectDevMode() {
	if !c.IsDev {
		nodeEnv := strings.ToLower(os.Getenv("NODE_ENV"))
		c.IsDev = nodeEnv == "development" || nodeEnv == "dev"
	}
}
