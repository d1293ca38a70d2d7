package config

import (
	"strings"
	"time"
)

// DefaultWelcomeMessage is the placeholder bot activity pushed to every new connection.
const DefaultWelcomeMessage = "Recruitment bot has screened 10 profiles."

// RealtimeConfig controls the websocket notification channel.
type RealtimeConfig struct {
	// Path is the HTTP path upgraded to a websocket.
	Path string `env:"PATH" envDefault:"/ws"`

	// RequireAuth gates the channel behind a valid session.
	RequireAuth bool `env:"REQUIRE_AUTH" envDefault:"false"`

	// WelcomeMessage is sent once on every new connection.
	WelcomeMessage string `env:"WELCOME_MESSAGE" envDefault:"Recruitment bot has screened 10 profiles."`

	// AllowedOrigins lists Origin header values accepted on upgrade.
	// Empty means same-origin only.
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`

	// PingInterval is how often the server pings idle clients.
	PingInterval time.Duration `env:"PING_INTERVAL" envDefault:"30s"`

	// SendBuffer is the per-connection outbound queue length.
	SendBuffer int `env:"SEND_BUFFER" envDefault:"16"`
}

// Sanitize applies guardrails to realtime configuration values.
func (r *RealtimeConfig) Sanitize() {
	r.Path = strings.TrimSpace(r.Path)
	if !strings.HasPrefix(r.Path, "/") {
		r.Path = "/ws"
	}
	if strings.TrimSpace(r.WelcomeMessage) == "" {
		r.WelcomeMessage = DefaultWelcomeMessage
	}
	if r.PingInterval < time.Second {
		r.PingInterval = 30 * time.Second
	}
	if r.SendBuffer < 1 {
		r.SendBuffer = 16
	}

	origins := r.AllowedOrigins[:0]
	for _, o := range r.AllowedOrigins {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	r.AllowedOrigins = origins
}
