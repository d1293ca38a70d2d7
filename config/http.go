package config

import (
	"fmt"
	"net"
	"strconv"
	"strings"
)

// HTTPConfig contains HTTP server configuration.
type HTTPConfig struct {
	// Port is the TCP port the gateway listens on. Required.
	Port int `env:"APP_PORT,required"`

	// Host optionally restricts the listener to one interface; empty binds all.
	Host string `env:"HTTP_ADDR_HOST" envDefault:""`

	// CookieDomain is the domain for session cookies.
	// Leave empty to use the request domain.
	CookieDomain string `env:"APP_COOKIE_DOMAIN" envDefault:""`
}

// Sanitize applies guardrails to HTTP configuration values.
func (h *HTTPConfig) Sanitize() {
	h.Host = strings.TrimSpace(h.Host)
	h.CookieDomain = strings.TrimSpace(h.CookieDomain)
}

// Validate checks the listen port range.
func (h *HTTPConfig) Validate() error {
	if h.Port < 1 || h.Port > 65535 {
		return fmt.Errorf("APP_PORT must be between 1 and 65535, got %d", h.Port)
	}
	return nil
}

// Addr returns the listen address derived from Host and Port.
func (h *HTTPConfig) Addr() string {
	return net.JoinHostPort(h.Host, strconv.Itoa(h.Port))
}
