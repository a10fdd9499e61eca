package config

import (
	"fmt"
	"strings"
	"time"
)

// SessionBackend selects which store keeps sessions.
type SessionBackend string

const (
	SessionBackendMemory   SessionBackend = "memory"
	SessionBackendRedis    SessionBackend = "redis"
	SessionBackendPostgres SessionBackend = "postgres"
)

// UnmarshalText lets the env library parse SESSION_BACKEND directly into
// the typed value.
func (b *SessionBackend) UnmarshalText(text []byte) error {
	switch SessionBackend(strings.ToLower(strings.TrimSpace(string(text)))) {
	case SessionBackendMemory:
		*b = SessionBackendMemory
	case SessionBackendRedis:
		*b = SessionBackendRedis
	case SessionBackendPostgres:
		*b = SessionBackendPostgres
	default:
		return fmt.Errorf("unknown session backend %q", string(text))
	}
	return nil
}

// SessionConfig contains session store configuration.
type SessionConfig struct {
	// Backend selects the session store: memory, redis, or postgres.
	Backend SessionBackend `env:"SESSION_BACKEND" envDefault:"memory"`

	// TTL is how long a session lives after login.
	TTL time.Duration `env:"SESSION_TTL" envDefault:"24h"`

	// ReaperInterval is how often expired sessions are purged. Only the
	// postgres backend needs a reaper; Redis expires keys itself.
	ReaperInterval time.Duration `env:"SESSION_REAPER_INTERVAL" envDefault:"10m"`
}

// Sanitize applies guardrails to session configuration values.
func (s *SessionConfig) Sanitize() {
	if s.Backend == "" {
		s.Backend = SessionBackendMemory
	}
	if s.TTL <= 0 {
		s.TTL = 24 * time.Hour
	}
	if s.ReaperInterval <= 0 {
		s.ReaperInterval = 10 * time.Minute
	}
}
