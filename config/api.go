package config

import (
	"strings"
	"time"
)

// APIConfig contains booking API client configuration.
type APIConfig struct {
	// BaseURL is the booking API's base URL, without the /api/v1 suffix.
	BaseURL string `env:"API_BASE_URL" envDefault:"http://localhost:8000"`

	// Timeout bounds each request to the booking API.
	Timeout time.Duration `env:"API_TIMEOUT" envDefault:"10s"`
}

// Sanitize applies guardrails to API client configuration values.
func (a *APIConfig) Sanitize() {
	a.BaseURL = strings.TrimRight(strings.TrimSpace(a.BaseURL), "/")
	if a.BaseURL == "" {
		a.BaseURL = "http://localhost:8000"
	}
	if a.Timeout <= 0 {
		a.Timeout = 10 * time.Second
	}
}
