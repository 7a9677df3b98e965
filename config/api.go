package config

import (
	"strings"
	"time"
)

// APIConfig contains backend gateway configuration.
type APIConfig struct {
	// BaseURL is the backend entry point for all service calls
	// (e.g., "http://localhost:8080").
	BaseURL string `env:"API_BASE_URL" envDefault:"http://localhost:8080"`

	// Timeout bounds every backend call, including uploads.
	Timeout time.Duration `env:"API_TIMEOUT" envDefault:"30s"`
}

// Sanitize applies guardrails to gateway configuration values.
func (a *APIConfig) Sanitize() {
	a.BaseURL = strings.TrimRight(strings.TrimSpace(a.BaseURL), "/")
	if a.Timeout <= 0 {
		a.Timeout = 30 * time.Second
	}
}
