package config

import (
	"strings"
	"time"
)

// APIConfig contains upstream shortener API client configuration.
type APIConfig struct {
	// BaseURL is the root of the shortener API (e.g. "https://api.lnk.ly").
	BaseURL string `env:"API_BASE_URL" envDefault:"http://localhost:9000"`

	// Timeout bounds each outbound API call.
	Timeout time.Duration `env:"API_TIMEOUT" envDefault:"10s"`
}

// Sanitize applies guardrails to API client configuration values.
func (a *APIConfig) Sanitize() {
	a.BaseURL = strings.TrimRight(strings.TrimSpace(a.BaseURL), "/")
	if a.Timeout <= 0 {
		a.Timeout = 10 * time.Second
	}
}
