package config

import (
	"os"
	"strings"
)

// AppConfig is the main application configuration struct that composes
// domain-specific configuration from separate files.
//
// Configuration is loaded from environment variables using the
// github.com/caarlos0/env library. See individual domain config
// files for details on available environment variables:
//   - database.go: Session storage backend configuration
//   - http.go: HTTP server configuration
//   - api.go: Upstream shortener API configuration
type AppConfig struct {
	// IsDev controls development mode behavior (verbose logging, memory
	// session storage fallback). Set DEV=true or APP_ENV=development.
	IsDev bool `env:"DEV" envDefault:"false"`

	// Storage selects the session storage backend: redis, postgres, or memory.
	Storage string `env:"SESSION_STORAGE" envDefault:"redis"`

	// Upstream shortener API configuration
	API APIConfig

	// Session storage backends
	Postgres DBConfig    `envPrefix:"DB_"`
	Redis    RedisConfig `envPrefix:"REDIS_"`

	// HTTP server configuration
	HTTP HTTPConfig
}

// StorageBackend names a session storage adapter.
type StorageBackend string

const (
	StorageRedis    StorageBackend = "redis"
	StoragePostgres StorageBackend = "postgres"
	StorageMemory   StorageBackend = "memory"
)

// Sanitize applies guardrails to configuration values loaded from env.
// This should be called after loading configuration from environment variables.
func (c *AppConfig) Sanitize() {
	c.HTTP.Sanitize()
	c.API.Sanitize()

	c.Storage = strings.ToLower(strings.TrimSpace(c.Storage))
	c.detectDevMode()

	// Unknown backends fall back to memory in dev so a bare `go run` works.
	switch StorageBackend(c.Storage) {
	case StorageRedis, StoragePostgres, StorageMemory:
	default:
		if c.IsDev {
			c.Storage = string(StorageMemory)
		} else {
			c.Storage = string(StorageRedis)
		}
	}
}

// StorageKind returns the selected session storage backend.
func (c *AppConfig) StorageKind() StorageBackend {
	return StorageBackend(c.Storage)
}

// detectDevMode checks both DEV and APP_ENV environment variables.
// This is called by Sanitize() to ensure IsDev is set correctly.
func (c *AppConfig) detectDevMode() {
	if !c.IsDev {
		appEnv := strings.ToLower(os.Getenv("APP_ENV"))
		c.IsDev = appEnv == "development" || appEnv == "dev"
	}
}
