package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSanitize_StorageFallbacks(t *testing.T) {
	tests := []struct {
		name  string
		in    AppConfig
		want  StorageBackend
		isDev bool
	}{
		{name: "redis kept", in: AppConfig{Storage: "redis"}, want: StorageRedis},
		{name: "postgres kept", in: AppConfig{Storage: "postgres"}, want: StoragePostgres},
		{name: "memory kept", in: AppConfig{Storage: "memory"}, want: StorageMemory},
		{name: "case and whitespace normalized", in: AppConfig{Storage: " Redis "}, want: StorageRedis},
		{name: "unknown falls back to redis", in: AppConfig{Storage: "etcd"}, want: StorageRedis},
		{name: "unknown in dev falls back to memory", in: AppConfig{Storage: "etcd", IsDev: true}, want: StorageMemory, isDev: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.in
			cfg.Sanitize()
			assert.Equal(t, tt.want, cfg.StorageKind())
			assert.Equal(t, tt.isDev, cfg.IsDev)
		})
	}
}

func TestSanitize_HTTPTimeouts(t *testing.T) {
	cfg := AppConfig{}
	cfg.HTTP.ReadTimeout = -1
	cfg.Sanitize()

	assert.Equal(t, 15*time.Second, cfg.HTTP.ReadTimeout)
	assert.Equal(t, 30*time.Second, cfg.HTTP.WriteTimeout)
	assert.Equal(t, 10*time.Second, cfg.HTTP.ShutdownTimeout)
}

func TestSanitize_APIBaseURL(t *testing.T) {
	cfg := AppConfig{}
	cfg.API.BaseURL = " https://api.lnk.ly/ "
	cfg.API.Timeout = -time.Second
	cfg.Sanitize()

	assert.Equal(t, "https://api.lnk.ly", cfg.API.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.API.Timeout)
}
