package ports

// Package ports defines interfaces (hexagonal ports) for the session and API
// boundaries. Implementations live in internal/adapters; orchestration in
// internal/service.

import "context"

// Storage persists client-side state as string key/value pairs surviving
// process restarts. Implementations must return ErrNotFound for missing keys.
type Storage interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// ErrNotFound is returned when a storage key is not present.
type notFoundError struct{}

func (notFoundError) Error() string { return "storage: key not found" }

var ErrNotFound error = notFoundError{}

// Well-known storage keys for session state.
const (
	KeyToken = "token"
	KeyUser  = "user"
)
