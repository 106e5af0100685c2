package memory

// Package memory provides an in-process storage for development and tests.
// State does not survive restarts; production deployments use redis or
// postgres.

import (
	"context"
	"sync"

	"github.com/linkly/linkly-ui/internal/ports"
)

// Storage is a mutex-guarded map implementing ports.Storage.
type Storage struct {
	mu      sync.RWMutex
	entries map[string]string
}

// NewStorage creates an empty in-memory storage.
func NewStorage() *Storage {
	return &Storage{entries: make(map[string]string)}
}

func (s *Storage) Get(_ context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	val, ok := s.entries[key]
	if !ok {
		return "", ports.ErrNotFound
	}
	return val, nil
}

func (s *Storage) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = value
	return nil
}

func (s *Storage) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
	return nil
}
