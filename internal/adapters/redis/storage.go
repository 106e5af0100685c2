package redis

// Package redis provides a Redis-backed persisted client storage, the
// production default for session state.

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/linkly/linkly-ui/internal/ports"
)

// Storage is a Redis-based key/value store. Entries have no TTL: session
// lifetime is governed by the token itself, not by the storage layer.
type Storage struct {
	client redis.UniversalClient
	prefix string
}

// NewStorage creates a Redis storage with the default key prefix.
func NewStorage(client redis.UniversalClient) *Storage {
	return &Storage{client: client, prefix: "linkly:"}
}

// NewStorageWithPrefix creates a Redis storage with a custom key prefix.
func NewStorageWithPrefix(client redis.UniversalClient, prefix string) *Storage {
	return &Storage{client: client, prefix: prefix}
}

func (s *Storage) Get(ctx context.Context, key string) (string, error) {
	if key == "" {
		return "", ports.ErrNotFound
	}

	val, err := s.client.Get(ctx, s.prefix+key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ports.ErrNotFound
		}
		return "", fmt.Errorf("redis get: %w", err)
	}
	return val, nil
}

func (s *Storage) Set(ctx context.Context, key, value string) error {
	if key == "" {
		return errors.New("storage key cannot be empty")
	}
	if err := s.client.Set(ctx, s.prefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

func (s *Storage) Delete(ctx context.Context, key string) error {
	if key == "" {
		return nil // Nothing to delete
	}
	if err := s.client.Del(ctx, s.prefix+key).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}
