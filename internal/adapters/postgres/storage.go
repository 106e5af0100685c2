package postgres

// Package postgres provides a PostgreSQL-backed persisted client storage for
// deployments that already run Postgres and do not want a Redis dependency.

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	// Registers the "pgx" database/sql driver.
	_ "github.com/jackc/pgx/v5/stdlib"

	apperrors "github.com/linkly/linkly-ui/internal/errors"
	"github.com/linkly/linkly-ui/internal/ports"
)

// Storage is a PostgreSQL-based key/value store over a single table.
type Storage struct {
	db *sql.DB
}

// NewStorage creates a Postgres storage on an existing connection pool.
func NewStorage(db *sql.DB) *Storage {
	return &Storage{db: db}
}

// EnsureSchema creates the backing table when it does not exist yet.
func (s *Storage) EnsureSchema(ctx context.Context) error {
	const ddl = `
		CREATE TABLE IF NOT EXISTS client_state (
			key        TEXT PRIMARY KEY,
			value      TEXT NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("ensure client_state schema: %w", apperrors.MapDBError(err))
	}
	return nil
}

func (s *Storage) Get(ctx context.Context, key string) (string, error) {
	if key == "" {
		return "", ports.ErrNotFound
	}

	const q = `SELECT value FROM client_state WHERE key = $1`
	var value string
	err := s.db.QueryRowContext(ctx, q, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ports.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("select client_state: %w", apperrors.MapDBError(err))
	}
	return value, nil
}

func (s *Storage) Set(ctx context.Context, key, value string) error {
	if key == "" {
		return errors.New("storage key cannot be empty")
	}

	const q = `
		INSERT INTO client_state (key, value, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`
	if _, err := s.db.ExecContext(ctx, q, key, value); err != nil {
		return fmt.Errorf("upsert client_state: %w", apperrors.MapDBError(err))
	}
	return nil
}

func (s *Storage) Delete(ctx context.Context, key string) error {
	if key == "" {
		return nil // Nothing to delete
	}

	const q = `DELETE FROM client_state WHERE key = $1`
	if _, err := s.db.ExecContext(ctx, q, key); err != nil {
		return fmt.Errorf("delete client_state: %w", apperrors.MapDBError(err))
	}
	return nil
}
