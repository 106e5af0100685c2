// Package testutil provides helpers for integration tests against real
// backends. Tests are skipped when the backend is not reachable, so the unit
// suite stays green on a bare machine.
package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"net"
	"os"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/redis/go-redis/v9"
)

// SetupTestRedis creates a Redis client for testing. The test is skipped if
// Redis is not reachable. The selected database is flushed before use.
func SetupTestRedis(t *testing.T) *redis.Client {
	t.Helper()

	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}

	client := redis.NewClient(&redis.Options{Addr: addr, DB: testRedisDB()})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		if cerr := client.Close(); cerr != nil {
			t.Logf("warning: failed to close redis client after ping error: %v", cerr)
		}
		t.Skipf("Redis not available for testing at %s: %v", addr, err)
	}

	client.FlushDB(ctx)
	return client
}

// testRedisDB keeps integration state away from any local dev data in DB 0.
func testRedisDB() int {
	return 9
}

// SetupTestDB creates a PostgreSQL connection for testing. The test is
// skipped if the database is not reachable.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	host := envOr("TEST_DB_HOST", "localhost")
	port := envOr("TEST_DB_PORT", "5432")
	user := envOr("TEST_DB_USER", "linkly")
	password := envOr("TEST_DB_PASSWORD", "linkly")
	name := envOr("TEST_DB_NAME", "linkly_test")

	dsn := fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=disable",
		user, password, net.JoinHostPort(host, port), name)

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		t.Skipf("open test database: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		if cerr := db.Close(); cerr != nil {
			t.Logf("warning: failed to close database after ping error: %v", cerr)
		}
		t.Skipf("PostgreSQL not available for testing at %s: %v", host, err)
	}

	return db
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
