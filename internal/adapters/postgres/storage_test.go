package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linkly/linkly-ui/internal/ports"
	"github.com/linkly/linkly-ui/internal/testutil"
)

func setupStorage(t *testing.T) *Storage {
	t.Helper()
	db := testutil.SetupTestDB(t)
	t.Cleanup(func() { _ = db.Close() })

	store := NewStorage(db)
	ctx := context.Background()
	require.NoError(t, store.EnsureSchema(ctx))

	_, err := db.ExecContext(ctx, `DELETE FROM client_state`)
	require.NoError(t, err)
	return store
}

func TestStorage_RoundTrip(t *testing.T) {
	store := setupStorage(t)
	ctx := context.Background()

	_, err := store.Get(ctx, "token")
	assert.ErrorIs(t, err, ports.ErrNotFound)

	require.NoError(t, store.Set(ctx, "token", "tok-1"))
	val, err := store.Get(ctx, "token")
	require.NoError(t, err)
	assert.Equal(t, "tok-1", val)

	// Upsert replaces the value in place.
	require.NoError(t, store.Set(ctx, "token", "tok-2"))
	val, err = store.Get(ctx, "token")
	require.NoError(t, err)
	assert.Equal(t, "tok-2", val)

	require.NoError(t, store.Delete(ctx, "token"))
	_, err = store.Get(ctx, "token")
	assert.ErrorIs(t, err, ports.ErrNotFound)
}

func TestStorage_EnsureSchemaIdempotent(t *testing.T) {
	store := setupStorage(t)
	require.NoError(t, store.EnsureSchema(context.Background()))
}

func TestStorage_EmptyKey(t *testing.T) {
	store := setupStorage(t)
	ctx := context.Background()

	_, err := store.Get(ctx, "")
	assert.ErrorIs(t, err, ports.ErrNotFound)
	assert.Error(t, store.Set(ctx, "", "x"))
	assert.NoError(t, store.Delete(ctx, ""))
}
