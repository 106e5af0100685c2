package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linkly/linkly-ui/internal/ports"
)

func TestStorage_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewStorage()

	_, err := store.Get(ctx, "token")
	assert.ErrorIs(t, err, ports.ErrNotFound)

	require.NoError(t, store.Set(ctx, "token", "tok-1"))
	val, err := store.Get(ctx, "token")
	require.NoError(t, err)
	assert.Equal(t, "tok-1", val)

	require.NoError(t, store.Set(ctx, "token", "tok-2"))
	val, err = store.Get(ctx, "token")
	require.NoError(t, err)
	assert.Equal(t, "tok-2", val)

	require.NoError(t, store.Delete(ctx, "token"))
	_, err = store.Get(ctx, "token")
	assert.ErrorIs(t, err, ports.ErrNotFound)

	// Deleting a missing key is not an error.
	require.NoError(t, store.Delete(ctx, "token"))
}
