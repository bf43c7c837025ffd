package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_Ensure(t *testing.T) {
	ctx := context.Background()

	t.Run("Creates session lazily", func(t *testing.T) {
		m := NewManager(NewMemoryStore())

		key, cartID, err := m.Ensure(ctx, "")
		require.NoError(t, err)
		assert.NotEmpty(t, key)
		assert.Contains(t, cartID, "cart_")
	})

	t.Run("Stable across calls", func(t *testing.T) {
		m := NewManager(NewMemoryStore())

		key, cartID, err := m.Ensure(ctx, "")
		require.NoError(t, err)

		key2, cartID2, err := m.Ensure(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, key, key2)
		assert.Equal(t, cartID, cartID2)
	})

	t.Run("Unknown key is replaced", func(t *testing.T) {
		m := NewManager(NewMemoryStore())

		key, cartID, err := m.Ensure(ctx, "stale-key")
		require.NoError(t, err)
		assert.NotEqual(t, "stale-key", key)
		assert.NotEmpty(t, cartID)
	})
}

func TestManager_Lookup(t *testing.T) {
	ctx := context.Background()

	t.Run("Empty key", func(t *testing.T) {
		m := NewManager(NewMemoryStore())

		cartID, err := m.Lookup(ctx, "")
		assert.NoError(t, err)
		assert.Empty(t, cartID)
	})

	t.Run("Unknown key", func(t *testing.T) {
		m := NewManager(NewMemoryStore())

		cartID, err := m.Lookup(ctx, "nope")
		assert.NoError(t, err)
		assert.Empty(t, cartID)
	})

	t.Run("Known key", func(t *testing.T) {
		m := NewManager(NewMemoryStore())
		key, want, err := m.Ensure(ctx, "")
		require.NoError(t, err)

		got, err := m.Lookup(ctx, key)
		assert.NoError(t, err)
		assert.Equal(t, want, got)
	})
}

func TestMemoryStore_Delete(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.Put(ctx, "k", &Data{CartID: "cart_x"}))

	data, err := store.Get(ctx, "k")
	require.NoError(t, err)
	require.NotNil(t, data)

	require.NoError(t, store.Delete(ctx, "k"))

	data, err = store.Get(ctx, "k")
	assert.NoError(t, err)
	assert.Nil(t, data)
}
