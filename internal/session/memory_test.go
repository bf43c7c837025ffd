package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()

	t.Run("PutGet", func(t *testing.T) {
		store := NewMemoryStore()

		err := store.Put(ctx, "key-1", &Data{CartID: "cart_abc"})
		assert.NoError(t, err)

		data, err := store.Get(ctx, "key-1")
		assert.NoError(t, err)
		assert.Equal(t, "cart_abc", data.CartID)
	})

	t.Run("MissingKey", func(t *testing.T) {
		store := NewMemoryStore()

		data, err := store.Get(ctx, "nope")
		assert.NoError(t, err)
		assert.Nil(t, data)
	})

	t.Run("Delete", func(t *testing.T) {
		store := NewMemoryStore()
		assert.NoError(t, store.Put(ctx, "key-1", &Data{CartID: "cart_abc"}))
		assert.NoError(t, store.Delete(ctx, "key-1"))

		data, err := store.Get(ctx, "key-1")
		assert.NoError(t, err)
		assert.Nil(t, data)
	})

	t.Run("ExpiredEntryIsReaped", func(t *testing.T) {
		store := NewMemoryStore()
		store.sessions["stale"] = memoryEntry{
			data:      Data{CartID: "cart_stale"},
			expiresAt: time.Now().Add(-time.Minute),
		}

		data, err := store.Get(ctx, "stale")
		assert.NoError(t, err)
		assert.Nil(t, data)

		// The read removed the entry; the map does not accumulate dead keys.
		store.mu.RLock()
		_, ok := store.sessions["stale"]
		store.mu.RUnlock()
		assert.False(t, ok)
	})
}
