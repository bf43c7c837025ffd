package session

import (
	"context"
	"time"

	"toystore-be/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Manager hands out opaque session keys and binds each one to a cart id.
// Keys are created lazily: read-only paths that arrive without a session see
// an empty cart instead of minting state.
type Manager struct {
	store Store
}

func NewManager(store Store) *Manager {
	return &Manager{store: store}
}

// Ensure resolves the cart id for the given session key, creating the
// session when the key is empty or no longer known to the store. It returns
// the (possibly new) session key alongside the cart id.
func (m *Manager) Ensure(ctx context.Context, key string) (string, string, error) {
	if key != "" {
		data, err := m.store.Get(ctx, key)
		if err != nil {
			return "", "", err
		}
		if data != nil {
			return key, data.CartID, nil
		}
	}

	newKey := uuid.New().String()
	data := &Data{
		CartID:    "cart_" + uuid.New().String(),
		CreatedAt: time.Now(),
	}

	if err := m.store.Put(ctx, newKey, data); err != nil {
		return "", "", err
	}

	logger.FromCtx(ctx).Debug("session created",
		zap.String("layer", "session"),
		zap.String("cart_id", data.CartID),
	)

	return newKey, data.CartID, nil
}

// Lookup returns the cart id bound to the key, or "" when the session does
// not exist. It never creates state.
func (m *Manager) Lookup(ctx context.Context, key string) (string, error) {
	if key == "" {
		return "", nil
	}

	data, err := m.store.Get(ctx, key)
	if err != nil {
		return "", err
	}
	if data == nil {
		return "", nil
	}

	return data.CartID, nil
}
