package session

import (
	"context"
	"time"
)

// TTL bounds both the stored session and its cookie.
const TTL = 24 * time.Hour

// Data is the opaque per-visitor state a Store persists between requests.
type Data struct {
	CartID    string    `json:"cart_id"`
	CreatedAt time.Time `json:"created_at"`
}

// Store is the per-visitor key-value store. Get returns nil, nil when the
// key is unknown or expired. Keys are opaque random identifiers owned
// exclusively by their session.
type Store interface {
	Get(ctx context.Context, key string) (*Data, error)
	Put(ctx context.Context, key string, data *Data) error
	Delete(ctx context.Context, key string) error
}
