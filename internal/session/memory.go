package session

import (
	"context"
	"sync"
	"time"
)

// MemoryStore is an in-process Store used for tests and single-node demo
// runs without Redis.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]memoryEntry
}

type memoryEntry struct {
	data      Data
	expiresAt time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]memoryEntry)}
}

func (s *MemoryStore) Get(ctx context.Context, key string) (*Data, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.sessions[key]
	if !ok {
		return nil, nil
	}
	if time.Now().After(entry.expiresAt) {
		// Expired entries are reaped on read so the map cannot grow
		// unboundedly across long Redis-less runs.
		delete(s.sessions, key)
		return nil, nil
	}

	data := entry.data
	return &data, nil
}

func (s *MemoryStore) Put(ctx context.Context, key string, data *Data) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[key] = memoryEntry{
		data:      *data,
		expiresAt: time.Now().Add(TTL),
	}
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, key)
	return nil
}
