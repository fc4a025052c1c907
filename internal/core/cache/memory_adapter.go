package cache

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// memoryEntry is a stored value with its optional expiration time.
type memoryEntry struct {
	value     []byte
	expiresAt time.Time
}

// expired reports whether the entry has an expiration in the past.
func (e memoryEntry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && now.After(e.expiresAt)
}

// MemoryAdapter implements the Cache interface with an in-process map.
// Reads are concurrent; writes are serialized behind a single lock, which
// is what the geocode cache needs under the batch worker pool. Duplicate
// lookups for the same key racing past a miss are acceptable.
type MemoryAdapter struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
}

// NewMemoryAdapter creates an empty in-memory cache adapter.
func NewMemoryAdapter() *MemoryAdapter {
	return &MemoryAdapter{
		entries: make(map[string]memoryEntry),
	}
}

// Get retrieves a value by key. Expired entries count as not found.
func (m *MemoryAdapter) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	entry, ok := m.entries[key]
	m.mu.RUnlock()

	if !ok || entry.expired(time.Now()) {
		return nil, fmt.Errorf("%w: %s", ErrKeyNotFound, key)
	}
	return entry.value, nil
}

// Set stores a value with the specified TTL. TTL of 0 means no expiration.
func (m *MemoryAdapter) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	entry := memoryEntry{value: value}
	if ttl > 0 {
		entry.expiresAt = time.Now().Add(ttl)
	}

	m.mu.Lock()
	m.entries[key] = entry
	m.mu.Unlock()
	return nil
}

// Delete removes a value by key.
func (m *MemoryAdapter) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	delete(m.entries, key)
	m.mu.Unlock()
	return nil
}

// Ping always succeeds for the in-process cache.
func (m *MemoryAdapter) Ping(_ context.Context) error {
	return nil
}

// Close drops all entries.
func (m *MemoryAdapter) Close() error {
	m.mu.Lock()
	m.entries = make(map[string]memoryEntry)
	m.mu.Unlock()
	return nil
}
