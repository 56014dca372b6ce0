package adapter

import (
	"context"
	"sync"
	"time"

	"classroom-player/internal/domain"
)

type memoryEntry struct {
	value     string
	expiresAt time.Time
}

func (e memoryEntry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && !now.Before(e.expiresAt)
}

// MemoryCacheAdapter implements domain.Cache in process memory. Expired
// entries are dropped lazily when touched.
type MemoryCacheAdapter struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	now     func() time.Time
}

// NewMemoryCacheAdapter creates an empty in-memory cache.
func NewMemoryCacheAdapter() *MemoryCacheAdapter {
	return &MemoryCacheAdapter{entries: make(map[string]memoryEntry), now: time.Now}
}

func (m *MemoryCacheAdapter) Get(_ context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	entry, ok := m.lookupLocked(key)
	if !ok {
		return "", domain.ErrCacheMiss
	}
	return entry.value, nil
}

func (m *MemoryCacheAdapter) Set(_ context.Context, key string, value string, expiration time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	entry := memoryEntry{value: value}
	if expiration > 0 {
		entry.expiresAt = m.now().Add(expiration)
	}
	m.entries[key] = entry
	return nil
}

func (m *MemoryCacheAdapter) GetDel(_ context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	entry, ok := m.lookupLocked(key)
	if !ok {
		return "", domain.ErrCacheMiss
	}
	delete(m.entries, key)
	return entry.value, nil
}

func (m *MemoryCacheAdapter) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, key)
	return nil
}

func (m *MemoryCacheAdapter) Ping(_ context.Context) error {
	return nil
}

func (m *MemoryCacheAdapter) lookupLocked(key string) (memoryEntry, bool) {
	entry, ok := m.entries[key]
	if !ok {
		return memoryEntry{}, false
	}
	if entry.expired(m.now()) {
		delete(m.entries, key)
		return memoryEntry{}, false
	}
	return entry, true
}
