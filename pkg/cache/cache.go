// Package cache holds the read-through cache used for public content lists.
package cache

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Cache stores JSON-encodable values by key. A miss is (false, nil).
//
// DeletePrefix bumps the generation of prefix before deleting, so a value
// loaded under an older generation is never read again.
type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Generation(ctx context.Context, prefix string) (int64, error)
	DeletePrefix(ctx context.Context, prefix string) error
}

// Key joins parts with ':' the way every studio cache key is built.
func Key(parts ...string) string {
	return strings.Join(parts, ":")
}

// Remember returns the cached value for key under prefix, or calls load and
// caches its result. The entry is stored under the prefix generation read
// before loading, so a load racing with DeletePrefix cannot leave stale data
// behind. Cache failures never fail the caller; they only cost a reload.
func Remember[T any](ctx context.Context, c Cache, prefix, key string, ttl time.Duration, load func(ctx context.Context) (T, error)) (T, error) {
	gen, err := c.Generation(ctx, prefix)
	if err != nil {
		return load(ctx)
	}
	fullKey := Key(prefix, "g"+strconv.FormatInt(gen, 10), key)

	var cached T
	if hit, err := c.Get(ctx, fullKey, &cached); err == nil && hit {
		return cached, nil
	}

	value, err := load(ctx)
	if err != nil {
		return value, err
	}
	_ = c.Set(ctx, fullKey, value, ttl)
	return value, nil
}

type memoryEntry struct {
	data      []byte
	expiresAt time.Time
}

// Memory is a process-local Cache used when Redis is not configured.
type Memory struct {
	mu          sync.RWMutex
	entries     map[string]memoryEntry
	generations map[string]int64
	now         func() time.Time
}

func NewMemory() *Memory {
	return &Memory{
		entries:     make(map[string]memoryEntry),
		generations: make(map[string]int64),
		now:         time.Now,
	}
}

func (m *Memory) Get(_ context.Context, key string, dst any) (bool, error) {
	m.mu.RLock()
	entry, ok := m.entries[key]
	m.mu.RUnlock()

	if !ok {
		return false, nil
	}
	if !entry.expiresAt.IsZero() && m.now().After(entry.expiresAt) {
		m.mu.Lock()
		delete(m.entries, key)
		m.mu.Unlock()
		return false, nil
	}
	if err := json.Unmarshal(entry.data, dst); err != nil {
		return false, err
	}
	return true, nil
}

func (m *Memory) Set(_ context.Context, key string, value any, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	entry := memoryEntry{data: data}
	if ttl > 0 {
		entry.expiresAt = m.now().Add(ttl)
	}

	m.mu.Lock()
	m.entries[key] = entry
	m.mu.Unlock()
	return nil
}

func (m *Memory) Generation(_ context.Context, prefix string) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.generations[prefix], nil
}

func (m *Memory) DeletePrefix(_ context.Context, prefix string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.generations[prefix]++
	for key := range m.entries {
		if strings.HasPrefix(key, prefix) {
			delete(m.entries, key)
		}
	}
	return nil
}
