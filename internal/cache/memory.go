package cache

import (
	"context"
	"sync"

	"github.com/rpgo/withdrawal-simulator/internal/domain"
)

// DefaultMaxEntries bounds a MemoryStore created with a non-positive size.
const DefaultMaxEntries = 256

// MemoryStore is an in-process Store with FIFO eviction. Safe for concurrent use.
type MemoryStore struct {
	mu         sync.Mutex
	entries    map[string]*domain.ProjectionResult
	order      []string
	maxEntries int
}

// NewMemoryStore creates a store holding at most maxEntries results.
func NewMemoryStore(maxEntries int) *MemoryStore {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	return &MemoryStore{
		entries:    make(map[string]*domain.ProjectionResult),
		maxEntries: maxEntries,
	}
}

func (m *MemoryStore) Get(_ context.Context, key string) (*domain.ProjectionResult, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	r, ok := m.entries[key]
	if !ok {
		return nil, false, nil
	}
	return cloneResult(r), true, nil
}

func (m *MemoryStore) Set(_ context.Context, key string, result *domain.ProjectionResult) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.entries[key]; !exists {
		for len(m.order) >= m.maxEntries {
			oldest := m.order[0]
			m.order = m.order[1:]
			delete(m.entries, oldest)
		}
		m.order = append(m.order, key)
	}
	m.entries[key] = cloneResult(result)
	return nil
}

// Len returns the number of cached results.
func (m *MemoryStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}

func (m *MemoryStore) Close() error { return nil }
