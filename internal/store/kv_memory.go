package store

import (
	"context"
	"slices"
	"sync"
)

type memoryKeyValueStore struct {
	mu    sync.RWMutex
	items map[string][]byte
}

// NewMemoryKeyValueStore returns a process-local [KeyValueStore]. Values are
// copied on the way in and out.
func NewMemoryKeyValueStore() KeyValueStore {
	return &memoryKeyValueStore{items: make(map[string][]byte)}
}

func (m *memoryKeyValueStore) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.items[key]
	if !ok {
		return nil, ErrKeyNotFound
	}
	return slices.Clone(v), nil
}

func (m *memoryKeyValueStore) Set(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.items[key] = slices.Clone(value)
	return nil
}

func (m *memoryKeyValueStore) Delete(_ context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, k := range keys {
		delete(m.items, k)
	}
	return nil
}
