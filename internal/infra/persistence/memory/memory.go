// Package memory provides an in-process key-value backend for tests and ephemeral runs.
package memory

import (
	"context"
	"slices"
	"sync"

	"guardian/internal/domain/repository"
)

// Backend keeps every namespace in a map guarded by one mutex.
type Backend struct {
	mu         sync.RWMutex
	namespaces map[string]map[string][]byte
}

// New creates an empty backend.
func New() *Backend {
	return &Backend{namespaces: make(map[string]map[string][]byte)}
}

// Get returns a copy of the stored value.
func (b *Backend) Get(_ context.Context, namespace, key string) ([]byte, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	value, ok := b.namespaces[namespace][key]
	if !ok {
		return nil, repository.ErrKeyNotFound
	}

	return slices.Clone(value), nil
}

// Set stores a copy of value.
func (b *Backend) Set(_ context.Context, namespace, key string, value []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	entries, ok := b.namespaces[namespace]
	if !ok {
		entries = make(map[string][]byte)
		b.namespaces[namespace] = entries
	}
	entries[key] = slices.Clone(value)

	return nil
}

// Delete removes key from namespace.
func (b *Backend) Delete(_ context.Context, namespace, key string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	delete(b.namespaces[namespace], key)

	return nil
}

// Snapshot returns every value of namespace. Used by tests to inspect what was written.
func (b *Backend) Snapshot(namespace string) map[string][]byte {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make(map[string][]byte, len(b.namespaces[namespace]))
	for key, value := range b.namespaces[namespace] {
		out[key] = slices.Clone(value)
	}

	return out
}

// Close is a no-op.
func (b *Backend) Close() error {
	return nil
}
