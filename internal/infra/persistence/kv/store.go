package kv

import (
	"context"

	"guardian/internal/domain/constants"
	"guardian/internal/domain/repository"
)

// generalStore maps the general purpose store onto the general namespace.
type generalStore struct {
	backend Backend
}

// NewKeyValueStore returns the general purpose store of backend.
func NewKeyValueStore(backend Backend) repository.KeyValueStore {
	return &generalStore{backend: backend}
}

func (s *generalStore) Get(ctx context.Context, key string) ([]byte, error) {
	return s.backend.Get(ctx, constants.NamespaceGeneral, key)
}

func (s *generalStore) Set(ctx context.Context, key string, value []byte) error {
	return s.backend.Set(ctx, constants.NamespaceGeneral, key, value)
}

func (s *generalStore) Delete(ctx context.Context, key string) error {
	return s.backend.Delete(ctx, constants.NamespaceGeneral, key)
}
