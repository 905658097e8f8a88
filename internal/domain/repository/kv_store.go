// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by a store when the key has never been written or was deleted.
var ErrKeyNotFound = errors.New("key not found")

// KeyValueStore is the general purpose persisted store. Values are opaque JSON documents.
type KeyValueStore interface {
	// Get returns the value stored under key, or ErrKeyNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set replaces the value stored under key.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}

// SecureStore holds secrets such as the PIN hash and salt. Implementations must protect
// values at rest; it is never backed by the same namespace as KeyValueStore.
type SecureStore interface {
	// GetSecure returns the secret stored under key, or ErrKeyNotFound.
	GetSecure(ctx context.Context, key string) (string, error)

	// SetSecure replaces the secret stored under key.
	SetSecure(ctx context.Context, key, value string) error

	// DeleteSecure removes key. Deleting a missing key is not an error.
	DeleteSecure(ctx context.Context, key string) error
}
