// Package document implements the parental repositories as JSON documents in the key-value stores.
// Every write replaces the full document, matching the store-and-replace semantics of the mobile store.
package document

import (
	"context"
	"encoding/json"
	"sync"

	domainerrors "guardian/internal/domain/errors"
	"guardian/internal/domain/repository"
	"guardian/internal/errors"
)

// document is one JSON value stored under a fixed key. Update holds mu for the whole
// read-modify-write so concurrent writers in this process do not lose updates.
type document[T any] struct {
	store repository.KeyValueStore
	key   string

	mu sync.Mutex
}

func newDocument[T any](store repository.KeyValueStore, key string) *document[T] {
	return &document[T]{store: store, key: key}
}

// load decodes the document. found is false when the key is absent.
func (d *document[T]) load(ctx context.Context) (value T, found bool, err error) {
	raw, err := d.store.Get(ctx, d.key)
	if errors.Is(err, repository.ErrKeyNotFound) {
		return value, false, nil
	}
	if err != nil {
		return value, false, domainerrors.NewStorageError(err, "read "+d.key)
	}

	if err := json.Unmarshal(raw, &value); err != nil {
		return value, false, errors.Wrapf(repository.ErrCorruptRecord, "decode %s: %v", d.key, err)
	}

	return value, true, nil
}

func (d *document[T]) save(ctx context.Context, value T) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return errors.Wrapf(err, "encode %s", d.key)
	}

	if err := d.store.Set(ctx, d.key, raw); err != nil {
		return domainerrors.NewStorageError(err, "write "+d.key)
	}

	return nil
}

func (d *document[T]) remove(ctx context.Context) error {
	if err := d.store.Delete(ctx, d.key); err != nil {
		return domainerrors.NewStorageError(err, "delete "+d.key)
	}

	return nil
}

// get returns the stored value or fallback() when absent.
func (d *document[T]) get(ctx context.Context, fallback func() T) (T, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	value, found, err := d.load(ctx)
	if err != nil || found {
		return value, err
	}

	return fallback(), nil
}

// update applies fn to the current value (or fallback()) and writes the result.
func (d *document[T]) update(ctx context.Context, fallback func() T, fn func(T) (T, error)) (T, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	current, found, err := d.load(ctx)
	if err != nil {
		var zero T
		return zero, err
	}
	if !found {
		current = fallback()
	}

	next, err := fn(current)
	if err != nil {
		var zero T
		return zero, err
	}

	if err := d.save(ctx, next); err != nil {
		var zero T
		return zero, err
	}

	return next, nil
}

func emptySlice[T any]() []T {
	return []T{}
}
