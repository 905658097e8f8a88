package document

import (
	"context"

	"guardian/internal/domain/constants"
	domainerrors "guardian/internal/domain/errors"
	"guardian/internal/domain/entity"
	"guardian/internal/domain/repository"
	"guardian/internal/errors"
)

type authAttemptRepository struct {
	doc *document[entity.AuthAttemptRecord]
}

// NewAuthAttemptRepository stores the attempt record under kidmap_auth_attempts in the general store.
func NewAuthAttemptRepository(store repository.KeyValueStore) repository.AuthAttemptRepository {
	return &authAttemptRepository{doc: newDocument[entity.AuthAttemptRecord](store, constants.KeyAuthAttempts)}
}

func (r *authAttemptRepository) Get(ctx context.Context) (*entity.AuthAttemptRecord, error) {
	r.doc.mu.Lock()
	defer r.doc.mu.Unlock()

	record, found, err := r.doc.load(ctx)
	if err != nil || !found {
		return nil, err
	}

	return &record, nil
}

func (r *authAttemptRepository) Save(ctx context.Context, record *entity.AuthAttemptRecord) error {
	r.doc.mu.Lock()
	defer r.doc.mu.Unlock()

	return r.doc.save(ctx, *record)
}

func (r *authAttemptRepository) Delete(ctx context.Context) error {
	r.doc.mu.Lock()
	defer r.doc.mu.Unlock()

	return r.doc.remove(ctx)
}

type pinCredentialRepository struct {
	store repository.SecureStore
}

// NewPinCredentialRepository keeps the hash and salt as two secure entries.
func NewPinCredentialRepository(store repository.SecureStore) repository.PinCredentialRepository {
	return &pinCredentialRepository{store: store}
}

func (r *pinCredentialRepository) Get(ctx context.Context) (*entity.PinCredential, error) {
	hash, err := r.getSecure(ctx, constants.KeyPinHash)
	if err != nil || hash == "" {
		return nil, err
	}

	salt, err := r.getSecure(ctx, constants.KeyPinSalt)
	if err != nil || salt == "" {
		return nil, err
	}

	return &entity.PinCredential{Hash: hash, Salt: salt}, nil
}

// Save writes the salt before the hash.
func (r *pinCredentialRepository) Save(ctx context.Context, credential *entity.PinCredential) error {
	if err := r.store.SetSecure(ctx, constants.KeyPinSalt, credential.Salt); err != nil {
		return domainerrors.NewStorageError(err, "write pin salt")
	}
	if err := r.store.SetSecure(ctx, constants.KeyPinHash, credential.Hash); err != nil {
		return domainerrors.NewStorageError(err, "write pin hash")
	}

	return nil
}

func (r *pinCredentialRepository) getSecure(ctx context.Context, key string) (string, error) {
	value, err := r.store.GetSecure(ctx, key)
	if errors.Is(err, repository.ErrKeyNotFound) {
		return "", nil
	}
	if err != nil {
		return "", domainerrors.NewStorageError(err, "read "+key)
	}

	return value, nil
}
