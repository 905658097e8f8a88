package kv

import (
	"context"
	"crypto/cipher"
	"crypto/rand"
	"encoding/hex"
	"log/slog"

	"golang.org/x/crypto/chacha20poly1305"

	"guardian/config"
	"guardian/internal/domain/constants"
	"guardian/internal/domain/repository"
	"guardian/internal/errors"
)

// ErrSecureKeyRequired is returned when a persistent backend is configured without storage.secureKey.
var ErrSecureKeyRequired = errors.New("storage.secureKey is required for persistent storage")

// sealedStore encrypts every value with XChaCha20-Poly1305 before it reaches the backend.
// The key name is bound as associated data, so a value copied to another key fails to open.
type sealedStore struct {
	backend Backend
	aead    cipher.AEAD
}

// NewSecureStore seals values of the secure namespace with key, which must be 32 bytes.
func NewSecureStore(backend Backend, key []byte) (repository.SecureStore, error) {
	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create secure store cipher")
	}

	return &sealedStore{backend: backend, aead: aead}, nil
}

// NewSecureStoreFromConfig decodes storage.secureKey. The in-memory driver falls back to a
// random per-process key.
func NewSecureStoreFromConfig(cfg *config.Config, backend Backend, logger *slog.Logger) (repository.SecureStore, error) {
	var encoded, driver string
	if cfg.Storage != nil {
		encoded, driver = cfg.Storage.SecureKey, cfg.Storage.Driver
	}

	if encoded == "" {
		if driver != "" && driver != config.StorageDriverMemory {
			return nil, ErrSecureKeyRequired
		}
		key := make([]byte, chacha20poly1305.KeySize)
		if _, err := rand.Read(key); err != nil {
			return nil, errors.Wrap(err, "failed to generate secure store key")
		}
		logger.Warn("No secure store key configured, using an ephemeral key")

		return NewSecureStore(backend, key)
	}

	key, err := hex.DecodeString(encoded)
	if err != nil {
		return nil, errors.Wrap(err, "storage.secureKey must be hex encoded")
	}

	return NewSecureStore(backend, key)
}

func (s *sealedStore) GetSecure(ctx context.Context, key string) (string, error) {
	sealed, err := s.backend.Get(ctx, constants.NamespaceSecure, key)
	if err != nil {
		return "", err
	}

	nonceSize := s.aead.NonceSize()
	if len(sealed) < nonceSize {
		return "", errors.Wrapf(repository.ErrCorruptRecord, "sealed value of %s is truncated", key)
	}

	plain, err := s.aead.Open(nil, sealed[:nonceSize], sealed[nonceSize:], []byte(key))
	if err != nil {
		return "", errors.Wrapf(repository.ErrCorruptRecord, "failed to open sealed value of %s", key)
	}

	return string(plain), nil
}

func (s *sealedStore) SetSecure(ctx context.Context, key, value string) error {
	nonce := make([]byte, s.aead.NonceSize(), s.aead.NonceSize()+len(value)+s.aead.Overhead())
	if _, err := rand.Read(nonce); err != nil {
		return errors.Wrap(err, "failed to generate nonce")
	}

	sealed := s.aead.Seal(nonce, nonce, []byte(value), []byte(key))

	return s.backend.Set(ctx, constants.NamespaceSecure, key, sealed)
}

func (s *sealedStore) DeleteSecure(ctx context.Context, key string) error {
	return s.backend.Delete(ctx, constants.NamespaceSecure, key)
}
