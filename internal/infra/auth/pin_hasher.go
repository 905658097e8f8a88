// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"

	"guardian/config"
	"guardian/internal/domain/service"
	"guardian/internal/errors"
)

// sha256Hasher is a concrete implementation of the PinHasher interface.
// The digest is hex(SHA-256(pin + salt)) so credentials written by the mobile app stay valid.
type sha256Hasher struct {
	saltLength int // Number of random bytes in a salt before hex encoding.
}

// NewPinHasher is the constructor for sha256Hasher.
// It returns the implementation as a service.PinHasher interface.
func NewPinHasher(cfg *config.Config) service.PinHasher {
	saltLength := config.DefaultAuthConfig().SaltLength
	if cfg != nil && cfg.Auth != nil && cfg.Auth.SaltLength > 0 {
		saltLength = cfg.Auth.SaltLength
	}

	return &sha256Hasher{saltLength: saltLength}
}

// NewSalt reads saltLength bytes from the OS CSPRNG.
func (h *sha256Hasher) NewSalt() (string, error) {
	buf := make([]byte, h.saltLength)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "failed to read random salt")
	}

	return hex.EncodeToString(buf), nil
}

// Hash returns the hex encoded digest of pin followed by salt.
func (h *sha256Hasher) Hash(pin, salt string) (string, error) {
	sum := sha256.Sum256([]byte(pin + salt))

	return hex.EncodeToString(sum[:]), nil
}

// Check recomputes the digest and compares it to hash in constant time.
func (h *sha256Hasher) Check(pin, salt, hash string) bool {
	computed, err := h.Hash(pin, salt)
	if err != nil {
		return false
	}

	return subtle.ConstantTimeCompare([]byte(computed), []byte(hash)) == 1
}
