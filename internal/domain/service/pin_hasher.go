// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PinHasher defines the interface for PIN salting, hashing and verification.
// This abstracts the underlying digest and randomness source, keeping the domain pure.
type PinHasher interface {
	// NewSalt returns a fresh encoded salt built from cryptographically random bytes.
	NewSalt() (string, error)

	// Hash returns the encoded digest of pin combined with salt.
	Hash(pin, salt string) (string, error)

	// Check compares pin and salt against a stored hash in constant time.
	Check(pin, salt, hash string) bool
}
