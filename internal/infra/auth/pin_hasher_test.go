package auth

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"guardian/config"
)

func TestPinHasher_NewSalt(t *testing.T) {
	hasher := NewPinHasher(nil)

	salt, err := hasher.NewSalt()
	require.NoError(t, err)

	raw, err := hex.DecodeString(salt)
	require.NoError(t, err)
	assert.Len(t, raw, 32)

	other, err := hasher.NewSalt()
	require.NoError(t, err)
	assert.NotEqual(t, salt, other)
}

func TestPinHasher_CustomSaltLength(t *testing.T) {
	hasher := NewPinHasher(&config.Config{Auth: &config.AuthConfig{SaltLength: 16}})

	salt, err := hasher.NewSalt()
	require.NoError(t, err)
	assert.Len(t, salt, 32)
}

func TestPinHasher_HashIsSHA256OfPinAndSalt(t *testing.T) {
	hasher := NewPinHasher(nil)

	// sha256("1234abcd")
	hash, err := hasher.Hash("1234", "abcd")
	require.NoError(t, err)
	assert.Equal(t, "221b37fcdb52d0f7c39bbd0be211db0e1c00ca5fbecd5788780463026c6b964b", hash)
}

func TestPinHasher_Check(t *testing.T) {
	hasher := NewPinHasher(nil)

	salt, err := hasher.NewSalt()
	require.NoError(t, err)
	hash, err := hasher.Hash("1234", salt)
	require.NoError(t, err)

	assert.True(t, hasher.Check("1234", salt, hash))
	assert.False(t, hasher.Check("4321", salt, hash))
	assert.False(t, hasher.Check("1234", "other-salt", hash))
	assert.False(t, hasher.Check("", salt, hash))
	assert.False(t, hasher.Check("1234", salt, "invalid_hash"))
}
