package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"guardian/internal/domain/constants"
)

func TestBackend_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "guardian.db")

	backend, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, backend.InitSchema(ctx))
	require.NoError(t, backend.Set(ctx, constants.NamespaceGeneral, constants.KeySafeZones, []byte(`[]`)))
	require.NoError(t, backend.Close())

	reopened, err := Open(path)
	require.NoError(t, err)
	defer reopened.Close()

	require.NoError(t, reopened.Ping(ctx))
	value, err := reopened.Get(ctx, constants.NamespaceGeneral, constants.KeySafeZones)
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(value))
}

func TestBackend_RejectsUnknownNamespace(t *testing.T) {
	backend, err := Open(filepath.Join(t.TempDir(), "guardian.db"))
	require.NoError(t, err)
	defer backend.Close()

	err = backend.Set(context.Background(), "users; DROP TABLE kv_entries", "k", []byte("v"))
	assert.Error(t, err)
}
