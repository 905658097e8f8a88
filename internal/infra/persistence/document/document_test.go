package document

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"guardian/internal/domain/constants"
	"guardian/internal/domain/entity"
	domainerrors "guardian/internal/domain/errors"
	"guardian/internal/domain/repository"
	"guardian/internal/errors"
	"guardian/internal/infra/persistence/kv"
	"guardian/internal/infra/persistence/memory"
	mockrepository "guardian/internal/mocks/repository"
)

func newStores(t *testing.T) (*memory.Backend, repository.KeyValueStore, repository.SecureStore) {
	t.Helper()

	backend := memory.New()
	secure, err := kv.NewSecureStore(backend, make([]byte, 32))
	require.NoError(t, err)

	return backend, kv.NewKeyValueStore(backend), secure
}

func TestSettingsRepository_DefaultsWhenMissing(t *testing.T) {
	_, store, _ := newStores(t)
	repo := NewSettingsRepository(store)

	settings, err := repo.Get(context.Background())
	require.NoError(t, err)
	assert.True(t, settings.SafeZoneAlerts)
	assert.True(t, settings.RequirePinForParentMode)
	require.Len(t, settings.EmergencyContacts, 1)
	assert.Equal(t, "911", settings.EmergencyContacts[0].Phone)
}

func TestSettingsRepository_UpdatePersists(t *testing.T) {
	_, store, _ := newStores(t)
	repo := NewSettingsRepository(store)
	ctx := context.Background()

	_, err := repo.Update(ctx, func(s *entity.ParentalSettings) error {
		s.SafeZoneAlerts = false
		return nil
	})
	require.NoError(t, err)

	settings, err := NewSettingsRepository(store).Get(ctx)
	require.NoError(t, err)
	assert.False(t, settings.SafeZoneAlerts)
}

func TestDocument_UpdateErrorLeavesValue(t *testing.T) {
	_, store, _ := newStores(t)
	repo := NewSafeZoneRepository(store)
	ctx := context.Background()

	_, err := repo.Update(ctx, func(zones []entity.SafeZone) ([]entity.SafeZone, error) {
		return append(zones, entity.SafeZone{ID: "home"}), nil
	})
	require.NoError(t, err)

	boom := errors.New("boom")
	_, err = repo.Update(ctx, func(zones []entity.SafeZone) ([]entity.SafeZone, error) {
		return nil, boom
	})
	assert.ErrorIs(t, err, boom)

	zones, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, zones, 1)
	assert.Equal(t, "home", zones[0].ID)
}

func TestDocument_ConcurrentUpdatesAreSerialized(t *testing.T) {
	_, store, _ := newStores(t)
	repo := NewDashboardRepository(store)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.Update(ctx, func(d *entity.DashboardData) error {
				d.PrependActivity(entity.SafeZoneActivity{ID: "a"}, 50)
				return nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	dashboard, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Len(t, dashboard.SafeZoneActivity, 20)
}

func TestAuthAttemptRepository(t *testing.T) {
	backend, store, _ := newStores(t)
	repo := NewAuthAttemptRepository(store)
	ctx := context.Background()

	record, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, record)

	lockedUntil := time.Date(2026, 1, 1, 12, 15, 0, 0, time.UTC)
	require.NoError(t, repo.Save(ctx, &entity.AuthAttemptRecord{Count: 5, LockedUntil: &lockedUntil}))

	record, err = repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, record.Count)
	assert.True(t, record.LockedUntil.Equal(lockedUntil))

	require.NoError(t, backend.Set(ctx, constants.NamespaceGeneral, constants.KeyAuthAttempts, []byte("{not json")))
	_, err = repo.Get(ctx)
	assert.ErrorIs(t, err, repository.ErrCorruptRecord)

	require.NoError(t, repo.Delete(ctx))
	record, err = repo.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, record)
}

func TestPinCredentialRepository(t *testing.T) {
	backend, _, secure := newStores(t)
	repo := NewPinCredentialRepository(secure)
	ctx := context.Background()

	credential, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, credential)

	require.NoError(t, repo.Save(ctx, &entity.PinCredential{Hash: "h", Salt: "s"}))

	credential, err = repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, &entity.PinCredential{Hash: "h", Salt: "s"}, credential)

	assert.Empty(t, backend.Snapshot(constants.NamespaceGeneral))
	assert.Len(t, backend.Snapshot(constants.NamespaceSecure), 2)
}

func TestSafeZoneRepository_StoreFailures(t *testing.T) {
	ctx := context.Background()
	diskErr := errors.New("disk full")

	t.Run("read failure", func(t *testing.T) {
		store := mockrepository.NewMockKeyValueStore(t)
		store.EXPECT().Get(mock.Anything, constants.KeySafeZones).Return(nil, diskErr)

		_, err := NewSafeZoneRepository(store).List(ctx)

		var storageErr *domainerrors.StorageError
		require.ErrorAs(t, err, &storageErr)
		assert.ErrorIs(t, err, diskErr)
	})

	t.Run("write failure keeps nothing", func(t *testing.T) {
		store := mockrepository.NewMockKeyValueStore(t)
		store.EXPECT().Get(mock.Anything, constants.KeySafeZones).Return(nil, repository.ErrKeyNotFound)
		store.EXPECT().Set(mock.Anything, constants.KeySafeZones, mock.Anything).Return(diskErr)

		zones, err := NewSafeZoneRepository(store).Update(ctx, func(zones []entity.SafeZone) ([]entity.SafeZone, error) {
			return append(zones, entity.SafeZone{ID: "zone-1"}), nil
		})

		assert.ErrorIs(t, err, diskErr)
		assert.Nil(t, zones)
	})

	t.Run("mutation error skips the write", func(t *testing.T) {
		store := mockrepository.NewMockKeyValueStore(t)
		store.EXPECT().Get(mock.Anything, constants.KeySafeZones).Return([]byte(`[]`), nil)

		_, err := NewSafeZoneRepository(store).Update(ctx, func([]entity.SafeZone) ([]entity.SafeZone, error) {
			return nil, domainerrors.ErrSafeZoneNotFound
		})

		assert.ErrorIs(t, err, domainerrors.ErrSafeZoneNotFound)
	})
}
