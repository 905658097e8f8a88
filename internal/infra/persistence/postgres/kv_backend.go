package postgres

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"guardian/internal/domain/constants"
	"guardian/internal/domain/repository"
	"guardian/internal/errors"
	"guardian/internal/infra/persistence/model"
)

// Backend stores each namespace in its own table.
type Backend struct {
	db *gorm.DB
}

// NewBackend wraps an open GORM connection.
func NewBackend(db *gorm.DB) *Backend {
	return &Backend{db: db}
}

// Migrate creates the namespace tables.
func (b *Backend) Migrate(ctx context.Context) error {
	for _, namespace := range []string{constants.NamespaceGeneral, constants.NamespaceSecure} {
		if err := b.db.WithContext(ctx).Table(namespace).AutoMigrate(&model.KVEntryModel{}); err != nil {
			return errors.Wrapf(err, "migrate %s", namespace)
		}
	}

	return nil
}

// Get returns the value stored under key.
func (b *Backend) Get(ctx context.Context, namespace, key string) ([]byte, error) {
	var entry model.KVEntryModel
	err := b.db.WithContext(ctx).Table(namespace).Where("key = ?", key).Take(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repository.ErrKeyNotFound
	}
	if err != nil {
		return nil, errors.Wrapf(err, "get %s/%s", namespace, key)
	}

	return entry.Value, nil
}

// Set upserts value under key.
func (b *Backend) Set(ctx context.Context, namespace, key string, value []byte) error {
	entry := model.KVEntryModel{Key: key, Value: value, UpdatedAt: time.Now().UTC()}
	err := b.db.WithContext(ctx).Table(namespace).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error
	if err != nil {
		return errors.Wrapf(err, "set %s/%s", namespace, key)
	}

	return nil
}

// Delete removes key. A missing key is not an error.
func (b *Backend) Delete(ctx context.Context, namespace, key string) error {
	err := b.db.WithContext(ctx).Table(namespace).Where("key = ?", key).Delete(&model.KVEntryModel{}).Error
	if err != nil {
		return errors.Wrapf(err, "delete %s/%s", namespace, key)
	}

	return nil
}

// Close is a no-op; the connection pool is closed by the fx lifecycle.
func (b *Backend) Close() error {
	return nil
}
