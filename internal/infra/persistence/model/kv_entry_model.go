package model

import "time"

// KVEntryModel is the GORM-specific struct for a key-value namespace table.
// The same shape backs both the general and the sealed secure namespace.
type KVEntryModel struct {
	Key       string `gorm:"type:varchar(128);primaryKey"`
	Value     []byte `gorm:"type:bytea;not null"`
	UpdatedAt time.Time
}
