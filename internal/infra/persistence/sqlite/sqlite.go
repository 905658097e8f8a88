// Package sqlite provides a key-value backend on an embedded SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"guardian/internal/domain/constants"
	"guardian/internal/domain/repository"
	"guardian/internal/errors"
)

// Backend stores each namespace in its own table of the database file.
type Backend struct {
	db *sql.DB

	mu     sync.Mutex
	tables map[string]bool
}

// Open initializes the database connection, creating directories as needed.
func Open(path string) (*Backend, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, errors.Wrap(err, "create db directory")
		}
	}

	dsn := fmt.Sprintf("file:%s?_pragma=foreign_keys(ON)&_pragma=journal_mode(WAL)", path)

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, errors.Wrap(err, "open sqlite")
	}

	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(0)
	db.SetConnMaxIdleTime(5 * time.Minute)

	return &Backend{db: db, tables: make(map[string]bool)}, nil
}

// InitSchema ensures the namespace tables exist.
func (b *Backend) InitSchema(ctx context.Context) error {
	for _, namespace := range []string{constants.NamespaceGeneral, constants.NamespaceSecure} {
		if err := b.ensureTable(ctx, namespace); err != nil {
			return err
		}
	}

	return nil
}

// Ping verifies the database is reachable.
func (b *Backend) Ping(ctx context.Context) error {
	return b.db.PingContext(ctx)
}

// Get returns the value stored under key.
func (b *Backend) Get(ctx context.Context, namespace, key string) ([]byte, error) {
	if err := b.ensureTable(ctx, namespace); err != nil {
		return nil, err
	}

	var value []byte
	query := fmt.Sprintf(`SELECT value FROM %s WHERE key = ?;`, namespace)
	err := b.db.QueryRowContext(ctx, query, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrKeyNotFound
	}
	if err != nil {
		return nil, errors.Wrapf(err, "get %s/%s", namespace, key)
	}

	return value, nil
}

// Set upserts value under key.
func (b *Backend) Set(ctx context.Context, namespace, key string, value []byte) error {
	if err := b.ensureTable(ctx, namespace); err != nil {
		return err
	}

	query := fmt.Sprintf(
		`INSERT INTO %s (key, value, updated_at) VALUES (?, ?, strftime('%%Y-%%m-%%dT%%H:%%M:%%fZ', 'now'))
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at;`,
		namespace,
	)
	if _, err := b.db.ExecContext(ctx, query, key, value); err != nil {
		return errors.Wrapf(err, "set %s/%s", namespace, key)
	}

	return nil
}

// Delete removes key. A missing key is not an error.
func (b *Backend) Delete(ctx context.Context, namespace, key string) error {
	if err := b.ensureTable(ctx, namespace); err != nil {
		return err
	}

	query := fmt.Sprintf(`DELETE FROM %s WHERE key = ?;`, namespace)
	if _, err := b.db.ExecContext(ctx, query, key); err != nil {
		return errors.Wrapf(err, "delete %s/%s", namespace, key)
	}

	return nil
}

// Close releases the underlying database handle.
func (b *Backend) Close() error {
	if b.db == nil {
		return nil
	}

	return b.db.Close()
}

// ensureTable creates the namespace table on first use. Namespaces are interpolated into
// SQL, so only the known namespaces are accepted.
func (b *Backend) ensureTable(ctx context.Context, namespace string) error {
	if namespace != constants.NamespaceGeneral && namespace != constants.NamespaceSecure {
		return errors.Errorf("unknown namespace %q", namespace)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.tables[namespace] {
		return nil
	}

	stmt := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
		key TEXT PRIMARY KEY,
		value BLOB NOT NULL,
		updated_at TEXT NOT NULL DEFAULT (strftime('%%Y-%%m-%%dT%%H:%%M:%%fZ', 'now'))
	);`, namespace)
	if _, err := b.db.ExecContext(ctx, stmt); err != nil {
		return errors.Wrap(err, "init schema")
	}
	b.tables[namespace] = true

	return nil
}
