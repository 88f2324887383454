// Package store provides the SQLite-backed directory visit store.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/starford/qcd/internal/apperr"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS dirs (
	path  TEXT PRIMARY KEY,
	count INTEGER NOT NULL DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_dirs_path ON dirs(path);
`

// DB wraps a sql.DB with directory store operations.
type DB struct {
	conn *sql.DB
	path string
}

// Open opens the store file, creating it and its schema when absent.
// Opening an existing file never drops or rewrites the table.
func Open(path string) (*DB, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("%w: store: create dir: %w", apperr.ErrStoreOpen, err)
		}
	}
	conn, err := sql.Open("sqlite3", path+"?_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("%w: store: open db: %w", apperr.ErrStoreOpen, err)
	}
	// One foreground process, one connection.
	conn.SetMaxOpenConns(1)
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("%w: store: ping: %w", apperr.ErrStoreOpen, err)
	}
	if _, err := conn.Exec(schemaSQL); err != nil {
		conn.Close()
		return nil, fmt.Errorf("%w: store: apply schema: %w", apperr.ErrStoreOpen, err)
	}
	return &DB{conn: conn, path: path}, nil
}

// Path returns the store file path.
func (db *DB) Path() string {
	return db.path
}

// Close closes the underlying database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

// Purge removes the store file at path. A missing file is not an error;
// the next Open recreates it.
func Purge(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("store: purge %s: %w", path, err)
	}
	return nil
}
