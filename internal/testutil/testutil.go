// Package testutil provides shared test helpers for setting up directory stores.
package testutil

import (
	"path/filepath"
	"testing"

	"github.com/starford/qcd/internal/store"
)

// TestStorePath returns a store file path inside a per-test temporary directory.
func TestStorePath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "qcd-test.db")
}

// TestStore opens a temporary store that is closed when the test ends.
func TestStore(t *testing.T) *store.DB {
	t.Helper()
	db, err := store.Open(TestStorePath(t))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

// Visit records n visits to path.
func Visit(t *testing.T, db store.DirectoryStore, path string, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		if err := db.AddVisit(path); err != nil {
			t.Fatalf("AddVisit(%q): %v", path, err)
		}
	}
}
