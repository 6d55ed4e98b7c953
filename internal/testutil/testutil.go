// Package testutil provides testing utilities for integration tests.
package testutil

import (
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"github.com/lumiere/lumiere/internal/storage"
)

// TestStore wraps a SQLite-backed store in a temp directory.
type TestStore struct {
	Store  *storage.SQLiteStore
	Path   string
	Logger zerolog.Logger
}

// NewTestStore creates a migrated SQLite store under t.TempDir. The
// directory is cleaned up automatically; the caller should defer Close to
// release the connection.
func NewTestStore(t *testing.T) *TestStore {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	logger := zerolog.New(zerolog.NewTestWriter(t)).Level(zerolog.DebugLevel)

	store, err := storage.OpenSQLite(dbPath)
	if err != nil {
		t.Fatalf("Failed to open test store: %v", err)
	}

	return &TestStore{
		Store:  store,
		Path:   dbPath,
		Logger: logger,
	}
}

// Close releases the store's database connection.
func (ts *TestStore) Close() {
	if ts.Store != nil {
		ts.Store.Close()
	}
}

// NewTestLogger creates a test logger that outputs to t.Log.
func NewTestLogger(t *testing.T) zerolog.Logger {
	t.Helper()
	return zerolog.New(zerolog.NewTestWriter(t)).Level(zerolog.DebugLevel)
}

// NopLogger returns a no-op logger for tests that don't need output.
func NopLogger() zerolog.Logger {
	return zerolog.Nop()
}
