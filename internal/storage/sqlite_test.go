package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	store, err := OpenSQLite(path)
	require.NoError(t, err)
	defer store.Close()

	_, err = store.Get("missing")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, store.Set("user_behavior", `{"viewedItems":[]}`))

	value, err := store.Get("user_behavior")
	require.NoError(t, err)
	assert.Equal(t, `{"viewedItems":[]}`, value)

	// Overwrite replaces the whole blob
	require.NoError(t, store.Set("user_behavior", `{"viewedItems":["1"]}`))

	value, err = store.Get("user_behavior")
	require.NoError(t, err)
	assert.Equal(t, `{"viewedItems":["1"]}`, value)
}

func TestSQLiteStore_Remove(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	store, err := OpenSQLite(path)
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.Set("ab_tests", "[]"))
	require.NoError(t, store.Remove("ab_tests"))

	_, err = store.Get("ab_tests")
	assert.ErrorIs(t, err, ErrNotFound)

	// Removing a missing key is not an error
	assert.NoError(t, store.Remove("ab_tests"))
}

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore()

	_, err := store.Get("missing")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, store.Set("k", "v"))

	value, err := store.Get("k")
	require.NoError(t, err)
	assert.Equal(t, "v", value)

	require.NoError(t, store.Remove("k"))
	_, err = store.Get("k")
	assert.ErrorIs(t, err, ErrNotFound)
}
