package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *SQLiteBackend {
	t.Helper()
	backend, err := OpenSQLite(filepath.Join(t.TempDir(), "records.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = backend.Close() })
	return backend
}

func TestSQLiteSetGetDelete(t *testing.T) {
	backend := openTestDB(t)

	_, ok := backend.Get(KeyProfile)
	assert.False(t, ok)

	require.NoError(t, backend.Set(KeyProfile, `{"name":"a"}`))
	v, ok := backend.Get(KeyProfile)
	require.True(t, ok)
	assert.Equal(t, `{"name":"a"}`, v)

	// Upsert overwrites.
	require.NoError(t, backend.Set(KeyProfile, `{"name":"b"}`))
	v, _ = backend.Get(KeyProfile)
	assert.Equal(t, `{"name":"b"}`, v)

	require.NoError(t, backend.Delete(KeyProfile))
	_, ok = backend.Get(KeyProfile)
	assert.False(t, ok)

	// Deleting a missing key is not an error.
	require.NoError(t, backend.Delete(KeyProfile))
}

func TestSQLiteKeysSorted(t *testing.T) {
	backend := openTestDB(t)

	require.NoError(t, backend.Set(KeyTasbeeh, "1"))
	require.NoError(t, backend.Set(KeyBudget, "2"))
	require.NoError(t, backend.Set(KeyProfile, "3"))

	keys, err := backend.Keys()
	require.NoError(t, err)
	assert.Equal(t, []string{KeyBudget, KeyProfile, KeyTasbeeh}, keys)
}

func TestSQLitePersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.db")

	first, err := OpenSQLite(path)
	require.NoError(t, err)
	require.NoError(t, first.Set(KeySettings, `{"dhikrEnabled":false}`))
	require.NoError(t, first.Close())

	second, err := OpenSQLite(path)
	require.NoError(t, err)
	defer second.Close()

	v, ok := second.Get(KeySettings)
	require.True(t, ok)
	assert.Equal(t, `{"dhikrEnabled":false}`, v)
}

func TestSQLiteCreatesMissingDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "records.db")

	backend, err := OpenSQLite(path)
	require.NoError(t, err)
	defer backend.Close()

	require.NoError(t, backend.Set(KeyProfile, "1"))
}
