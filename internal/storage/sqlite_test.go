package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "nested", "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "sub", "dir", "test.db")

	store, err := Open(dbPath)
	require.NoError(t, err)
	defer store.Close()

	// Parent directories and the file are created.
	_, err = os.Stat(dbPath)
	assert.NoError(t, err)
}

func TestStoreReopenKeepsPacks(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	require.NoError(t, err)
	_, err = store.ImportPack("classic", "levels", []string{"#@$.#"})
	require.NoError(t, err)
	require.NoError(t, store.Close())

	store, err = Open(dbPath)
	require.NoError(t, err)
	defer store.Close()

	defs, err := store.PackLevels("classic")
	require.NoError(t, err)
	assert.Equal(t, []string{"#@$.#"}, defs)
}

func TestImportAndReadPack(t *testing.T) {
	store := openTestStore(t)
	defs := []string{"#####|#@$.#|#####", "######|#@ $.#|######", "@*"}

	pack, err := store.ImportPack("classic", "/tmp/levels", defs)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, pack.ID)
	assert.Equal(t, "classic", pack.Name)
	assert.Equal(t, "/tmp/levels", pack.Source)
	assert.Equal(t, 3, pack.Levels)

	got, err := store.PackLevels("classic")
	require.NoError(t, err)
	assert.Equal(t, defs, got)
}

func TestImportReplacesPack(t *testing.T) {
	store := openTestStore(t)

	first, err := store.ImportPack("classic", "a", []string{"one", "two", "three"})
	require.NoError(t, err)
	second, err := store.ImportPack("classic", "b", []string{"four"})
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)

	packs, err := store.Packs()
	require.NoError(t, err)
	require.Len(t, packs, 1)
	assert.Equal(t, "b", packs[0].Source)
	assert.Equal(t, 1, packs[0].Levels)

	defs, err := store.PackLevels("classic")
	require.NoError(t, err)
	assert.Equal(t, []string{"four"}, defs)
}

func TestImportInvalidPack(t *testing.T) {
	store := openTestStore(t)

	_, err := store.ImportPack("  ", "x", []string{"@"})
	assert.ErrorIs(t, err, ErrInvalidPack)

	_, err = store.ImportPack("empty", "x", nil)
	assert.ErrorIs(t, err, ErrInvalidPack)

	packs, err := store.Packs()
	require.NoError(t, err)
	assert.Empty(t, packs)
}

func TestPacksSortedByName(t *testing.T) {
	store := openTestStore(t)

	for _, name := range []string{"zeta", "alpha", "mid"} {
		_, err := store.ImportPack(name, "", []string{"@"})
		require.NoError(t, err)
	}

	packs, err := store.Packs()
	require.NoError(t, err)
	require.Len(t, packs, 3)
	assert.Equal(t, "alpha", packs[0].Name)
	assert.Equal(t, "mid", packs[1].Name)
	assert.Equal(t, "zeta", packs[2].Name)
}

func TestDeletePack(t *testing.T) {
	store := openTestStore(t)

	_, err := store.ImportPack("gone", "", []string{"@", "@ "})
	require.NoError(t, err)
	_, err = store.ImportPack("kept", "", []string{"@."})
	require.NoError(t, err)

	require.NoError(t, store.DeletePack("gone"))

	_, err = store.PackLevels("gone")
	assert.ErrorIs(t, err, ErrPackNotFound)
	assert.ErrorIs(t, store.DeletePack("gone"), ErrPackNotFound)

	defs, err := store.PackLevels("kept")
	require.NoError(t, err)
	assert.Equal(t, []string{"@."}, defs)
}

func TestPackNotFound(t *testing.T) {
	store := openTestStore(t)

	_, err := store.Pack("nope")
	assert.ErrorIs(t, err, ErrPackNotFound)
}
