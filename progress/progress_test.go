package progress

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultsUnlockOnlyFirstLevel(t *testing.T) {
	p := Defaults(3)
	assert.True(t, p.IsUnlocked(1))
	assert.False(t, p.IsUnlocked(2))
	assert.False(t, p.IsUnlocked(3))
	assert.False(t, p.IsUnlocked(4))
}

func TestCompleteUnlocksNextAndKeepsBest(t *testing.T) {
	p := Defaults(3)

	p.Complete(1, 500, 3)
	assert.Equal(t, Record{Unlocked: true, Completed: true, BestScore: 500}, p[1])
	assert.True(t, p.IsUnlocked(2))

	p.Complete(1, 200, 3)
	assert.Equal(t, 500, p[1].BestScore)

	p.Complete(3, 50, 3)
	_, ok := p[4]
	assert.False(t, ok, "no level past the last")
}

func TestLoadFallsBackToDefaults(t *testing.T) {
	store := NewMemoryStore(nil)
	store.LoadErr = errors.New("disk on fire")

	p := Load(store, 2)
	assert.Equal(t, Defaults(2), p)
	assert.Equal(t, Defaults(2), Load(nil, 2))
}

func TestLoadNormalizes(t *testing.T) {
	store := NewMemoryStore(Progress{
		1: {Unlocked: false, Completed: true, BestScore: 10},
		2: {Unlocked: true, BestScore: -5},
		9: {Unlocked: true},
	})

	p := Load(store, 3)
	assert.True(t, p.IsUnlocked(1))
	assert.Equal(t, 10, p[1].BestScore)
	assert.Equal(t, 0, p[2].BestScore)
	assert.False(t, p.IsUnlocked(3))
	assert.NotContains(t, p, 9)
}

func TestSaveReportsFailure(t *testing.T) {
	store := NewMemoryStore(nil)
	store.SaveErr = errors.New("read-only")

	assert.Error(t, Save(store, Defaults(1)))
	assert.Equal(t, 0, store.Saves())

	store.SaveErr = nil
	require.NoError(t, Save(store, Defaults(1)))
	assert.Equal(t, 1, store.Saves())
	assert.NoError(t, Save(nil, Defaults(1)))
}

func TestMemoryStoreCopies(t *testing.T) {
	store := NewMemoryStore(nil)
	p := Defaults(2)
	require.NoError(t, store.Save(p))

	p.Complete(1, 99, 2)
	loaded, err := store.Load()
	require.NoError(t, err)
	assert.False(t, loaded[1].Completed, "later edits do not leak into the store")
}

func TestFileStoreRoundTrip(t *testing.T) {
	store := FileStore{Path: filepath.Join(t.TempDir(), "nested", "progress.json")}

	empty, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, empty)

	p := Defaults(3)
	p.Complete(1, 1234, 3)
	require.NoError(t, store.Save(p))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, p, loaded)
}

func TestFileStoreCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "progress.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := FileStore{Path: path}.Load()
	assert.Error(t, err)
	assert.Equal(t, Defaults(2), Load(FileStore{Path: path}, 2))
}

func TestUninitializedGdataStore(t *testing.T) {
	var store *GdataStore
	_, err := store.Load()
	assert.ErrorIs(t, err, ErrNotInitialized)
	assert.ErrorIs(t, store.Save(Defaults(1)), ErrNotInitialized)
	_, ok, err := store.LoadSettings()
	assert.False(t, ok)
	assert.ErrorIs(t, err, ErrNotInitialized)
}
