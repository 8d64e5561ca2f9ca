package favorites

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julianstephens/happyhour/internal/backup"
	"github.com/julianstephens/happyhour/internal/models"
	"github.com/julianstephens/happyhour/internal/storage"
)

func TestKey(t *testing.T) {
	tests := []struct {
		group, name, want string
	}{
		{"Bellagio", "Lily Bar", "Bellagio::Lily Bar"},
		{"  Aria ", " Jing  ", "Aria::Jing"},
		{"", "", "::"},
		{"Casino", "", "Casino::"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Key(tt.group, tt.name))
	}
}

func TestMerge(t *testing.T) {
	existing := models.Favorites{"A::B": {Tags: []string{"x"}}}

	got := Merge(existing, []string{"A::B", "C::D"})
	assert.Equal(t, models.Favorites{
		"A::B": {Tags: []string{"x"}},
		"C::D": {Tags: []string{}},
	}, got)

	// input untouched
	assert.Equal(t, models.Favorites{"A::B": {Tags: []string{"x"}}}, existing)
}

func TestMerge_DropsUnselected(t *testing.T) {
	existing := models.Favorites{
		"A::B": {Tags: []string{"x"}},
		"C::D": {Tags: []string{"y"}},
	}
	got := Merge(existing, []string{"C::D"})
	assert.Equal(t, models.Favorites{"C::D": {Tags: []string{"y"}}}, got)

	assert.Empty(t, Merge(existing, nil))
	assert.NotNil(t, Merge(nil, nil))
}

func TestMerge_DoesNotAliasTags(t *testing.T) {
	existing := models.Favorites{"A::B": {Tags: []string{"x"}}}
	got := Merge(existing, []string{"A::B"})
	got["A::B"].Tags[0] = "changed"
	assert.Equal(t, "x", existing["A::B"].Tags[0])
}

func TestToggle(t *testing.T) {
	favs := models.Favorites{"A::B": {Tags: []string{"x"}}}

	added := Toggle(favs, "C::D")
	assert.True(t, added.Has("A::B"))
	assert.True(t, added.Has("C::D"))
	assert.Equal(t, []string{"x"}, added["A::B"].Tags)

	removed := Toggle(added, "A::B")
	assert.False(t, removed.Has("A::B"))
	assert.True(t, removed.Has("C::D"))
}

func TestAddRemove(t *testing.T) {
	favs := Add(models.Favorites{}, "A::B", "C::D")
	assert.Equal(t, []string{"A::B", "C::D"}, favs.Keys())

	favs = Remove(favs, "A::B", "missing")
	assert.Equal(t, []string{"C::D"}, favs.Keys())
}

func TestTagUntag(t *testing.T) {
	favs := models.Favorites{"A::B": {Tags: []string{}}}

	tagged, ok := Tag(favs, "A::B", "patio")
	require.True(t, ok)
	tagged, _ = Tag(tagged, "A::B", "patio")
	assert.Equal(t, []string{"patio"}, tagged["A::B"].Tags)
	assert.Empty(t, favs["A::B"].Tags)

	_, ok = Tag(favs, "C::D", "patio")
	assert.False(t, ok)

	untagged, ok := Untag(tagged, "A::B", "patio")
	require.True(t, ok)
	assert.Empty(t, untagged["A::B"].Tags)
	assert.Equal(t, []string{"patio"}, tagged["A::B"].Tags)
}

type failingProvider struct {
	storage.Provider
}

func (failingProvider) Save(models.Favorites) error { return errors.New("disk full") }
func (failingProvider) GetConfigPath() string       { return "/nowhere/favorites.json" }

func TestStore_SaveBacksUpPrevious(t *testing.T) {
	path := filepath.Join(t.TempDir(), "favorites.json")
	store := NewStore(storage.NewJSONStore(path), backup.NewManager(path))

	// first save: nothing to back up yet
	require.NoError(t, store.Save(models.Favorites{"A::B": {}}))
	mgr := backup.NewManager(path)
	backups, err := mgr.ListBackups()
	require.NoError(t, err)
	assert.Empty(t, backups)

	require.NoError(t, store.Save(models.Favorites{"C::D": {}}))
	backups, err = mgr.ListBackups()
	require.NoError(t, err)
	require.Len(t, backups, 1)

	data, err := os.ReadFile(backups[0].Path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "A::B")

	favs, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"C::D"}, favs.Keys())
}

func TestStore_LoadMissing(t *testing.T) {
	store := NewStore(storage.NewJSONStore(filepath.Join(t.TempDir(), "favorites.json")), nil)
	favs, err := store.Load()
	assert.ErrorIs(t, err, storage.ErrNotFound)
	assert.NotNil(t, favs)
	assert.Empty(t, favs)
}

func TestStore_SelectReturnsMergedOnFailure(t *testing.T) {
	store := NewStore(failingProvider{}, nil)

	merged, err := store.Select(models.Favorites{"A::B": {Tags: []string{"x"}}}, []string{"A::B", "C::D"})
	assert.Error(t, err)
	assert.Equal(t, []string{"A::B", "C::D"}, merged.Keys())
	assert.Equal(t, []string{"x"}, merged["A::B"].Tags)
}

func TestStore_ConcurrentSaves(t *testing.T) {
	tests := []struct {
		name     string
		provider func(path string) storage.Provider
		file     string
	}{
		{"json", func(p string) storage.Provider { return storage.NewJSONStore(p) }, "favorites.json"},
		{"sqlite", func(p string) storage.Provider { return storage.NewSQLiteStore(p) }, "favorites.db"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tt.file)
			store := NewStore(tt.provider(path), backup.NewManager(path))
			defer store.Close()

			const n = 16
			snapshots := make([]models.Favorites, n)
			for i := range snapshots {
				favs := models.Favorites{}
				for j := 0; j <= i; j++ {
					favs[fmt.Sprintf("Casino::Bar %02d", j)] = models.FavoriteEntry{Tags: []string{}}
				}
				snapshots[i] = favs
			}

			var wg sync.WaitGroup
			for _, favs := range snapshots {
				wg.Add(1)
				go func(favs models.Favorites) {
					defer wg.Done()
					assert.NoError(t, store.Save(favs))
				}(favs)
			}
			wg.Wait()

			// every save ran whole, so the store holds exactly one snapshot
			got, err := store.Load()
			require.NoError(t, err)
			assert.Contains(t, snapshots, got)

			last := models.Favorites{"Bellagio::Lily Bar": {Tags: []string{"late"}}}
			require.NoError(t, store.Save(last))
			got, err = store.Load()
			require.NoError(t, err)
			assert.Equal(t, last, got)
		})
	}
}
