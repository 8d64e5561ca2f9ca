package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julianstephens/happyhour/internal/models"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func TestJSONStore_LoadMissing(t *testing.T) {
	store := NewJSONStore(filepath.Join(t.TempDir(), "favorites.json"))

	favs, err := store.Load()
	assert.True(t, errors.Is(err, ErrNotFound))
	require.NotNil(t, favs)
	assert.Empty(t, favs)
}

func TestJSONStore_LoadMalformed(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"list", `[]`},
		{"list of keys", `["A::B"]`},
		{"scalar", `42`},
		{"string", `"A::B"`},
		{"null", `null`},
		{"empty file", ``},
		{"bad syntax", `{"A::B": {"tags": [}`},
		{"truncated", `{"A::B"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "favorites.json")
			writeFile(t, path, tt.content)

			favs, err := NewJSONStore(path).Load()
			assert.True(t, errors.Is(err, ErrMalformed), "got %v", err)
			require.NotNil(t, favs)
			assert.Empty(t, favs)
		})
	}
}

func TestJSONStore_LoadLenientEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "favorites.json")
	writeFile(t, path, `{
  "A::B": {"tags": ["late", "cheap"]},
  "C::D": {},
  "E::F": "yes",
  "G::H": {"tags": null},
  "I::J": {"tags": [1, 2]}
}`)

	favs, err := NewJSONStore(path).Load()
	require.NoError(t, err)

	assert.Len(t, favs, 5)
	assert.Equal(t, []string{"late", "cheap"}, favs["A::B"].Tags)
	for _, key := range []string{"C::D", "E::F", "G::H", "I::J"} {
		require.Contains(t, favs, key)
		assert.NotNil(t, favs[key].Tags, key)
		assert.Empty(t, favs[key].Tags, key)
	}
}

func TestJSONStore_SaveFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "favorites.json")
	store := NewJSONStore(path)

	err := store.Save(models.Favorites{
		"Zeta::Bar":         {Tags: nil},
		"Café Royal::<Tap>": {Tags: []string{"patio"}},
	})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	want := `{
  "Café Royal::<Tap>": {
    "tags": [
      "patio"
    ]
  },
  "Zeta::Bar": {
    "tags": []
  }
}
`
	assert.Equal(t, want, string(data))
}

func TestJSONStore_RoundTripOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "favorites.json")
	store := NewJSONStore(path)

	require.NoError(t, store.Save(models.Favorites{
		"A::B": {Tags: []string{"x"}},
		"C::D": {},
	}))
	require.NoError(t, store.Save(models.Favorites{
		"C::D": {},
	}))

	favs, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, models.Favorites{"C::D": {Tags: []string{}}}, favs)
}

func TestJSONStore_SaveReplacesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "favorites.json")
	writeFile(t, path, `{"A::B": {"tags": ["a much longer tag list than the next save writes"]}}`)

	store := NewJSONStore(path)
	require.NoError(t, store.Save(models.Favorites{"C::D": {}}))

	favs, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, models.Favorites{"C::D": {Tags: []string{}}}, favs)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	// no temp files left next to the store
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "favorites.json", entries[0].Name())
}

func TestJSONStore_Init(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg", "favorites.json")
	store := NewJSONStore(path)
	require.NoError(t, store.Init())

	favs, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, favs)

	// Init never clobbers existing favorites.
	require.NoError(t, store.Save(models.Favorites{"A::B": {}}))
	require.NoError(t, store.Init())
	favs, err = store.Load()
	require.NoError(t, err)
	assert.Len(t, favs, 1)
}

func TestNew(t *testing.T) {
	p, err := New("", "f.json")
	require.NoError(t, err)
	assert.Equal(t, KindJSON, p.Kind())

	p, err = New(KindSQLite, "f.db")
	require.NoError(t, err)
	assert.Equal(t, KindSQLite, p.Kind())
	assert.Equal(t, "f.db", p.GetConfigPath())

	_, err = New("postgres", "x")
	assert.Error(t, err)
}
