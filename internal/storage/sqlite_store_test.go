package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/julianstephens/happyhour/internal/models"
)

func setupTestSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store := NewSQLiteStore(filepath.Join(t.TempDir(), "favorites.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSQLiteStore_LoadMissingDoesNotCreate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "favorites.db")
	store := NewSQLiteStore(path)
	defer store.Close()

	favs, err := store.Load()
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("Load() error = %v, want ErrNotFound", err)
	}
	if favs == nil || len(favs) != 0 {
		t.Errorf("Load() = %v, want empty non-nil mapping", favs)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("Load() created the database file")
	}
}

func TestSQLiteStore_SaveAndLoad(t *testing.T) {
	store := setupTestSQLiteStore(t)

	want := models.Favorites{
		"A::B": {Tags: []string{"x", "y"}},
		"C::D": {Tags: nil},
	}
	if err := store.Save(want); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("Load() returned %d favorites, want 2", len(got))
	}
	if tags := got["A::B"].Tags; len(tags) != 2 || tags[0] != "x" || tags[1] != "y" {
		t.Errorf("A::B tags = %v, want [x y]", tags)
	}
	if tags := got["C::D"].Tags; tags == nil || len(tags) != 0 {
		t.Errorf("C::D tags = %v, want empty non-nil", tags)
	}
}

func TestSQLiteStore_SaveReplacesAll(t *testing.T) {
	store := setupTestSQLiteStore(t)

	if err := store.Save(models.Favorites{"A::B": {}, "C::D": {}}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if err := store.Save(models.Favorites{"E::F": {}}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(got) != 1 || !got.Has("E::F") {
		t.Errorf("Load() = %v, want only E::F", got)
	}
}

func TestSQLiteStore_BadTagsAreEmpty(t *testing.T) {
	store := setupTestSQLiteStore(t)

	if _, err := store.GetDB().Exec("INSERT INTO favorites (key, tags) VALUES (?, ?)", "A::B", "not json"); err != nil {
		t.Fatalf("failed to insert row: %v", err)
	}

	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !got.Has("A::B") || len(got["A::B"].Tags) != 0 {
		t.Errorf("Load() = %v, want A::B with no tags", got)
	}
}

func TestSQLiteStore_ReopenPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "favorites.db")

	first := NewSQLiteStore(path)
	if err := first.Save(models.Favorites{"A::B": {Tags: []string{"x"}}}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	first.Close()

	second := NewSQLiteStore(path)
	defer second.Close()
	got, err := second.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !got.Has("A::B") {
		t.Errorf("Load() = %v, want A::B", got)
	}
}
