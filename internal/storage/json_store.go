package storage

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-json"

	"github.com/julianstephens/happyhour/internal/models"
)

type JSONStore struct {
	path string
}

func NewJSONStore(path string) *JSONStore {
	return &JSONStore{
		path: path,
	}
}

func (s *JSONStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create favorites directory: %w", err)
	}
	if _, err := os.Stat(s.path); err == nil {
		return nil
	}
	return s.Save(models.Favorites{})
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}

func (s *JSONStore) Kind() string {
	return KindJSON
}

func (s *JSONStore) Load() (models.Favorites, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return models.Favorites{}, ErrNotFound
		}
		return models.Favorites{}, fmt.Errorf("failed to read favorites: %w", err)
	}
	return decodeFavorites(data)
}

// decodeFavorites accepts any JSON object. Entries whose value is not a
// {"tags": [...]} object still count as favorites, with no tags.
func decodeFavorites(data []byte) (models.Favorites, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return models.Favorites{}, ErrMalformed
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &raw); err != nil {
		return models.Favorites{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	favs := make(models.Favorites, len(raw))
	for key, value := range raw {
		var entry models.FavoriteEntry
		if err := json.Unmarshal(value, &entry); err != nil {
			entry = models.FavoriteEntry{}
		}
		favs[key] = entry.Normalized()
	}
	return favs, nil
}

func (s *JSONStore) Save(favs models.Favorites) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("failed to create favorites directory: %w", err)
	}

	data, err := encodeFavorites(favs)
	if err != nil {
		return fmt.Errorf("failed to serialize favorites: %w", err)
	}

	return writeFileAtomic(s.path, data)
}

// writeFileAtomic writes data to a temp file next to path and renames it into
// place, so readers see either the old or the new contents.
func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to write favorites: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write favorites: %w", err)
	}
	if err := tmp.Chmod(0600); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write favorites: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write favorites: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to replace favorites: %w", err)
	}
	return nil
}

func encodeFavorites(favs models.Favorites) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(favs.Clone()); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
