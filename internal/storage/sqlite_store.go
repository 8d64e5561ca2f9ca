package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/goccy/go-json"
	_ "modernc.org/sqlite"

	"github.com/julianstephens/happyhour/internal/models"
)

const schema = `CREATE TABLE IF NOT EXISTS favorites (
	key TEXT PRIMARY KEY,
	tags TEXT NOT NULL
)`

// SQLiteStore opens its database lazily; mu guards the handle.
type SQLiteStore struct {
	mu   sync.Mutex
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		path: path,
	}
}

func (s *SQLiteStore) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.init()
}

func (s *SQLiteStore) init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create favorites directory: %w", err)
	}
	return s.open()
}

func (s *SQLiteStore) open() error {
	if s.db != nil {
		return nil
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return fmt.Errorf("failed to create favorites table: %w", err)
	}
	s.db = db
	return nil
}

func (s *SQLiteStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}

func (s *SQLiteStore) Kind() string {
	return KindSQLite
}

func (s *SQLiteStore) GetDB() *sql.DB {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db
}

func (s *SQLiteStore) Load() (models.Favorites, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		if _, err := os.Stat(s.path); os.IsNotExist(err) {
			return models.Favorites{}, ErrNotFound
		}
		if err := s.open(); err != nil {
			return models.Favorites{}, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
	}

	rows, err := s.db.Query("SELECT key, tags FROM favorites")
	if err != nil {
		return models.Favorites{}, fmt.Errorf("failed to query favorites: %w", err)
	}
	defer rows.Close()

	favs := models.Favorites{}
	for rows.Next() {
		var key, tagsJSON string
		if err := rows.Scan(&key, &tagsJSON); err != nil {
			return models.Favorites{}, fmt.Errorf("failed to scan favorite: %w", err)
		}
		var tags []string
		if err := json.Unmarshal([]byte(tagsJSON), &tags); err != nil {
			tags = nil
		}
		favs[key] = models.FavoriteEntry{Tags: tags}.Normalized()
	}
	if err := rows.Err(); err != nil {
		return models.Favorites{}, fmt.Errorf("failed to read favorites: %w", err)
	}
	return favs, nil
}

// Save replaces the whole table in one transaction.
func (s *SQLiteStore) Save(favs models.Favorites) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		if err := s.init(); err != nil {
			return err
		}
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM favorites"); err != nil {
		return fmt.Errorf("failed to clear favorites: %w", err)
	}

	stmt, err := tx.Prepare("INSERT INTO favorites (key, tags) VALUES (?, ?)")
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, key := range favs.Keys() {
		tags, err := json.Marshal(favs[key].Normalized().Tags)
		if err != nil {
			return fmt.Errorf("failed to serialize tags for %s: %w", key, err)
		}
		if _, err := stmt.Exec(key, string(tags)); err != nil {
			return fmt.Errorf("failed to insert favorite %s: %w", key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit favorites: %w", err)
	}
	return nil
}
