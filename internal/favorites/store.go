package favorites

import (
	"errors"
	"sync"

	"github.com/julianstephens/happyhour/internal/backup"
	"github.com/julianstephens/happyhour/internal/logger"
	"github.com/julianstephens/happyhour/internal/models"
	"github.com/julianstephens/happyhour/internal/storage"
)

// Store wraps a storage.Provider with backup-before-save and logging. It is
// safe for concurrent use; saves run one at a time.
type Store struct {
	mu       sync.Mutex
	provider storage.Provider
	backups  *backup.Manager
}

// NewStore returns a Store over provider. backups may be nil to disable
// backups.
func NewStore(provider storage.Provider, backups *backup.Manager) *Store {
	return &Store{provider: provider, backups: backups}
}

// Provider returns the underlying storage backend.
func (s *Store) Provider() storage.Provider {
	return s.provider
}

// Load returns the saved favorites. The mapping is never nil. A missing
// store is logged at debug level and everything else at warn level.
func (s *Store) Load() (models.Favorites, error) {
	s.mu.Lock()
	favs, err := s.provider.Load()
	s.mu.Unlock()

	if favs == nil {
		favs = models.Favorites{}
	}
	switch {
	case err == nil:
	case errors.Is(err, storage.ErrNotFound):
		logger.Debug("no favorites saved yet", "path", s.provider.GetConfigPath())
	default:
		logger.Warn("failed to load favorites, continuing with none", "path", s.provider.GetConfigPath(), "error", err)
	}
	return favs, err
}

// Save replaces the stored favorites with favs.
func (s *Store) Save(favs models.Favorites) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.backups != nil && s.backups.SourceExists() {
		if path, err := s.backups.CreateBackup(); err != nil {
			logger.Warn("failed to back up favorites before save", "error", err)
		} else {
			logger.Debug("backed up favorites", "path", path)
		}
	}

	if err := s.provider.Save(favs); err != nil {
		logger.Error("failed to save favorites", "path", s.provider.GetConfigPath(), "error", err)
		return err
	}
	logger.Debug("saved favorites", "count", len(favs))
	return nil
}

// Select merges selected into the current favorites and saves the result.
// The merged mapping is returned even when saving fails.
func (s *Store) Select(current models.Favorites, selected []string) (models.Favorites, error) {
	merged := Merge(current, selected)
	return merged, s.Save(merged)
}

func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.provider.Close()
}
