package storage

import (
	"errors"

	"github.com/julianstephens/happyhour/internal/models"
)

var (
	// ErrNotFound is returned by Load when nothing has been saved yet.
	ErrNotFound = errors.New("favorites store not found")
	// ErrMalformed is returned by Load when the stored data is not a key/entry mapping.
	ErrMalformed = errors.New("favorites store is malformed")
)

// Provider persists the favorites mapping. Load always returns a non-nil
// mapping, even alongside an error.
type Provider interface {
	// Lifecycle
	Init() error
	Close() error

	// Favorites
	Load() (models.Favorites, error)
	Save(models.Favorites) error

	// Utils
	GetConfigPath() string
	Kind() string
}
