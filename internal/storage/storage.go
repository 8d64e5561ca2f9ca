package storage

import "fmt"

const (
	KindJSON   = "json"
	KindSQLite = "sqlite"
)

// New returns the Provider for the given backend kind.
func New(kind, path string) (Provider, error) {
	switch kind {
	case "", KindJSON:
		return NewJSONStore(path), nil
	case KindSQLite:
		return NewSQLiteStore(path), nil
	default:
		return nil, fmt.Errorf("unknown store type %q (want %s or %s)", kind, KindJSON, KindSQLite)
	}
}
