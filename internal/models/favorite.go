package models

import (
	"sort"
	"strings"
)

// FavoriteEntry is the metadata kept for a favorite venue.
type FavoriteEntry struct {
	Tags []string `json:"tags"`
}

// Normalized returns a copy whose tag list is never nil, so it serializes as [].
func (e FavoriteEntry) Normalized() FavoriteEntry {
	tags := make([]string, len(e.Tags))
	copy(tags, e.Tags)
	return FavoriteEntry{Tags: tags}
}

// Favorites maps favorite keys to their metadata.
type Favorites map[string]FavoriteEntry

// Has reports whether key is a favorite.
func (f Favorites) Has(key string) bool {
	_, ok := f[key]
	return ok
}

// Keys returns the favorite keys in sorted order.
func (f Favorites) Keys() []string {
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Clone returns a deep copy with normalized entries.
func (f Favorites) Clone() Favorites {
	out := make(Favorites, len(f))
	for k, v := range f {
		out[k] = v.Normalized()
	}
	return out
}

// SplitFavoriteKey splits a key into venue group and name. Keys without a
// separator are treated as a bare venue name.
func SplitFavoriteKey(key string) (group, name string) {
	group, name, ok := strings.Cut(key, FavoriteKeySeparator)
	if !ok {
		return "", key
	}
	return group, name
}
