// Package favorites holds the favorites-set rules shared by every writer:
// keys are "<group>::<name>", and each save replaces the whole mapping.
package favorites

import (
	"github.com/julianstephens/happyhour/internal/models"
)

// Key returns the favorite key for a venue.
func Key(group, name string) string {
	return models.FavoriteKey(group, name)
}

// Merge returns a new mapping containing exactly the selected keys. Retained
// keys keep their tags, new keys start with none. existing is not modified.
func Merge(existing models.Favorites, selected []string) models.Favorites {
	out := make(models.Favorites, len(selected))
	for _, key := range selected {
		if entry, ok := existing[key]; ok {
			out[key] = entry.Normalized()
			continue
		}
		out[key] = models.FavoriteEntry{Tags: []string{}}
	}
	return out
}

// Toggle adds key when absent and removes it when present.
func Toggle(existing models.Favorites, key string) models.Favorites {
	selected := make([]string, 0, len(existing)+1)
	found := false
	for _, k := range existing.Keys() {
		if k == key {
			found = true
			continue
		}
		selected = append(selected, k)
	}
	if !found {
		selected = append(selected, key)
	}
	return Merge(existing, selected)
}

// Add returns existing plus keys.
func Add(existing models.Favorites, keys ...string) models.Favorites {
	return Merge(existing, append(existing.Keys(), keys...))
}

// Remove returns existing without keys.
func Remove(existing models.Favorites, keys ...string) models.Favorites {
	drop := make(map[string]bool, len(keys))
	for _, k := range keys {
		drop[k] = true
	}
	selected := make([]string, 0, len(existing))
	for _, k := range existing.Keys() {
		if !drop[k] {
			selected = append(selected, k)
		}
	}
	return Merge(existing, selected)
}

// Tag adds tag to key's entry. Duplicates are ignored. The key must already be a favorite.
func Tag(existing models.Favorites, key, tag string) (models.Favorites, bool) {
	if !existing.Has(key) {
		return existing.Clone(), false
	}
	out := existing.Clone()
	entry := out[key]
	for _, t := range entry.Tags {
		if t == tag {
			return out, true
		}
	}
	entry.Tags = append(entry.Tags, tag)
	out[key] = entry
	return out, true
}

// Untag removes tag from key's entry.
func Untag(existing models.Favorites, key, tag string) (models.Favorites, bool) {
	if !existing.Has(key) {
		return existing.Clone(), false
	}
	out := existing.Clone()
	entry := out[key]
	tags := entry.Tags[:0]
	for _, t := range entry.Tags {
		if t != tag {
			tags = append(tags, t)
		}
	}
	entry.Tags = tags
	out[key] = entry
	return out, true
}
