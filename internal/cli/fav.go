package cli

import (
	"fmt"
	"strings"

	"github.com/goccy/go-json"

	"github.com/julianstephens/happyhour/internal/favorites"
	"github.com/julianstephens/happyhour/internal/models"
	"github.com/julianstephens/happyhour/internal/render"
)

type FavCmd struct {
	List   FavListCmd   `cmd:"" help:"List saved favorites." default:"1"`
	Add    FavAddCmd    `cmd:"" help:"Mark venues as favorites."`
	Remove FavRemoveCmd `cmd:"" help:"Unmark favorites."`
	Tag    FavTagCmd    `cmd:"" help:"Add a tag to a favorite."`
	Untag  FavUntagCmd  `cmd:"" help:"Remove a tag from a favorite."`
}

// parseKey validates a "Casino::Restaurant" argument.
func parseKey(arg string) (string, error) {
	group, name, ok := strings.Cut(arg, models.FavoriteKeySeparator)
	if !ok {
		return "", fmt.Errorf("invalid favorite %q: expected \"Casino%sRestaurant\"", arg, models.FavoriteKeySeparator)
	}
	return favorites.Key(group, name), nil
}

func parseKeys(args []string) ([]string, error) {
	keys := make([]string, 0, len(args))
	for _, a := range args {
		k, err := parseKey(a)
		if err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	return keys, nil
}

// knownKeys returns the favorite keys present in the dataset, or nil when it
// cannot be loaded.
func knownKeys(ctx *Context) map[string]bool {
	ds, err := ctx.Dataset()
	if err != nil {
		return nil
	}
	known := make(map[string]bool, ds.Len())
	for _, p := range ds.Promotions {
		known[p.FavoriteKey()] = true
	}
	return known
}

type FavListCmd struct {
	JSON bool `help:"Print the favorites mapping as JSON." name:"json"`
}

func (c *FavListCmd) Run(ctx *Context) error {
	favs := ctx.Favorites()

	if c.JSON {
		enc := json.NewEncoder(ctx.Out)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(favs.Clone())
	}

	if len(favs) == 0 {
		ctx.println("No favorites saved.")
		return nil
	}

	ctx.printf("Favorites (%d):\n\n", len(favs))
	for _, key := range favs.Keys() {
		group, name := models.SplitFavoriteKey(key)
		line := fmt.Sprintf("  %s %s · %s", render.Star, group, name)
		if tags := favs[key].Tags; len(tags) > 0 {
			line += fmt.Sprintf("  [%s]", strings.Join(tags, ", "))
		}
		ctx.println(line)
	}
	ctx.printf("\nStored in: %s\n", ctx.Store.Provider().GetConfigPath())
	return nil
}

type FavAddCmd struct {
	Keys []string `arg:"" help:"Favorites as \"Casino::Restaurant\"."`
}

func (c *FavAddCmd) Run(ctx *Context) error {
	keys, err := parseKeys(c.Keys)
	if err != nil {
		return err
	}

	if known := knownKeys(ctx); known != nil {
		for _, k := range keys {
			if !known[k] {
				ctx.printf("⚠ %s is not in the current dataset\n", k)
			}
		}
	}

	favs := favorites.Add(ctx.Favorites(), keys...)
	if err := ctx.Store.Save(favs); err != nil {
		return fmt.Errorf("failed to save favorites: %w", err)
	}
	ctx.printf("✓ Added %d favorite(s), %d saved\n", len(keys), len(favs))
	return nil
}

type FavRemoveCmd struct {
	Keys []string `arg:"" help:"Favorites as \"Casino::Restaurant\"."`
}

func (c *FavRemoveCmd) Run(ctx *Context) error {
	keys, err := parseKeys(c.Keys)
	if err != nil {
		return err
	}

	current := ctx.Favorites()
	for _, k := range keys {
		if !current.Has(k) {
			return fmt.Errorf("%s is not a favorite", k)
		}
	}

	favs := favorites.Remove(current, keys...)
	if err := ctx.Store.Save(favs); err != nil {
		return fmt.Errorf("failed to save favorites: %w", err)
	}
	ctx.printf("✓ Removed %d favorite(s), %d saved\n", len(keys), len(favs))
	return nil
}

type FavTagCmd struct {
	Key string `arg:"" help:"Favorite as \"Casino::Restaurant\"."`
	Tag string `arg:"" help:"Tag to add."`
}

func (c *FavTagCmd) Run(ctx *Context) error {
	return retag(ctx, c.Key, c.Tag, favorites.Tag, "✓ Tagged %s with %q\n")
}

type FavUntagCmd struct {
	Key string `arg:"" help:"Favorite as \"Casino::Restaurant\"."`
	Tag string `arg:"" help:"Tag to remove."`
}

func (c *FavUntagCmd) Run(ctx *Context) error {
	return retag(ctx, c.Key, c.Tag, favorites.Untag, "✓ Removed %[2]q from %[1]s\n")
}

func retag(ctx *Context, arg, tag string, apply func(models.Favorites, string, string) (models.Favorites, bool), done string) error {
	key, err := parseKey(arg)
	if err != nil {
		return err
	}
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return fmt.Errorf("tag must not be empty")
	}

	favs, ok := apply(ctx.Favorites(), key, tag)
	if !ok {
		return fmt.Errorf("%s is not a favorite; add it with 'happyhour fav add'", key)
	}
	if err := ctx.Store.Save(favs); err != nil {
		return fmt.Errorf("failed to save favorites: %w", err)
	}
	ctx.printf(done, key, tag)
	return nil
}
