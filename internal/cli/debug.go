package cli

import (
	"fmt"

	"github.com/goccy/go-json"

	"github.com/julianstephens/happyhour/internal/config"
	"github.com/julianstephens/happyhour/internal/logger"
	"github.com/julianstephens/happyhour/internal/render"
)

type DebugCmd struct {
	Paths   DebugPathsCmd   `cmd:"" help:"Show file locations."`
	DumpRow DebugDumpRowCmd `cmd:"" help:"Dump the dataset rows for a venue as JSON."`
}

type DebugPathsCmd struct{}

func (cmd *DebugPathsCmd) Run(ctx *Context) error {
	dataPath, err := config.ExpandPath(ctx.Config.DataFile)
	if err != nil {
		return err
	}
	dir, err := config.Dir()
	if err != nil {
		return err
	}

	// Output in machine-readable format
	output := map[string]string{
		"config":    ctx.ConfigPath,
		"data":      dataPath,
		"favorites": ctx.Store.Provider().GetConfigPath(),
		"store":     ctx.Store.Provider().Kind(),
		"backups":   ctx.Backups.GetBackupDir(),
		"log":       logger.Path(dir),
	}
	return printJSON(ctx, output)
}

type DebugDumpRowCmd struct {
	Key string `arg:"" help:"Venue as \"Casino::Restaurant\"."`
}

func (cmd *DebugDumpRowCmd) Run(ctx *Context) error {
	key, err := parseKey(cmd.Key)
	if err != nil {
		return err
	}

	ds, err := ctx.Dataset()
	if err != nil {
		return err
	}

	favs := ctx.Favorites()
	var rows []render.Row
	for _, p := range ds.Promotions {
		if p.FavoriteKey() == key {
			rows = append(rows, render.NewRow(p, render.Options{Favorites: favs}))
		}
	}
	if len(rows) == 0 {
		return fmt.Errorf("no rows found for %s", key)
	}
	return printJSON(ctx, rows)
}

func printJSON(ctx *Context, v interface{}) error {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	ctx.println(string(jsonBytes))
	return nil
}
