package cli

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/happyhour/internal/config"
	"github.com/julianstephens/happyhour/internal/constants"
	"github.com/julianstephens/happyhour/internal/storage"
)

type DoctorCmd struct{}

// errWarning marks a check that passed with a caveat.
var errWarning = errors.New("warning")

type check struct {
	name string
	run  func(ctx *Context) error
	// requires names an earlier check that must pass first.
	requires string
}

var checks = []check{
	{name: "Config valid", run: checkConfig},
	{name: "Dataset readable", run: checkDataset},
	{name: "Dataset columns", run: checkColumns, requires: "Dataset readable"},
	{name: "Favorites readable", run: checkFavorites},
	{name: "Favorites database", run: checkSQLite},
	{name: "Backups present", run: checkBackupsPresent},
	{name: "Clock/timezone", run: checkClockTimezone},
}

func (cmd *DoctorCmd) Run(ctx *Context) error {
	ctx.println("Running diagnostics...")
	ctx.println()

	hasError := false
	passed := make(map[string]bool, len(checks))

	for _, c := range checks {
		if c.requires != "" && !passed[c.requires] {
			ctx.printf("⊘ %s: SKIPPED (%s failed)\n", c.name, strings.ToLower(c.requires))
			continue
		}

		err := c.run(ctx)
		switch {
		case err == nil:
			ctx.printf("✓ %s: OK\n", c.name)
			passed[c.name] = true
		case errors.Is(err, errWarning):
			ctx.printf("⚠ %s: WARNING\n", c.name)
			ctx.printf("   %s\n", strings.TrimSuffix(err.Error(), ": "+errWarning.Error()))
			passed[c.name] = true
		default:
			ctx.printf("❌ %s: FAIL\n", c.name)
			ctx.printf("   Error: %v\n", err)
			hasError = true
		}
	}

	ctx.println()
	if hasError {
		ctx.println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}

	ctx.println("All diagnostics passed!")
	return nil
}

func warnf(format string, args ...interface{}) error {
	return fmt.Errorf(format+": %w", append(args, errWarning)...)
}

func checkConfig(ctx *Context) error {
	return ctx.Config.Validate()
}

func checkDataset(ctx *Context) error {
	ds, err := ctx.Dataset()
	if err != nil {
		return err
	}
	if ds.Len() == 0 {
		return warnf("%s has no rows", ds.Path)
	}
	return nil
}

func checkColumns(ctx *Context) error {
	ds, err := ctx.Dataset()
	if err != nil {
		return err
	}

	var missing []string
	for _, col := range constants.AllColumns() {
		if !ds.HasColumn(col) {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return warnf("missing columns (their filters are skipped): %s", strings.Join(missing, ", "))
	}
	return nil
}

func checkFavorites(ctx *Context) error {
	_, err := ctx.Store.Provider().Load()
	if errors.Is(err, storage.ErrNotFound) {
		return warnf("no favorites saved yet at %s", ctx.Store.Provider().GetConfigPath())
	}
	return err
}

func checkSQLite(ctx *Context) error {
	sqliteStore, ok := ctx.Store.Provider().(*storage.SQLiteStore)
	if !ok {
		// JSON store has no database to query
		return nil
	}

	db := sqliteStore.GetDB()
	if db == nil {
		return warnf("database not opened (no favorites saved yet)")
	}
	var result int
	if err := db.QueryRow("SELECT 1").Scan(&result); err != nil {
		return fmt.Errorf("failed to query database: %w", err)
	}
	return nil
}

func checkBackupsPresent(ctx *Context) error {
	backups, err := ctx.Backups.ListBackups()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}
	if len(backups) == 0 {
		return warnf("no backups found - consider creating one with '%s backup create'", constants.AppName)
	}
	return nil
}

func checkClockTimezone(ctx *Context) error {
	now := ctx.Clock()

	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}

	if ctx.Config.Timezone == "" && now.Location() == time.UTC {
		return warnf("timezone is UTC; set 'timezone' in %s if that is not where you are", displayPath(ctx.ConfigPath))
	}
	return nil
}

func displayPath(path string) string {
	if path == "" {
		return constants.DefaultConfigFile
	}
	if expanded, err := config.ExpandPath(path); err == nil {
		return expanded
	}
	return path
}
