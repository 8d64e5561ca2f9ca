package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/happyhour/internal/cli"
	"github.com/julianstephens/happyhour/internal/config"
	"github.com/julianstephens/happyhour/internal/constants"
	apperrors "github.com/julianstephens/happyhour/internal/errors"
	"github.com/julianstephens/happyhour/internal/logger"
)

var CLI struct {
	Version   kong.VersionFlag
	Config    string `help:"Config file path." type:"path" default:"~/.config/happyhour/config.yaml"`
	Data      string `help:"Happy hours CSV file." type:"path" placeholder:"FILE"`
	Favorites string `help:"Favorites file (.json or SQLite database)." type:"path" placeholder:"FILE"`
	Store     string `help:"Favorites backend: json or sqlite." placeholder:"KIND"`
	Timezone  string `help:"IANA timezone for 'now' and 'tonight', e.g. America/Los_Angeles." placeholder:"TZ"`
	DebugLog  bool   `name:"debug" help:"Log debug output to stderr."`

	Tui      cli.TuiCmd      `cmd:"" help:"Browse happy hours interactively." default:"1"`
	List     cli.ListCmd     `cmd:"" help:"Print matching happy hours."`
	Zones    cli.ZonesCmd    `cmd:"" help:"List location zones."`
	Annotate cli.AnnotateCmd `cmd:"" help:"Add $ markers to prices in free text."`
	Fav      cli.FavCmd      `cmd:"" help:"Manage favorite venues."`
	Backup   cli.BackupCmd   `cmd:"" help:"Manage favorites backups."`
	Chart    cli.ChartCmd    `cmd:"" help:"Write an hourly activity chart."`
	Serve    cli.ServeCmd    `cmd:"" help:"Serve the JSON API."`
	Init     cli.InitCmd     `cmd:"" help:"Write a default config and initialize favorites storage."`
	Doctor   cli.DoctorCmd   `cmd:"" help:"Run health checks and diagnostics."`
	Debug    cli.DebugCmd    `cmd:"" help:"Debug commands for troubleshooting."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Find happy hours by zone, venue, day, time and budget"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	cfg, err := config.Load(CLI.Config)
	if err != nil {
		apperrors.Fatal(err)
	}
	applyFlags(&cfg)
	if err := cfg.Validate(); err != nil {
		apperrors.Fatalf("invalid configuration in %s: %v", CLI.Config, err)
	}

	dir, err := config.Dir()
	if err != nil {
		apperrors.Fatal(err)
	}
	if err := logger.Init(logger.Config{
		Debug:     cfg.Debug,
		ConfigDir: dir,
		Stderr:    ctx.Command() == "serve",
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
	}

	appCtx, err := cli.NewContext(cfg)
	if err != nil {
		apperrors.Fatal(err)
	}
	appCtx.ConfigPath = CLI.Config

	err = ctx.Run(appCtx)
	if closeErr := appCtx.Close(); closeErr != nil {
		logger.Warn("failed to close favorites store", "error", closeErr)
	}
	if errors.Is(err, fs.ErrNotExist) {
		apperrors.FatalWithHint(err, "point --data at the happy hours CSV or set dataFile in "+CLI.Config)
	}
	apperrors.Fatal(err)
}

// applyFlags layers the global flags over the config file.
func applyFlags(cfg *config.Config) {
	if CLI.Data != "" {
		cfg.DataFile = CLI.Data
	}
	if CLI.Favorites != "" {
		cfg.FavoritesFile = CLI.Favorites
	}
	if CLI.Store != "" {
		cfg.Store = strings.ToLower(strings.TrimSpace(CLI.Store))
	}
	if CLI.Timezone != "" {
		cfg.Timezone = CLI.Timezone
	}
	cfg.Debug = cfg.Debug || CLI.DebugLog
}
