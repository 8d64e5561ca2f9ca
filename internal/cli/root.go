package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/julianstephens/happyhour/internal/backup"
	"github.com/julianstephens/happyhour/internal/config"
	"github.com/julianstephens/happyhour/internal/dataset"
	"github.com/julianstephens/happyhour/internal/favorites"
	"github.com/julianstephens/happyhour/internal/logger"
	"github.com/julianstephens/happyhour/internal/models"
	"github.com/julianstephens/happyhour/internal/storage"
)

type Context struct {
	Config     config.Config
	ConfigPath string
	Store      *favorites.Store
	Backups    *backup.Manager
	Location   *time.Location
	Now        func() time.Time
	Out        io.Writer
	In         io.Reader

	dataset *dataset.Dataset
}

// NewContext wires the favorites store and backup manager described by cfg.
func NewContext(cfg config.Config) (*Context, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	path, err := cfg.FavoritesPath()
	if err != nil {
		return nil, err
	}

	provider, err := storage.New(cfg.Store, path)
	if err != nil {
		return nil, err
	}

	mgr := backup.NewManager(path)
	var saveBackups *backup.Manager
	if cfg.BackupsEnabled() {
		saveBackups = mgr
	}

	return &Context{
		Config:   cfg,
		Store:    favorites.NewStore(provider, saveBackups),
		Backups:  mgr,
		Location: loc,
		Now:      time.Now,
		Out:      os.Stdout,
		In:       os.Stdin,
	}, nil
}

// Clock returns the current time in the configured timezone.
func (c *Context) Clock() time.Time {
	return c.Now().In(c.Location)
}

// Dataset loads the happy-hour CSV once per run.
func (c *Context) Dataset() (*dataset.Dataset, error) {
	if c.dataset != nil {
		return c.dataset, nil
	}

	path, err := config.ExpandPath(c.Config.DataFile)
	if err != nil {
		return nil, err
	}
	ds, err := dataset.Load(path)
	if err != nil {
		return nil, err
	}
	logger.Debug("loaded dataset", "path", path, "rows", ds.Len())
	c.dataset = ds
	return ds, nil
}

// Favorites returns the saved favorites, or an empty mapping when they
// cannot be read.
func (c *Context) Favorites() models.Favorites {
	favs, _ := c.Store.Load()
	return favs
}

func (c *Context) Close() error {
	return c.Store.Close()
}

func (c *Context) printf(format string, args ...interface{}) {
	fmt.Fprintf(c.Out, format, args...)
}

func (c *Context) println(args ...interface{}) {
	fmt.Fprintln(c.Out, args...)
}

// confirm asks a y/N question on c.In. Anything but "y" or "yes" declines.
func (c *Context) confirm(prompt string) (bool, error) {
	c.printf("%s [y/N]: ", prompt)

	reader := bufio.NewReader(c.In)
	response, err := reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return false, err
	}
	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes", nil
}
