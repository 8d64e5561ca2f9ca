// Package config loads the optional YAML configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mitchellh/go-homedir"
	"gopkg.in/yaml.v3"

	"github.com/julianstephens/happyhour/internal/constants"
	"github.com/julianstephens/happyhour/internal/storage"
)

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// FilterDefaults are applied when the matching flag is not given.
type FilterDefaults struct {
	Zone     string `yaml:"zone"`
	At       string `yaml:"at"`
	MaxPrice string `yaml:"maxPrice"`
	Cards    bool   `yaml:"cards"`
}

// Config is the application configuration. Flags override file values,
// which override Default.
type Config struct {
	DataFile      string         `yaml:"dataFile"`
	FavoritesFile string         `yaml:"favoritesFile"`
	Store         string         `yaml:"store"`
	Timezone      string         `yaml:"timezone"`
	Debug         bool           `yaml:"debug"`
	Backups       *bool          `yaml:"backups,omitempty"`
	Server        ServerConfig   `yaml:"server"`
	Defaults      FilterDefaults `yaml:"defaults"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		DataFile: constants.DefaultDataFile,
		Store:    storage.KindJSON,
		Server:   ServerConfig{Addr: constants.DefaultListenAddr},
		Defaults: FilterDefaults{At: constants.DefaultQueryTime},
	}
}

// Load reads the YAML file at path over Default. A missing file is not an
// error.
func Load(path string) (Config, error) {
	cfg := Default()

	expanded, err := ExpandPath(path)
	if err != nil {
		return cfg, err
	}

	data, err := os.ReadFile(expanded) // #nosec G304 -- path is operator controlled.
	if err != nil {
		if os.IsNotExist(err) {
			cfg.normalise()
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("unmarshal config %s: %w", expanded, err)
	}

	cfg.normalise()
	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("config %s: %w", expanded, err)
	}
	return cfg, nil
}

func (c *Config) normalise() {
	c.DataFile = strings.TrimSpace(c.DataFile)
	c.FavoritesFile = strings.TrimSpace(c.FavoritesFile)
	c.Store = strings.ToLower(strings.TrimSpace(c.Store))
	c.Timezone = strings.TrimSpace(c.Timezone)
	c.Server.Addr = strings.TrimSpace(c.Server.Addr)

	if c.Store == "" {
		c.Store = storage.KindJSON
	}
	if c.DataFile == "" {
		c.DataFile = constants.DefaultDataFile
	}
	if c.Server.Addr == "" {
		c.Server.Addr = constants.DefaultListenAddr
	}
}

// Validate performs semantic validation on the configuration.
func (c Config) Validate() error {
	switch c.Store {
	case storage.KindJSON, storage.KindSQLite:
	default:
		return fmt.Errorf("store must be one of %s, %s", storage.KindJSON, storage.KindSQLite)
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}

// Save writes c to path as YAML, creating the parent directory.
func (c Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}

// BackupsEnabled reports whether saves keep rotating backups. Defaults to true.
func (c Config) BackupsEnabled() bool {
	return c.Backups == nil || *c.Backups
}

// Location resolves Timezone. Empty means the local zone.
func (c Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// FavoritesPath returns the favorites file, defaulting by store kind.
func (c Config) FavoritesPath() (string, error) {
	if c.FavoritesFile != "" {
		return ExpandPath(c.FavoritesFile)
	}
	if c.Store == storage.KindSQLite {
		return ExpandPath(constants.DefaultSQLiteFile)
	}
	return ExpandPath(constants.DefaultFavoritesFile)
}

// Dir returns the directory holding logs and default files.
func Dir() (string, error) {
	return ExpandPath(constants.DefaultConfigDir)
}

// ExpandPath replaces a leading "~" with the user's home directory.
func ExpandPath(path string) (string, error) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return expanded, nil
}
