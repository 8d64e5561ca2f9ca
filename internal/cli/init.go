package cli

import (
	"fmt"
	"os"

	"github.com/julianstephens/happyhour/internal/config"
)

type InitCmd struct {
	Force bool `help:"Overwrite an existing config file."`
}

func (c *InitCmd) Run(ctx *Context) error {
	path, err := config.ExpandPath(ctx.ConfigPath)
	if err != nil {
		return err
	}

	if _, err := os.Stat(path); err == nil && !c.Force {
		ctx.printf("Config already exists at: %s\n", path)
	} else {
		if err := ctx.Config.Save(path); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
		ctx.printf("Wrote config to: %s\n", path)
	}

	if err := ctx.Store.Provider().Init(); err != nil {
		return err
	}
	ctx.printf("Initialized favorites storage at: %s\n", ctx.Store.Provider().GetConfigPath())
	return nil
}
