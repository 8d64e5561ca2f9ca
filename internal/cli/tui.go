package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/happyhour/internal/tui"
)

type TuiCmd struct {
	FilterFlags `embed:""`
}

func (c *TuiCmd) Run(ctx *Context) error {
	ds, err := ctx.Dataset()
	if err != nil {
		return err
	}

	favs := ctx.Favorites()
	criteria, err := c.Criteria(ctx, favs)
	if err != nil {
		return err
	}

	p := tea.NewProgram(tui.NewModel(ds, ctx.Store, favs, criteria, ctx.Clock), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
