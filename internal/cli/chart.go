package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/julianstephens/happyhour/internal/chart"
	"github.com/julianstephens/happyhour/internal/constants"
	"github.com/julianstephens/happyhour/internal/filter"
)

type ChartCmd struct {
	Day           string `help:"Weekday to chart, 'today' or 'any'." default:"today" placeholder:"DAY"`
	Zone          string `help:"Only chart this location zone." placeholder:"ZONE"`
	FavoritesOnly bool   `help:"Only chart saved favorites." short:"F"`
	ByZone        bool   `help:"Stack one series per zone."`
	Output        string `help:"HTML file to write, or - for stdout." short:"o" type:"path" default:"happyhour-chart.html"`
}

func (c *ChartCmd) Run(ctx *Context) error {
	ds, err := ctx.Dataset()
	if err != nil {
		return err
	}

	var day *time.Weekday
	if strings.EqualFold(strings.TrimSpace(c.Day), "today") {
		today := ctx.Clock().Weekday()
		day = &today
	} else if day, err = filter.ParseDay(c.Day); err != nil {
		return err
	}

	favs := ctx.Favorites()
	promos := filter.Apply(ds, filter.Criteria{
		Zone:          c.Zone,
		FavoritesOnly: c.FavoritesOnly,
		Favorites:     favs,
	})

	series := []chart.Series{{Name: "Promotions", Counts: chart.HourlyActivity(promos, day)}}
	if c.ByZone {
		series = chart.ByZone(promos, day)
	}
	if len(series) == 0 {
		return fmt.Errorf("nothing to chart: %s", constants.EmptyResultMessage)
	}

	title := "Happy hours by hour"
	subtitle := filter.DayLabel(day)
	if c.Zone != "" {
		subtitle += " · " + c.Zone
	}

	var w io.Writer = ctx.Out
	if c.Output != "-" {
		f, err := os.Create(c.Output)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", c.Output, err)
		}
		defer f.Close()
		w = f
	}

	if err := chart.Render(w, title, subtitle, series...); err != nil {
		return err
	}
	if c.Output != "-" {
		ctx.printf("✓ Chart written: %s\n", c.Output)
	}
	return nil
}
