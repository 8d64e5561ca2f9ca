package cli

import (
	"fmt"
	"strings"

	"github.com/julianstephens/happyhour/internal/constants"
	"github.com/julianstephens/happyhour/internal/filter"
	"github.com/julianstephens/happyhour/internal/models"
	"github.com/julianstephens/happyhour/internal/prices"
)

// FilterFlags are the listing filters shared by list and tui. Empty flags
// fall back to the config file's defaults.
type FilterFlags struct {
	Zone          string `help:"Only show this location zone." placeholder:"ZONE"`
	Venue         string `help:"Casino or restaurant name contains this text." placeholder:"TEXT"`
	Day           string `help:"Weekday name or abbreviation, or 'any'." placeholder:"DAY"`
	At            string `help:"Time of day such as 19:00 or '7:30 PM', or 'any'." placeholder:"TIME"`
	When          string `help:"Quick select: now, tonight, tomorrow-afternoon or tomorrow-night. Overrides --day and --at." placeholder:"PRESET"`
	AllDay        bool   `help:"Only promotions that run all day."`
	FavoritesOnly bool   `help:"Only saved favorites." short:"F"`
	MaxPrice      string `help:"Maximum drink price, e.g. 8 or $8.50." placeholder:"PRICE"`
}

// Criteria resolves the flags into filter criteria.
func (f FilterFlags) Criteria(ctx *Context, favs models.Favorites) (filter.Criteria, error) {
	defaults := ctx.Config.Defaults

	zone := firstNonEmpty(f.Zone, defaults.Zone)
	if strings.EqualFold(zone, constants.AnyOption) {
		zone = ""
	}

	day, err := filter.ParseDay(f.Day)
	if err != nil {
		return filter.Criteria{}, err
	}

	at, err := filter.ParseAt(firstNonEmpty(f.At, defaults.At))
	if err != nil {
		return filter.Criteria{}, fmt.Errorf("invalid time: %w", err)
	}

	budget, err := prices.ParseBudget(firstNonEmpty(f.MaxPrice, defaults.MaxPrice))
	if err != nil {
		return filter.Criteria{}, err
	}

	c := filter.Criteria{
		Zone:          zone,
		Venue:         f.Venue,
		Day:           day,
		At:            at,
		AllDayOnly:    f.AllDay,
		MaxDrinkPrice: budget,
		FavoritesOnly: f.FavoritesOnly,
		Favorites:     favs,
	}

	if f.When != "" {
		preset, err := filter.ParsePreset(f.When)
		if err != nil {
			return filter.Criteria{}, err
		}
		preset.Apply(&c, ctx.Clock())
	}
	return c, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
