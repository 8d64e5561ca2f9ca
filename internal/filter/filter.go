package filter

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/julianstephens/happyhour/internal/constants"
	"github.com/julianstephens/happyhour/internal/dataset"
	"github.com/julianstephens/happyhour/internal/models"
	"github.com/julianstephens/happyhour/internal/prices"
	"github.com/julianstephens/happyhour/internal/window"
)

// Criteria selects promotions. Zero values mean "no constraint".
type Criteria struct {
	Zone          string // exact match; "" or "Any" selects every zone
	Venue         string // case-insensitive substring of the casino or restaurant
	Day           *time.Weekday
	At            *window.TimeOfDay
	AllDayOnly    bool
	MaxDrinkPrice *decimal.Decimal
	FavoritesOnly bool
	Favorites     models.Favorites
}

// Apply returns the promotions in ds matching c, in dataset order. Filters
// run in the order zone, venue, all-day, day, time, budget, favorites. A
// filter whose column is absent from the dataset is skipped.
func Apply(ds *dataset.Dataset, c Criteria) []models.Promotion {
	out := make([]models.Promotion, 0, ds.Len())
	venue := strings.ToLower(strings.TrimSpace(c.Venue))

	// favorites-only with nothing saved matches nothing
	if c.FavoritesOnly && len(c.Favorites) == 0 {
		return out
	}

	for _, p := range ds.Promotions {
		if !matchZone(ds, c.Zone, p) {
			continue
		}
		if venue != "" && !matchVenue(venue, p) {
			continue
		}
		if c.AllDayOnly && ds.HasTimes() && !p.AllDay {
			continue
		}
		if c.Day != nil && ds.HasColumn(constants.DayColumns[*c.Day]) && !p.AvailableOn(*c.Day) {
			continue
		}
		if c.At != nil && ds.HasTimes() && !p.ActiveAt(*c.At) {
			continue
		}
		if c.MaxDrinkPrice != nil && ds.HasColumn(constants.ColDrinkMinPrice) && !prices.WithinBudget(p.DrinkMinPrice, *c.MaxDrinkPrice) {
			continue
		}
		if c.FavoritesOnly && !c.Favorites.Has(p.FavoriteKey()) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func matchZone(ds *dataset.Dataset, zone string, p models.Promotion) bool {
	if zone == "" || zone == constants.AnyOption || !ds.HasColumn(constants.ColZone) {
		return true
	}
	return p.Zone == zone
}

func matchVenue(needle string, p models.Promotion) bool {
	return strings.Contains(strings.ToLower(p.VenueGroup), needle) ||
		strings.Contains(strings.ToLower(p.VenueName), needle)
}

// Sort orders promotions by zone, then by drink minimum price. Empty zones
// and missing prices sort last. The sort is stable.
func Sort(promos []models.Promotion) {
	sort.SliceStable(promos, func(i, j int) bool {
		a, b := promos[i], promos[j]
		if a.Zone != b.Zone {
			if a.Zone == "" || b.Zone == "" {
				return b.Zone == ""
			}
			return a.Zone < b.Zone
		}
		switch {
		case a.DrinkMinPrice == nil:
			return false
		case b.DrinkMinPrice == nil:
			return true
		default:
			return a.DrinkMinPrice.LessThan(*b.DrinkMinPrice)
		}
	})
}

// Zones returns the distinct non-empty zones in ds, sorted.
func Zones(ds *dataset.Dataset) []string {
	seen := make(map[string]bool)
	zones := []string{}
	for _, p := range ds.Promotions {
		if p.Zone == "" || seen[p.Zone] {
			continue
		}
		seen[p.Zone] = true
		zones = append(zones, p.Zone)
	}
	sort.Strings(zones)
	return zones
}

// PriceRange returns the lowest and highest known drink prices. ok is false
// when no promotion has a price.
func PriceRange(ds *dataset.Dataset) (lo, hi decimal.Decimal, ok bool) {
	for _, p := range ds.Promotions {
		if p.DrinkMinPrice == nil {
			continue
		}
		if !ok {
			lo, hi, ok = *p.DrinkMinPrice, *p.DrinkMinPrice, true
			continue
		}
		lo = decimal.Min(lo, *p.DrinkMinPrice)
		hi = decimal.Max(hi, *p.DrinkMinPrice)
	}
	return lo, hi, ok
}
