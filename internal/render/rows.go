package render

import (
	"github.com/shopspring/decimal"

	"github.com/julianstephens/happyhour/internal/constants"
	"github.com/julianstephens/happyhour/internal/models"
	"github.com/julianstephens/happyhour/internal/prices"
	"github.com/julianstephens/happyhour/internal/window"
)

// Headers are the table column titles, in Row.Cells order.
var Headers = []string{
	"Favorite",
	"Zone",
	"Casino",
	"Restaurant",
	"Day",
	"Start",
	"End",
	"Drinks",
	"Food",
	"Cheapest Drink",
	"Cheapest Food",
}

// Row is a display-ready promotion.
type Row struct {
	Key           string           `json:"key"`
	Favorite      bool             `json:"favorite"`
	Zone          string           `json:"zone"`
	Casino        string           `json:"casino"`
	Restaurant    string           `json:"restaurant"`
	Day           string           `json:"day"`
	Start         string           `json:"start"`
	End           string           `json:"end"`
	AllDay        bool             `json:"all_day"`
	Drinks        string           `json:"drinks"`
	Food          string           `json:"food"`
	CheapestDrink string           `json:"cheapest_drink"`
	CheapestFood  string           `json:"cheapest_food"`
	DrinkMinPrice *decimal.Decimal `json:"drink_min_price"`
}

// Options control how promotions are turned into rows.
type Options struct {
	// Raw disables price annotation of the drink and food text.
	Raw       bool
	Favorites models.Favorites
	// Width limits the table width. Zero means unbounded.
	Width int
}

// FormatTime renders a window bound as "3:04 PM", or "—" when missing.
func FormatTime(t *window.TimeOfDay) string {
	if t == nil {
		return constants.MissingValue
	}
	return t.Format12h()
}

// NewRow converts p using opts.
func NewRow(p models.Promotion, opts Options) Row {
	drinks, food := p.Drinks, p.Food
	if !opts.Raw {
		drinks = prices.AnnotatePrices(drinks)
		food = prices.AnnotatePrices(food)
	}
	key := p.FavoriteKey()
	return Row{
		Key:           key,
		Favorite:      opts.Favorites.Has(key),
		Zone:          p.Zone,
		Casino:        p.VenueGroup,
		Restaurant:    p.VenueName,
		Day:           p.DayLabel,
		Start:         FormatTime(p.Start),
		End:           FormatTime(p.End),
		AllDay:        p.AllDay,
		Drinks:        drinks,
		Food:          food,
		CheapestDrink: p.CheapestDrink,
		CheapestFood:  p.CheapestFood,
		DrinkMinPrice: p.DrinkMinPrice,
	}
}

// Rows converts every promotion.
func Rows(promos []models.Promotion, opts Options) []Row {
	out := make([]Row, 0, len(promos))
	for _, p := range promos {
		out = append(out, NewRow(p, opts))
	}
	return out
}

// Cells returns the row's values in Headers order.
func (r Row) Cells() []string {
	fav := ""
	if r.Favorite {
		fav = Star
	}
	return []string{
		fav,
		r.Zone,
		r.Casino,
		r.Restaurant,
		r.Day,
		r.Start,
		r.End,
		r.Drinks,
		r.Food,
		r.CheapestDrink,
		r.CheapestFood,
	}
}
