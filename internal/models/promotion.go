package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/julianstephens/happyhour/internal/window"
)

// FavoriteKeySeparator joins the venue group and venue name in a favorite key.
const FavoriteKeySeparator = "::"

// Promotion is one happy-hour listing from the dataset.
type Promotion struct {
	Zone       string
	VenueGroup string  // the casino or property
	VenueName  string  // the bar or restaurant
	DayLabel   string  // free-text day description, e.g. "Mon-Fri"
	Days       [7]bool // indexed by time.Weekday

	Start *window.TimeOfDay // nil when missing or unparseable
	End   *window.TimeOfDay

	DrinkMinPrice *decimal.Decimal // nil when missing

	Drinks        string
	Food          string
	CheapestDrink string
	CheapestFood  string

	AllDay bool
}

// FavoriteKey returns the stable identity used to store this venue as a favorite.
func (p Promotion) FavoriteKey() string {
	return FavoriteKey(p.VenueGroup, p.VenueName)
}

// AvailableOn reports whether the promotion runs on the given weekday.
func (p Promotion) AvailableOn(day time.Weekday) bool {
	if day < time.Sunday || day > time.Saturday {
		return false
	}
	return p.Days[day]
}

// ActiveAt reports whether the promotion's window contains t.
func (p Promotion) ActiveAt(t window.TimeOfDay) bool {
	return window.IsWithinWindow(p.Start, p.End, t)
}

// FavoriteKey builds "<group>::<name>" from trimmed components. Empty
// components are kept, so "::" and "Casino::" are valid keys.
func FavoriteKey(group, name string) string {
	return strings.TrimSpace(group) + FavoriteKeySeparator + strings.TrimSpace(name)
}
