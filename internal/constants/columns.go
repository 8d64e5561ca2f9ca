package constants

// Dataset column names as they appear in the CSV header.
const (
	ColZone          = "Location Zone"
	ColCasino        = "Casino"
	ColRestaurant    = "Restaurant"
	ColDayOfWeek     = "Day of Week"
	ColStart         = "Start Time Clean"
	ColEnd           = "End Time Clean"
	ColDrinks        = "Drinks"
	ColFood          = "Food"
	ColCheapestDrink = "Cheapest Drink"
	ColCheapestFood  = "Cheapest Food Item"
	ColDrinkMinPrice = "Drink Min Price"
)

// DayColumns holds the per-weekday flag columns, indexed by time.Weekday.
var DayColumns = [7]string{
	"Is Sunday",
	"Is Monday",
	"Is Tuesday",
	"Is Wednesday",
	"Is Thursday",
	"Is Friday",
	"Is Saturday",
}

// TruthyFlags are the upper-cased values that mark a day flag as set.
var TruthyFlags = []string{"TRUE", "T", "YES", "Y", "1"}

// AllColumns returns every column the application reads, in header order.
func AllColumns() []string {
	cols := []string{
		ColZone,
		ColCasino,
		ColRestaurant,
		ColDayOfWeek,
		ColStart,
		ColEnd,
		ColDrinks,
		ColFood,
		ColCheapestDrink,
		ColCheapestFood,
		ColDrinkMinPrice,
	}
	return append(cols, DayColumns[:]...)
}
