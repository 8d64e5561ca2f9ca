package filter

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julianstephens/happyhour/internal/dataset"
	"github.com/julianstephens/happyhour/internal/models"
	"github.com/julianstephens/happyhour/internal/window"
)

const header = "Location Zone,Casino,Restaurant,Day of Week,Start Time Clean,End Time Clean,Drinks,Food,Cheapest Drink,Cheapest Food Item,Drink Min Price,Is Sunday,Is Monday,Is Tuesday,Is Wednesday,Is Thursday,Is Friday,Is Saturday\n"

const rows = `South Strip,Mandalay Bay,Citizens,Mon-Fri,15:00,18:00,6 wells,,,,6,F,T,T,T,T,T,F
Center Strip,Bellagio,Lily Bar,Daily,16:00,19:00,8 cocktails,,,,8,T,T,T,T,T,T,T
Downtown,Fremont,Lanny's,Fri-Sat,21:00,02:00,3 drafts,,,,,F,F,F,F,F,T,T
Downtown,Golden Nugget,Claim Jumper,Daily,00:00,23:30,4 wells,,,,4,T,T,T,T,T,T,T
Center Strip,Caesars,Vista Lounge,Mon-Fri,17:00,20:00,5 wells,,,,5,F,T,T,T,T,T,F
,Sahara,Casbar,Daily,17:00,20:00,,,,,2,T,T,T,T,T,T,T
`

func loadSample(t *testing.T) *dataset.Dataset {
	t.Helper()
	ds, err := dataset.Read(strings.NewReader(header + rows))
	require.NoError(t, err)
	return ds
}

func names(promos []models.Promotion) []string {
	out := make([]string, 0, len(promos))
	for _, p := range promos {
		out = append(out, p.VenueName)
	}
	return out
}

func dayPtr(d time.Weekday) *time.Weekday { return &d }

func price(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestApply(t *testing.T) {
	ds := loadSample(t)

	tests := []struct {
		name     string
		criteria Criteria
		want     []string
	}{
		{
			name:     "no criteria",
			criteria: Criteria{},
			want:     []string{"Citizens", "Lily Bar", "Lanny's", "Claim Jumper", "Vista Lounge", "Casbar"},
		},
		{
			name:     "zone",
			criteria: Criteria{Zone: "Downtown"},
			want:     []string{"Lanny's", "Claim Jumper"},
		},
		{
			name:     "any zone",
			criteria: Criteria{Zone: "Any"},
			want:     []string{"Citizens", "Lily Bar", "Lanny's", "Claim Jumper", "Vista Lounge", "Casbar"},
		},
		{
			name:     "venue substring matches casino or restaurant",
			criteria: Criteria{Venue: "BAR"},
			want:     []string{"Lily Bar", "Casbar"},
		},
		{
			name:     "all day",
			criteria: Criteria{AllDayOnly: true},
			want:     []string{"Claim Jumper"},
		},
		{
			name:     "day",
			criteria: Criteria{Day: dayPtr(time.Saturday)},
			want:     []string{"Lily Bar", "Lanny's", "Claim Jumper", "Casbar"},
		},
		{
			name:     "time end exclusive",
			criteria: Criteria{At: window.Ptr(window.Clock(18, 0, 0))},
			want:     []string{"Lily Bar", "Claim Jumper", "Vista Lounge", "Casbar"},
		},
		{
			name:     "overnight after midnight",
			criteria: Criteria{At: window.Ptr(window.Clock(1, 30, 0))},
			want:     []string{"Lanny's", "Claim Jumper"},
		},
		{
			name:     "budget drops missing prices",
			criteria: Criteria{MaxDrinkPrice: price("5")},
			want:     []string{"Claim Jumper", "Vista Lounge", "Casbar"},
		},
		{
			name: "combined",
			criteria: Criteria{
				Zone:          "Center Strip",
				Day:           dayPtr(time.Monday),
				At:            window.Ptr(window.Clock(17, 30, 0)),
				MaxDrinkPrice: price("7"),
			},
			want: []string{"Vista Lounge"},
		},
		{
			name:     "favorites only",
			criteria: Criteria{FavoritesOnly: true, Favorites: models.Favorites{"Fremont::Lanny's": {}, "Nowhere::Bar": {}}},
			want:     []string{"Lanny's"},
		},
		{
			name:     "favorites only with none saved",
			criteria: Criteria{FavoritesOnly: true},
			want:     []string{},
		},
		{
			name:     "favorites ignored unless requested",
			criteria: Criteria{Zone: "Downtown", Favorites: models.Favorites{"Fremont::Lanny's": {}}},
			want:     []string{"Lanny's", "Claim Jumper"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, names(Apply(ds, tt.criteria)))
		})
	}
}

func TestApply_SkipsAbsentColumns(t *testing.T) {
	ds, err := dataset.Read(strings.NewReader("Casino,Restaurant\nAria,Jing\n"))
	require.NoError(t, err)

	got := Apply(ds, Criteria{
		Zone:          "Downtown",
		Day:           dayPtr(time.Monday),
		At:            window.Ptr(window.Clock(19, 0, 0)),
		AllDayOnly:    true,
		MaxDrinkPrice: price("1"),
	})
	assert.Equal(t, []string{"Jing"}, names(got))
}

func TestSort(t *testing.T) {
	promos := Apply(loadSample(t), Criteria{})
	Sort(promos)

	assert.Equal(t, []string{
		"Vista Lounge", // Center Strip $5
		"Lily Bar",     // Center Strip $8
		"Claim Jumper", // Downtown $4
		"Lanny's",      // Downtown, no price
		"Citizens",     // South Strip $6
		"Casbar",       // no zone
	}, names(promos))
}

func TestZones(t *testing.T) {
	assert.Equal(t, []string{"Center Strip", "Downtown", "South Strip"}, Zones(loadSample(t)))
}

func TestPriceRange(t *testing.T) {
	lo, hi, ok := PriceRange(loadSample(t))
	require.True(t, ok)
	assert.Equal(t, "2", lo.String())
	assert.Equal(t, "8", hi.String())

	ds, err := dataset.Read(strings.NewReader("Casino\nAria\n"))
	require.NoError(t, err)
	_, _, ok = PriceRange(ds)
	assert.False(t, ok)
}
