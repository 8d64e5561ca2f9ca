package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/julianstephens/happyhour/internal/constants"
	"github.com/julianstephens/happyhour/internal/models"
	"github.com/julianstephens/happyhour/internal/prices"
	"github.com/julianstephens/happyhour/internal/window"
)

// Dataset is the loaded promotion table plus the set of columns present in
// the source file.
type Dataset struct {
	Path       string
	Promotions []models.Promotion
	columns    map[string]bool
}

// Load reads the CSV file at path.
func Load(path string) (*Dataset, error) {
	// #nosec G304 -- path is operator provided via flags or config.
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer file.Close()

	ds, err := Read(file)
	if err != nil {
		return nil, fmt.Errorf("load dataset %s: %w", path, err)
	}
	ds.Path = path
	return ds, nil
}

// Read parses a dataset from r. The first record is the header.
func Read(r io.Reader) (*Dataset, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("read csv header: empty file")
		}
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, "\ufeff")
		}
		name = strings.TrimSpace(name)
		if _, dup := index[name]; !dup {
			index[name] = i
		}
	}

	ds := &Dataset{columns: make(map[string]bool, len(index))}
	for name := range index {
		ds.columns[name] = true
	}

	line := 1
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("read csv record %d: %w", line, err)
		}
		ds.Promotions = append(ds.Promotions, ds.parseRow(rowReader{index: index, record: record}))
	}

	return ds, nil
}

// HasColumn reports whether the source file had the named column.
func (d *Dataset) HasColumn(name string) bool {
	return d.columns[name]
}

// HasTimes reports whether both window columns are present.
func (d *Dataset) HasTimes() bool {
	return d.HasColumn(constants.ColStart) && d.HasColumn(constants.ColEnd)
}

// Len returns the number of promotions.
func (d *Dataset) Len() int {
	return len(d.Promotions)
}

type rowReader struct {
	index  map[string]int
	record []string
}

func (r rowReader) get(col string) string {
	i, ok := r.index[col]
	if !ok || i >= len(r.record) {
		return ""
	}
	return strings.TrimSpace(r.record[i])
}

func (d *Dataset) parseRow(r rowReader) models.Promotion {
	p := models.Promotion{
		Zone:          r.get(constants.ColZone),
		VenueGroup:    r.get(constants.ColCasino),
		VenueName:     r.get(constants.ColRestaurant),
		DayLabel:      r.get(constants.ColDayOfWeek),
		Drinks:        r.get(constants.ColDrinks),
		Food:          r.get(constants.ColFood),
		CheapestDrink: r.get(constants.ColCheapestDrink),
		CheapestFood:  r.get(constants.ColCheapestFood),
		Start:         window.ParseOptional(r.get(constants.ColStart)),
		End:           window.ParseOptional(r.get(constants.ColEnd)),
		DrinkMinPrice: parsePrice(r.get(constants.ColDrinkMinPrice)),
	}

	for day, col := range constants.DayColumns {
		p.Days[day] = ParseFlag(r.get(col))
	}

	if d.HasTimes() {
		p.AllDay = window.IsAllDay(p.Start, p.End)
	}
	return p
}

// ParseFlag reads a day-flag cell: TRUE, T, YES, Y and 1 (any case) are set.
func ParseFlag(s string) bool {
	v := strings.ToUpper(strings.TrimSpace(s))
	for _, truthy := range constants.TruthyFlags {
		if v == truthy {
			return true
		}
	}
	return false
}

func parsePrice(s string) *decimal.Decimal {
	d, err := prices.ParseAmount(s)
	if err != nil {
		return nil
	}
	return &d
}
