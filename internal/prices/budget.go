package prices

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount reads a price such as "12", "12.50" or "$12".
func ParseAmount(s string) (decimal.Decimal, error) {
	value := strings.TrimSpace(s)
	value = strings.TrimPrefix(value, string(Marker))
	value = strings.TrimSpace(value)
	if value == "" {
		return decimal.Zero, fmt.Errorf("empty price")
	}
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid price %q: %w", s, err)
	}
	return d, nil
}

// ParseBudget is ParseAmount for optional inputs: empty means no budget.
// Negative budgets are rejected.
func ParseBudget(s string) (*decimal.Decimal, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	d, err := ParseAmount(s)
	if err != nil {
		return nil, err
	}
	if d.IsNegative() {
		return nil, fmt.Errorf("budget must not be negative: %s", s)
	}
	return &d, nil
}

// FormatPrice renders whole amounts without cents ("$5") and everything else
// with two decimals ("$5.50").
func FormatPrice(d decimal.Decimal) string {
	if d.Equal(d.Truncate(0)) {
		return string(Marker) + d.Truncate(0).String()
	}
	return string(Marker) + d.StringFixed(2)
}

// WithinBudget reports whether price is known and no more than budget.
func WithinBudget(price *decimal.Decimal, budget decimal.Decimal) bool {
	return price != nil && price.LessThanOrEqual(budget)
}
