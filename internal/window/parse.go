package window

import (
	"fmt"
	"strings"
	"time"
)

// layouts are tried in order. Inputs are upper-cased first so "9:00 pm"
// parses with the "PM" layouts.
var layouts = []string{
	"15:04",
	"15:04:05",
	"3:04 PM",
	"3:04PM",
	"3:04:05 PM",
	"3:04:05PM",
	"3 PM",
	"3PM",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02T15:04:05",
	time.RFC3339,
}

// Parse reads a time of day in any of the formats found in the dataset.
func Parse(s string) (TimeOfDay, error) {
	value := strings.ToUpper(strings.TrimSpace(s))
	if value == "" {
		return 0, fmt.Errorf("empty time")
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, value); err == nil {
			return FromTime(t), nil
		}
	}
	return 0, fmt.Errorf("invalid time format: %q", s)
}

// ParseOptional returns nil when s is empty or cannot be parsed.
func ParseOptional(s string) *TimeOfDay {
	t, err := Parse(s)
	if err != nil {
		return nil
	}
	return &t
}
