package filter

import (
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/happyhour/internal/constants"
	"github.com/julianstephens/happyhour/internal/window"
)

// Preset is a quick-select day and time.
type Preset string

const (
	PresetNow               Preset = "now"
	PresetTonight           Preset = "tonight"
	PresetTomorrowAfternoon Preset = "tomorrow-afternoon"
	PresetTomorrowNight     Preset = "tomorrow-night"
)

// Presets lists every preset in display order.
var Presets = []Preset{PresetNow, PresetTonight, PresetTomorrowAfternoon, PresetTomorrowNight}

var (
	tonight   = window.Clock(19, 0, 0)
	afternoon = window.Clock(15, 0, 0)
)

// DefaultTime is the time-of-day used when none is chosen.
func DefaultTime() window.TimeOfDay {
	return tonight
}

// Label returns the button text for the preset.
func (p Preset) Label() string {
	switch p {
	case PresetNow:
		return "NOW"
	case PresetTonight:
		return "TONIGHT"
	case PresetTomorrowAfternoon:
		return "Tomorrow Afternoon"
	case PresetTomorrowNight:
		return "Tomorrow Night"
	}
	return string(p)
}

// Resolve returns the weekday and time the preset selects, relative to now.
// Times are taken in now's location.
func (p Preset) Resolve(now time.Time) (time.Weekday, window.TimeOfDay) {
	tomorrow := now.AddDate(0, 0, 1)
	switch p {
	case PresetTonight:
		return now.Weekday(), tonight
	case PresetTomorrowAfternoon:
		return tomorrow.Weekday(), afternoon
	case PresetTomorrowNight:
		return tomorrow.Weekday(), tonight
	default:
		return now.Weekday(), window.FromTime(now).Truncate(time.Second)
	}
}

// Apply sets c's day and time from the preset.
func (p Preset) Apply(c *Criteria, now time.Time) {
	day, at := p.Resolve(now)
	c.Day = &day
	c.At = &at
}

// ParsePreset accepts a preset name in any case, with spaces or underscores
// in place of dashes.
func ParsePreset(s string) (Preset, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	norm = strings.NewReplacer(" ", "-", "_", "-").Replace(norm)
	for _, p := range Presets {
		if string(p) == norm {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown preset %q (want one of now, tonight, tomorrow-afternoon, tomorrow-night)", s)
}

// ParseDay reads a weekday name or three-letter abbreviation. "" and "any"
// return nil.
func ParseDay(s string) (*time.Weekday, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	if norm == "" || norm == strings.ToLower(constants.AnyOption) {
		return nil, nil
	}
	for d := time.Sunday; d <= time.Saturday; d++ {
		name := strings.ToLower(d.String())
		if norm == name || norm == name[:3] {
			day := d
			return &day, nil
		}
	}
	return nil, fmt.Errorf("invalid day %q", s)
}

// ParseAt reads a time-of-day filter. "" returns the default time and "any"
// disables the time filter.
func ParseAt(s string) (*window.TimeOfDay, error) {
	norm := strings.TrimSpace(s)
	if norm == "" {
		t := DefaultTime()
		return &t, nil
	}
	if strings.EqualFold(norm, constants.AnyOption) {
		return nil, nil
	}
	t, err := window.Parse(norm)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// DayLabel returns the weekday name or "Any".
func DayLabel(d *time.Weekday) string {
	if d == nil {
		return constants.AnyOption
	}
	return d.String()
}
