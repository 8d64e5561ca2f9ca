// Package window decides whether a time of day falls inside a happy-hour
// window. Windows are half-open, [start, end), and may wrap past midnight.
package window

import (
	"fmt"
	"time"
)

// TimeOfDay is a wall-clock time measured as the offset from midnight.
// Valid values lie in [0, 24h).
type TimeOfDay time.Duration

const (
	Midnight TimeOfDay = 0
	day                = TimeOfDay(24 * time.Hour)
)

// allDayCutoff is the earliest end time that still counts as "all day"
// for a window starting at midnight (e.g. 12:00 AM–11:59 PM listings).
var allDayCutoff = Clock(23, 0, 0)

// Clock builds a TimeOfDay from hour, minute and second components.
func Clock(hour, minute, second int) TimeOfDay {
	return TimeOfDay(time.Duration(hour)*time.Hour +
		time.Duration(minute)*time.Minute +
		time.Duration(second)*time.Second)
}

// FromTime returns the time-of-day portion of t in t's location.
func FromTime(t time.Time) TimeOfDay {
	return Clock(t.Hour(), t.Minute(), t.Second()) + TimeOfDay(t.Nanosecond())
}

// Ptr returns a pointer to t. Records use nil for a missing time.
func Ptr(t TimeOfDay) *TimeOfDay {
	return &t
}

func (t TimeOfDay) Hour() int   { return int(time.Duration(t) / time.Hour) }
func (t TimeOfDay) Minute() int { return int(time.Duration(t) % time.Hour / time.Minute) }
func (t TimeOfDay) Second() int { return int(time.Duration(t) % time.Minute / time.Second) }

// Truncate drops everything finer than d, e.g. Truncate(time.Second).
func (t TimeOfDay) Truncate(d time.Duration) TimeOfDay {
	return TimeOfDay(time.Duration(t).Truncate(d))
}

// Valid reports whether t is inside a single day.
func (t TimeOfDay) Valid() bool {
	return t >= 0 && t < day
}

// String formats t as HH:MM:SS.
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour(), t.Minute(), t.Second())
}

// Format12h formats t as "3:04 PM".
func (t TimeOfDay) Format12h() string {
	return t.On(time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)).Format("3:04 PM")
}

// On places t on the calendar day of date, in date's location.
func (t TimeOfDay) On(date time.Time) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, date.Location()).Add(time.Duration(t))
}

// IsWithinWindow reports whether query falls inside [start, end).
//
// When start <= end the window is same-day. When start > end the window spans
// midnight and matches query >= start or query < end. A missing bound never
// matches. A window with start == end is treated as same-day and therefore
// matches nothing; all-day listings are recognised separately by IsAllDay.
func IsWithinWindow(start, end *TimeOfDay, query TimeOfDay) bool {
	if start == nil || end == nil {
		return false
	}
	s, e := *start, *end
	if s <= e {
		return s <= query && query < e
	}
	return query >= s || query < e
}

// IsAllDay reports whether a window runs from midnight to at least 23:00.
func IsAllDay(start, end *TimeOfDay) bool {
	if start == nil || end == nil {
		return false
	}
	return *start == Midnight && *end >= allDayCutoff
}
