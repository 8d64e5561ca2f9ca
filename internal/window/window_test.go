package window

import (
	"testing"
	"time"
)

func TestIsWithinWindow(t *testing.T) {
	tests := []struct {
		name  string
		start *TimeOfDay
		end   *TimeOfDay
		query TimeOfDay
		want  bool
	}{
		{
			name:  "same-day inside",
			start: Ptr(Clock(15, 0, 0)),
			end:   Ptr(Clock(18, 0, 0)),
			query: Clock(16, 30, 0),
			want:  true,
		},
		{
			name:  "same-day start is inclusive",
			start: Ptr(Clock(15, 0, 0)),
			end:   Ptr(Clock(18, 0, 0)),
			query: Clock(15, 0, 0),
			want:  true,
		},
		{
			name:  "same-day end is exclusive",
			start: Ptr(Clock(15, 0, 0)),
			end:   Ptr(Clock(18, 0, 0)),
			query: Clock(18, 0, 0),
			want:  false,
		},
		{
			name:  "same-day one second before end",
			start: Ptr(Clock(15, 0, 0)),
			end:   Ptr(Clock(18, 0, 0)),
			query: Clock(17, 59, 59),
			want:  true,
		},
		{
			name:  "same-day before start",
			start: Ptr(Clock(15, 0, 0)),
			end:   Ptr(Clock(18, 0, 0)),
			query: Clock(14, 59, 59),
			want:  false,
		},
		{
			name:  "overnight late evening",
			start: Ptr(Clock(21, 0, 0)),
			end:   Ptr(Clock(2, 0, 0)),
			query: Clock(23, 30, 0),
			want:  true,
		},
		{
			name:  "overnight after midnight",
			start: Ptr(Clock(21, 0, 0)),
			end:   Ptr(Clock(2, 0, 0)),
			query: Clock(1, 0, 0),
			want:  true,
		},
		{
			name:  "overnight at midnight",
			start: Ptr(Clock(21, 0, 0)),
			end:   Ptr(Clock(2, 0, 0)),
			query: Midnight,
			want:  true,
		},
		{
			name:  "overnight end is exclusive",
			start: Ptr(Clock(21, 0, 0)),
			end:   Ptr(Clock(2, 0, 0)),
			query: Clock(2, 0, 0),
			want:  false,
		},
		{
			name:  "overnight afternoon gap",
			start: Ptr(Clock(21, 0, 0)),
			end:   Ptr(Clock(2, 0, 0)),
			query: Clock(15, 0, 0),
			want:  false,
		},
		{
			name:  "missing start",
			start: nil,
			end:   Ptr(Clock(18, 0, 0)),
			query: Clock(16, 0, 0),
			want:  false,
		},
		{
			name:  "missing end",
			start: Ptr(Clock(15, 0, 0)),
			end:   nil,
			query: Clock(16, 0, 0),
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsWithinWindow(tt.start, tt.end, tt.query); got != tt.want {
				t.Errorf("IsWithinWindow(%v, %v, %v) = %v, want %v", tt.start, tt.end, tt.query, got, tt.want)
			}
		})
	}
}

// Identical start and end take the same-day branch and never match. Listings
// like that only show up through the all-day flag.
func TestIsWithinWindow_EqualBoundsNeverMatch(t *testing.T) {
	bound := Clock(17, 0, 0)
	for h := 0; h < 24; h++ {
		for _, q := range []TimeOfDay{Clock(h, 0, 0), Clock(h, 30, 0), Clock(h, 59, 59)} {
			if IsWithinWindow(&bound, &bound, q) {
				t.Fatalf("IsWithinWindow(17:00, 17:00, %v) = true, want false", q)
			}
		}
	}

	midnight := Midnight
	if IsWithinWindow(&midnight, &midnight, Midnight) {
		t.Error("IsWithinWindow(00:00, 00:00, 00:00) = true, want false")
	}
}

func TestIsWithinWindow_OvernightCoversWholeRange(t *testing.T) {
	start, end := Clock(22, 0, 0), Clock(3, 0, 0)
	for q := Midnight; q < day; q += TimeOfDay(time.Minute) {
		want := q >= start || q < end
		if got := IsWithinWindow(&start, &end, q); got != want {
			t.Fatalf("IsWithinWindow(22:00, 03:00, %v) = %v, want %v", q, got, want)
		}
	}
}

func TestIsAllDay(t *testing.T) {
	tests := []struct {
		name  string
		start *TimeOfDay
		end   *TimeOfDay
		want  bool
	}{
		{"midnight to 23:00", Ptr(Midnight), Ptr(Clock(23, 0, 0)), true},
		{"midnight to 23:59", Ptr(Midnight), Ptr(Clock(23, 59, 0)), true},
		{"midnight to 22:59:59", Ptr(Midnight), Ptr(Clock(22, 59, 59)), false},
		{"one second past midnight", Ptr(Clock(0, 0, 1)), Ptr(Clock(23, 30, 0)), false},
		{"missing start", nil, Ptr(Clock(23, 30, 0)), false},
		{"missing end", Ptr(Midnight), nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsAllDay(tt.start, tt.end); got != tt.want {
				t.Errorf("IsAllDay() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTimeOfDayFormatting(t *testing.T) {
	tests := []struct {
		in      TimeOfDay
		want    string
		want12h string
	}{
		{Midnight, "00:00:00", "12:00 AM"},
		{Clock(9, 5, 7), "09:05:07", "9:05 AM"},
		{Clock(12, 0, 0), "12:00:00", "12:00 PM"},
		{Clock(21, 30, 0), "21:30:00", "9:30 PM"},
	}
	for _, tt := range tests {
		if got := tt.in.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
		if got := tt.in.Format12h(); got != tt.want12h {
			t.Errorf("Format12h() = %q, want %q", got, tt.want12h)
		}
	}
}

func TestFromTime(t *testing.T) {
	ts := time.Date(2025, 3, 14, 19, 45, 30, 500, time.UTC)
	got := FromTime(ts)
	want := Clock(19, 45, 30) + 500
	if got != want {
		t.Errorf("FromTime() = %d, want %d", got, want)
	}
	if got.Truncate(time.Second) != Clock(19, 45, 30) {
		t.Errorf("Truncate(time.Second) = %v, want 19:45:30", got.Truncate(time.Second))
	}
}
