package chart

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julianstephens/happyhour/internal/models"
	"github.com/julianstephens/happyhour/internal/window"
)

func promo(zone string, start, end int, days ...time.Weekday) models.Promotion {
	p := models.Promotion{
		Zone:  zone,
		Start: window.Ptr(window.Clock(start, 0, 0)),
		End:   window.Ptr(window.Clock(end, 0, 0)),
	}
	for _, d := range days {
		p.Days[d] = true
	}
	return p
}

func TestHourlyActivity(t *testing.T) {
	promos := []models.Promotion{
		promo("Downtown", 15, 18, time.Monday),
		promo("Downtown", 22, 2, time.Friday),
		{Zone: "Strip"}, // no window
	}

	counts := HourlyActivity(promos, nil)
	assert.Equal(t, 0, counts[14])
	assert.Equal(t, 1, counts[15])
	assert.Equal(t, 1, counts[17])
	assert.Equal(t, 0, counts[18], "end is exclusive")
	assert.Equal(t, 1, counts[22])
	assert.Equal(t, 1, counts[23])
	assert.Equal(t, 1, counts[0])
	assert.Equal(t, 1, counts[1])
	assert.Equal(t, 0, counts[2])

	monday := time.Monday
	counts = HourlyActivity(promos, &monday)
	assert.Equal(t, 1, counts[15])
	assert.Equal(t, 0, counts[22])
}

func TestByZone(t *testing.T) {
	series := ByZone([]models.Promotion{
		promo("Strip", 16, 19),
		promo("", 16, 17),
		promo("Downtown", 16, 18),
	}, nil)

	require.Len(t, series, 3)
	assert.Equal(t, "Downtown", series[0].Name)
	assert.Equal(t, "Other", series[1].Name)
	assert.Equal(t, "Strip", series[2].Name)
	assert.Equal(t, 1, series[2].Counts[18])
}

func TestHourLabels(t *testing.T) {
	labels := HourLabels()
	assert.Equal(t, "12 AM", labels[0])
	assert.Equal(t, "12 PM", labels[12])
	assert.Equal(t, "7 PM", labels[19])
}

func TestRender(t *testing.T) {
	var buf bytes.Buffer
	err := Render(&buf, "Happy hours by hour", "Monday", Series{Name: "All", Counts: Counts{15: 3}})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "<html")
	assert.Contains(t, buf.String(), "Happy hours by hour")

	assert.Error(t, Render(&buf, "empty", ""))
}
