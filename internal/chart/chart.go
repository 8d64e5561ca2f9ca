// Package chart draws how many promotions are running at each hour of a day.
package chart

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/julianstephens/happyhour/internal/constants"
	"github.com/julianstephens/happyhour/internal/models"
	"github.com/julianstephens/happyhour/internal/window"
)

// Counts holds one value per hour, 00:00 through 23:00.
type Counts [24]int

// Series is a named set of hourly counts.
type Series struct {
	Name   string
	Counts Counts
}

// HourlyActivity counts, for each hour H, the promotions whose window
// contains H:00. When day is non-nil only promotions running that day count.
func HourlyActivity(promos []models.Promotion, day *time.Weekday) Counts {
	var counts Counts
	for _, p := range promos {
		if day != nil && !p.AvailableOn(*day) {
			continue
		}
		for h := 0; h < 24; h++ {
			if p.ActiveAt(window.Clock(h, 0, 0)) {
				counts[h]++
			}
		}
	}
	return counts
}

// ByZone returns one series per zone, sorted by zone name. Promotions without
// a zone are grouped under "Other".
func ByZone(promos []models.Promotion, day *time.Weekday) []Series {
	grouped := make(map[string][]models.Promotion)
	for _, p := range promos {
		zone := p.Zone
		if zone == "" {
			zone = "Other"
		}
		grouped[zone] = append(grouped[zone], p)
	}

	zones := make([]string, 0, len(grouped))
	for z := range grouped {
		zones = append(zones, z)
	}
	sort.Strings(zones)

	series := make([]Series, 0, len(zones))
	for _, z := range zones {
		series = append(series, Series{Name: z, Counts: HourlyActivity(grouped[z], day)})
	}
	return series
}

// HourLabels returns "12 AM" through "11 PM".
func HourLabels() []string {
	labels := make([]string, 24)
	for h := range labels {
		labels[h] = window.Clock(h, 0, 0).On(time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)).Format("3 PM")
	}
	return labels
}

// Render writes a bar chart page for series to w. Multiple series are stacked.
func Render(w io.Writer, title, subtitle string, series ...Series) error {
	if len(series) == 0 {
		return fmt.Errorf("no series to render")
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: constants.AppName,
			Width:     "1000px",
			Height:    "500px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: subtitle,
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(len(series) > 1), Top: "bottom"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Hour"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Active promotions"}),
	)

	bar.SetXAxis(HourLabels())
	for _, s := range series {
		data := make([]opts.BarData, len(s.Counts))
		for h, n := range s.Counts {
			data[h] = opts.BarData{Value: n}
		}
		bar.AddSeries(s.Name, data, charts.WithBarChartOpts(opts.BarChart{Stack: "total"}))
	}

	if err := bar.Render(w); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	return nil
}
