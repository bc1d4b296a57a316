package charts

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/velograph/velograph/pkg/activity"
)

// MonthlyStatsHTML writes an interactive chart of monthly distance bars
// with a moving-time line on top.
func MonthlyStatsHTML(activities []activity.Activity, fallbackZone, path string) error {
	bins := MonthlyBins(activities, fallbackZone)
	if len(bins) == 0 {
		return fmt.Errorf("no activity data for %s", path)
	}

	months := make([]string, 0, len(bins))
	miles := make([]opts.BarData, 0, len(bins))
	hours := make([]opts.LineData, 0, len(bins))
	for _, bin := range bins {
		months = append(months, bin.Month)
		miles = append(miles, opts.BarData{Value: round2(bin.Miles)})
		hours = append(hours, opts.LineData{Value: round2(bin.MovingHours)})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Monthly Activity Statistics"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithDataZoomOpts(opts.DataZoom{Type: "slider"}),
	)
	bar.SetXAxis(months).AddSeries("Distance (miles)", miles)

	line := charts.NewLine()
	line.SetXAxis(months).AddSeries("Moving time (hours)", hours)
	bar.Overlap(line)

	return renderHTML(path, bar)
}

// TimeDistributionHTML writes an interactive chart of activity counts by
// local hour of day.
func TimeDistributionHTML(activities []activity.Activity, fallbackZone, path string) error {
	counts := HourCounts(activities, fallbackZone)

	labels := make([]string, 0, 24)
	data := make([]opts.BarData, 0, 24)
	for hour, count := range counts {
		labels = append(labels, HourLabel(hour))
		data = append(data, opts.BarData{Value: count})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Activity Distribution by Time of Day"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	bar.SetXAxis(labels).AddSeries("Activities", data)

	return renderHTML(path, bar)
}

// ActivityBubblesHTML writes an interactive scatter of lifetime totals per
// activity type: distance against elevation gain, bubble size scaled by
// moving time.
func ActivityBubblesHTML(activities []activity.Activity, path string) error {
	bins := TypeBins(activities)
	if len(bins) == 0 {
		return fmt.Errorf("no activity data for %s", path)
	}

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Activity Overview: Distance vs Elevation Gain",
			Subtitle: "Bubble size represents time spent",
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Total Distance (miles)", Type: "value"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Total Elevation Gain (feet)", Type: "value"}),
	)
	for _, bin := range bins {
		scatter.AddSeries(bin.Type, []opts.ScatterData{{
			Name:       bin.Type,
			Value:      []interface{}{round2(bin.Miles), round2(bin.ElevationFeet)},
			SymbolSize: bubbleSize(bin.MovingHours),
		}})
	}

	return renderHTML(path, scatter)
}

// bubbleSize maps moving hours onto a readable symbol diameter.
func bubbleSize(hours float64) int {
	size := int(10 + 4*math.Sqrt(hours))
	if size > 80 {
		size = 80
	}
	return size
}

// ActivityHeatmapHTML writes interactive weekday-by-hour heatmaps of
// activity counts, one panel per sport category.
func ActivityHeatmapHTML(activities []activity.Activity, fallbackZone, path string) error {
	if len(activities) == 0 {
		return fmt.Errorf("no activity data for %s", path)
	}

	byCategory := make(map[string][]activity.Activity)
	for _, a := range activities {
		cat := Category(a.Type)
		byCategory[cat] = append(byCategory[cat], a)
	}

	hourLabels := make([]string, 24)
	for hour := range hourLabels {
		hourLabels[hour] = strconv.Itoa(hour)
	}

	panels := make([]components.Charter, 0, len(Categories))
	for _, cat := range Categories {
		counts := WeekdayHourCounts(byCategory[cat], fallbackZone)

		maxCount := 0
		data := make([]opts.HeatMapData, 0, 7*24)
		for day := range counts {
			for hour, count := range counts[day] {
				data = append(data, opts.HeatMapData{Value: [3]interface{}{hour, day, count}})
				if count > maxCount {
					maxCount = count
				}
			}
		}
		if maxCount == 0 {
			continue
		}

		hm := charts.NewHeatMap()
		hm.SetGlobalOptions(
			charts.WithTitleOpts(opts.Title{Title: "Activity Heatmap by Day and Hour (" + cat + ")"}),
			charts.WithXAxisOpts(opts.XAxis{Type: "category", Data: hourLabels}),
			charts.WithYAxisOpts(opts.YAxis{Type: "category", Data: Weekdays}),
			charts.WithVisualMapOpts(opts.VisualMap{
				Calculable: opts.Bool(true),
				Min:        0,
				Max:        float32(maxCount),
			}),
		)
		hm.AddSeries("Activities", data)
		panels = append(panels, hm)
	}

	return renderHTML(path, panels...)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func renderHTML(path string, cs ...components.Charter) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("creating chart directory: %w", err)
	}

	page := components.NewPage()
	page.AddCharts(cs...)

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	renderErr := page.Render(file)
	if closeErr := file.Close(); closeErr != nil && renderErr == nil {
		renderErr = closeErr
	}
	if renderErr != nil {
		return fmt.Errorf("rendering %s: %w", path, renderErr)
	}
	return nil
}
