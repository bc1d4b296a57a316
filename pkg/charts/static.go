package charts

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/velograph/velograph/pkg/activity"
)

// MonthlyDistancePNG writes a bar chart of miles per month.
func MonthlyDistancePNG(activities []activity.Activity, fallbackZone, path string) error {
	bins := MonthlyBins(activities, fallbackZone)
	if len(bins) == 0 {
		return fmt.Errorf("no activity data for %s", path)
	}

	bars := make([]chart.Value, 0, len(bins))
	for _, bin := range bins {
		bars = append(bars, chart.Value{Label: bin.Month, Value: bin.Miles})
	}

	graph := chart.BarChart{
		Title:    "Monthly Distance (miles)",
		Height:   512,
		BarWidth: 24,
		Bars:     bars,
	}

	return renderPNG(&graph, path)
}

// TimeOfDayPNG writes a bar chart of activity counts by local hour.
func TimeOfDayPNG(activities []activity.Activity, fallbackZone, path string) error {
	counts := HourCounts(activities, fallbackZone)

	bars := make([]chart.Value, 0, 24)
	for hour, count := range counts {
		bars = append(bars, chart.Value{Label: strconv.Itoa(hour), Value: float64(count)})
	}

	graph := chart.BarChart{
		Title:    "Activity Distribution by Hour of Day",
		Height:   512,
		BarWidth: 18,
		Bars:     bars,
	}

	return renderPNG(&graph, path)
}

func renderPNG(graph *chart.BarChart, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("creating chart directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	renderErr := graph.Render(chart.PNG, file)
	if closeErr := file.Close(); closeErr != nil && renderErr == nil {
		renderErr = closeErr
	}
	if renderErr != nil {
		return fmt.Errorf("rendering %s: %w", path, renderErr)
	}
	return nil
}
