package wrapped

import (
	"fmt"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/velograph/velograph/pkg/timefmt"
)

// writeHTML renders the wrapped card as an interactive bar chart of the
// headline numbers, subtitled with the non-numeric stats.
func writeHTML(s Summary, path string) error {
	labels := []string{"Activities", "Bike miles", "Run miles", "Elevation (kft)", "Kudos", "Photos"}
	data := []opts.BarData{
		{Value: s.TotalActivities},
		{Value: int(s.BikeMiles)},
		{Value: int(s.RunMiles)},
		{Value: int(s.ElevationFeet / 1000)},
		{Value: s.Kudos},
		{Value: s.Photos},
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Strava Lifetime Stats",
			Subtitle: fmt.Sprintf("Moving time %s · favorite: %s", timefmt.HumanMinutes(s.MovingMinutes), s.MostCommonType),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	bar.SetXAxis(labels).AddSeries("Lifetime", data)

	page := components.NewPage()
	page.AddCharts(bar)

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
