package charts

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/velograph/velograph/pkg/activity"
)

// RenderAll writes every chart artifact into outputDir. Renderers are
// independent, order-insensitive side effects: a failure is logged and
// joined into the returned error without blocking the others.
func RenderAll(activities []activity.Activity, fallbackZone, outputDir string, logger *slog.Logger) error {
	renderers := []struct {
		name   string
		render func() error
	}{
		{"monthly_distance.png", func() error {
			return MonthlyDistancePNG(activities, fallbackZone, filepath.Join(outputDir, "monthly_distance.png"))
		}},
		{"time_of_day.png", func() error {
			return TimeOfDayPNG(activities, fallbackZone, filepath.Join(outputDir, "time_of_day.png"))
		}},
		{"monthly_stats.html", func() error {
			return MonthlyStatsHTML(activities, fallbackZone, filepath.Join(outputDir, "monthly_stats.html"))
		}},
		{"time_distribution.html", func() error {
			return TimeDistributionHTML(activities, fallbackZone, filepath.Join(outputDir, "time_distribution.html"))
		}},
		{"activity_heatmap.html", func() error {
			return ActivityHeatmapHTML(activities, fallbackZone, filepath.Join(outputDir, "activity_heatmap.html"))
		}},
		{"activity_bubbles.html", func() error {
			return ActivityBubblesHTML(activities, filepath.Join(outputDir, "activity_bubbles.html"))
		}},
	}

	var errs []error
	for _, r := range renderers {
		if err := r.render(); err != nil {
			logger.Error("chart render failed", "artifact", r.name, "error", err)
			errs = append(errs, fmt.Errorf("%s: %w", r.name, err))
			continue
		}
		logger.Info("wrote chart", "artifact", r.name)
	}
	return errors.Join(errs...)
}
