// Package wrapped computes and renders the lifetime "Wrapped" summary over
// the full activity record set.
package wrapped

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/velograph/velograph/pkg/activity"
	"github.com/velograph/velograph/pkg/timefmt"
)

const feetPerMeter = 3.28084

// Summary holds lifetime statistics across all fetched activities.
type Summary struct {
	MostCommonType  string
	TotalActivities int
	BikeMiles       float64
	RunMiles        float64
	MovingMinutes   float64
	ElevationFeet   float64
	Kudos           int
	Photos          int
}

// ErrNoData is returned when the record set is empty.
var ErrNoData = errors.New("wrapped: no activity data found")

// Summarize computes the lifetime summary in one pass.
func Summarize(activities []activity.Activity) (Summary, error) {
	if len(activities) == 0 {
		return Summary{}, ErrNoData
	}

	var s Summary
	typeCounts := make(map[string]int)
	for _, a := range activities {
		s.TotalActivities++
		s.MovingMinutes += float64(a.MovingTime) / 60
		s.ElevationFeet += a.TotalElevationGain * feetPerMeter
		s.Kudos += a.KudosCount
		s.Photos += a.PhotoCount
		typeCounts[a.Type]++

		switch a.Type {
		case "Ride":
			s.BikeMiles += a.Miles()
		case "Run":
			s.RunMiles += a.Miles()
		}
	}

	s.MostCommonType = mostCommon(typeCounts)
	return s, nil
}

// mostCommon picks the most frequent activity type, ties broken
// alphabetically for determinism.
func mostCommon(counts map[string]int) string {
	types := make([]string, 0, len(counts))
	for t := range counts {
		types = append(types, t)
	}
	sort.Strings(types)

	best, bestCount := "", -1
	for _, t := range types {
		if counts[t] > bestCount {
			best, bestCount = t, counts[t]
		}
	}
	return best
}

// Render produces the wrapped text artifact.
func Render(s Summary) string {
	var b strings.Builder
	b.WriteString("Strava Lifetime Stats\n")
	b.WriteString("=====================\n\n")
	fmt.Fprintf(&b, "Total Activities: %d\n", s.TotalActivities)
	fmt.Fprintf(&b, "Bike Miles: %.0f\n", s.BikeMiles)
	fmt.Fprintf(&b, "Run Miles: %.0f\n", s.RunMiles)
	fmt.Fprintf(&b, "Moving Time: %s\n", timefmt.HumanMinutes(s.MovingMinutes))
	fmt.Fprintf(&b, "Elevation Gain (ft): %.0f\n", s.ElevationFeet)
	fmt.Fprintf(&b, "Kudos: %d\n", s.Kudos)
	fmt.Fprintf(&b, "Photos: %d\n", s.Photos)
	fmt.Fprintf(&b, "Most Common: %s\n", s.MostCommonType)
	return b.String()
}

// WriteFiles renders the text, HTML and fun-stats wrapped artifacts. Each
// artifact fails independently.
func WriteFiles(activities []activity.Activity, outputDir, fallbackZone string, logger *slog.Logger) error {
	s, err := Summarize(activities)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(outputDir, 0o750); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	var errs []error

	textPath := filepath.Join(outputDir, "strava_wrapped.txt")
	if err := os.WriteFile(textPath, []byte(Render(s)), 0o644); err != nil {
		logger.Error("wrapped text render failed", "error", err)
		errs = append(errs, fmt.Errorf("strava_wrapped.txt: %w", err))
	} else {
		logger.Info("wrote wrapped summary", "path", textPath)
	}

	htmlPath := filepath.Join(outputDir, "strava_wrapped.html")
	if err := writeHTML(s, htmlPath); err != nil {
		logger.Error("wrapped html render failed", "error", err)
		errs = append(errs, fmt.Errorf("strava_wrapped.html: %w", err))
	} else {
		logger.Info("wrote wrapped summary", "path", htmlPath)
	}

	funPath := filepath.Join(outputDir, "fun_stats.txt")
	if fun, err := ComputeFunStats(activities, fallbackZone); err != nil {
		errs = append(errs, fmt.Errorf("fun_stats.txt: %w", err))
	} else if err := os.WriteFile(funPath, []byte(RenderFunStats(fun)), 0o644); err != nil {
		logger.Error("fun stats render failed", "error", err)
		errs = append(errs, fmt.Errorf("fun_stats.txt: %w", err))
	} else {
		logger.Info("wrote fun stats", "path", funPath)
	}

	return errors.Join(errs...)
}
