// Package report renders the aggregate commute report: a byte-stable text
// artifact for regression testing plus a colorized terminal view.
package report

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/velograph/velograph/pkg/commute"
	"github.com/velograph/velograph/pkg/timefmt"
)

const (
	header    = "===== STRAVA COMMUTE ANALYSIS ====="
	separator = "==================================="
)

// Render produces the fixed text layout. The output is byte-stable for a
// given report; regression tests compare it verbatim.
func Render(r commute.Report) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n\n", header)
	fmt.Fprintf(&b, "Analysis for commutes from %d onwards\n\n", r.CutoffYear)

	fmt.Fprintf(&b, "Total commutes: %d\n", r.TotalCount)
	fmt.Fprintf(&b, "Total distance: %.2f miles\n", r.TotalMiles)
	fmt.Fprintf(&b, "Total elapsed time: %s\n\n", timefmt.HumanMinutes(float64(r.TotalElapsedSeconds)/60))

	fmt.Fprintf(&b, "Average departure TO work: %s\n", timefmt.Clock(r.ToWork.AvgDepartureSeconds))
	fmt.Fprintf(&b, "Average departure FROM work: %s\n\n", timefmt.Clock(r.FromWork.AvgDepartureSeconds))

	if r.Earliest != nil && r.Latest != nil {
		fmt.Fprintf(&b, "Earliest departure: %s on %s (%s)\n",
			timefmt.Clock(r.Earliest.Departure), r.Earliest.LocalStart.Format("2006-01-02"), r.Earliest.Permalink())
		fmt.Fprintf(&b, "Latest departure: %s on %s (%s)\n\n",
			timefmt.Clock(r.Latest.Departure), r.Latest.LocalStart.Format("2006-01-02"), r.Latest.Permalink())
	}

	writeAverages(&b, "TO", r.ToWork)
	writeAverages(&b, "FROM", r.FromWork)

	writeExtremum(&b, "Quickest", "TO", r.ToWork.Quickest)
	writeExtremum(&b, "Longest", "TO", r.ToWork.Longest)
	writeExtremum(&b, "Quickest", "FROM", r.FromWork.Quickest)
	writeExtremum(&b, "Longest", "FROM", r.FromWork.Longest)

	fmt.Fprintf(&b, "%s\n", separator)
	return b.String()
}

func writeAverages(b *strings.Builder, direction string, s commute.DirectionStats) {
	fmt.Fprintf(b, "Average commute %s work:\n", direction)
	fmt.Fprintf(b, "  Distance: %.2f miles\n", s.AvgDistanceMiles)
	fmt.Fprintf(b, "  Moving time: %.2f minutes\n", s.AvgMovingMinutes)
	fmt.Fprintf(b, "  Elapsed time: %.2f minutes\n", s.AvgElapsedMinutes)
	fmt.Fprintf(b, "  Stop time: %.2f minutes\n\n", s.AvgStopMinutes)
}

func writeExtremum(b *strings.Builder, label, direction string, leg *commute.Leg) {
	if leg == nil {
		return
	}
	fmt.Fprintf(b, "%s commute %s work:\n", label, direction)
	fmt.Fprintf(b, "  Date: %s\n", leg.LocalStart.Format("2006-01-02"))
	fmt.Fprintf(b, "  Distance: %.2f miles\n", leg.Miles())
	fmt.Fprintf(b, "  Moving time: %.2f minutes\n", float64(leg.MovingTime)/60)
	fmt.Fprintf(b, "  Elapsed time: %.2f minutes\n", float64(leg.ElapsedTime)/60)
	fmt.Fprintf(b, "  Stop time: %.2f minutes\n", float64(leg.StopTime())/60)
	fmt.Fprintf(b, "  Link: %s\n\n", leg.Permalink())
}

// WriteFile renders the report into the output directory, named by cutoff
// year so successive years keep their own history.
func WriteFile(r commute.Report, outputDir string, logger *slog.Logger) (string, error) {
	if err := os.MkdirAll(outputDir, 0o750); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}

	path := filepath.Join(outputDir, fmt.Sprintf("commute_analysis_%d_to_present.txt", r.CutoffYear))
	if err := os.WriteFile(path, []byte(Render(r)), 0o644); err != nil {
		return "", fmt.Errorf("writing report: %w", err)
	}

	logger.Info("wrote commute report", "path", path)
	return path, nil
}
