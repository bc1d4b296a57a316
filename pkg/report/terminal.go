package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/velograph/velograph/pkg/commute"
	"github.com/velograph/velograph/pkg/timefmt"
)

// PrintTerminal writes a colorized summary of the report to w, followed by
// a departure-hour histogram. The persisted text artifact stays plain; this
// view is terminal-only.
func PrintTerminal(w io.Writer, r commute.Report, legs []commute.Leg) {
	title := color.New(color.Bold)
	dim := color.New(color.FgHiBlack)

	fmt.Fprintf(w, "\n🚲 Commute Analysis — %d onwards\n", r.CutoffYear)
	fmt.Fprintln(w, strings.Repeat("─", 50))

	fmt.Fprintf(w, "📊 Commutes:      %s\n", title.Sprintf("%d", r.TotalCount))
	fmt.Fprintf(w, "📏 Distance:      %s miles\n", title.Sprintf("%.2f", r.TotalMiles))
	fmt.Fprintf(w, "⏱️  Elapsed:       %s\n", title.Sprint(timefmt.HumanMinutes(float64(r.TotalElapsedSeconds)/60)))

	printDirection(w, "🌅 To work", r.ToWork)
	printDirection(w, "🌇 From work", r.FromWork)

	if r.Earliest != nil && r.Latest != nil {
		fmt.Fprintf(w, "🐓 Earliest:      %s on %s %s\n",
			timefmt.Clock(r.Earliest.Departure), r.Earliest.LocalStart.Format("2006-01-02"), dim.Sprint(r.Earliest.Permalink()))
		fmt.Fprintf(w, "🦉 Latest:        %s on %s %s\n",
			timefmt.Clock(r.Latest.Departure), r.Latest.LocalStart.Format("2006-01-02"), dim.Sprint(r.Latest.Permalink()))
	}

	printHistogram(w, legs)
	fmt.Fprintln(w)
}

func printDirection(w io.Writer, label string, s commute.DirectionStats) {
	if s.Count == 0 {
		fmt.Fprintf(w, "%s:    no commutes\n", label)
		return
	}
	fmt.Fprintf(w, "%s:    %d legs, avg %.2f mi in %.2f min (departs %s)\n",
		label, s.Count, s.AvgDistanceMiles, s.AvgElapsedMinutes, timefmt.Clock(s.AvgDepartureSeconds))
}

// printHistogram renders departure counts per local hour, to-work legs in
// blue and from-work legs in yellow.
func printHistogram(w io.Writer, legs []commute.Leg) {
	if len(legs) == 0 {
		return
	}

	var toWork, fromWork [24]int
	for i := range legs {
		hour := legs[i].Departure / 3600 % 24
		if legs[i].Direction == commute.ToWork {
			toWork[hour]++
		} else {
			fromWork[hour]++
		}
	}

	fmt.Fprintf(w, "\n📈 Departures by hour\n")
	fmt.Fprintln(w, strings.Repeat("─", 50))

	blue := color.New(color.FgBlue)
	yellow := color.New(color.FgYellow)

	for hour := range 24 {
		total := toWork[hour] + fromWork[hour]
		if total == 0 {
			continue
		}
		line := fmt.Sprintf("%02d:00 (%2d) ", hour, total)
		line += blue.Sprint(strings.Repeat("█", toWork[hour]))
		line += yellow.Sprint(strings.Repeat("█", fromWork[hour]))
		fmt.Fprintln(w, line)
	}
}
