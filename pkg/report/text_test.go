package report

import (
	"strings"
	"testing"
	"time"

	"github.com/velograph/velograph/pkg/activity"
	"github.com/velograph/velograph/pkg/commute"
)

func commuteActivity(id int64, local time.Time, distance float64, moving, elapsed int) activity.Activity {
	return activity.Activity{
		ID:             id,
		Name:           "Commute",
		Type:           "Ride",
		StartDate:      local.UTC(),
		StartDateLocal: local,
		Distance:       distance,
		MovingTime:     moving,
		ElapsedTime:    elapsed,
		Commute:        true,
	}
}

func classifyAndAggregate(t *testing.T, activities []activity.Activity, year int) commute.Report {
	t.Helper()
	policy := commute.Policy{CutoffYear: year, NoonBoundary: 12, FallbackZone: "UTC"}
	toWork, fromWork := commute.Classify(activities, policy)
	return commute.Aggregate(toWork, fromWork, year)
}

const wantReport = `===== STRAVA COMMUTE ANALYSIS =====

Analysis for commutes from 2024 onwards

Total commutes: 3
Total distance: 4.85 miles
Total elapsed time: 31m

Average departure TO work: 07:40
Average departure FROM work: 17:15

Earliest departure: 07:30 on 2024-01-08 (https://www.strava.com/activities/101)
Latest departure: 17:15 on 2024-01-08 (https://www.strava.com/activities/103)

Average commute TO work:
  Distance: 1.62 miles
  Moving time: 9.50 minutes
  Elapsed time: 10.50 minutes
  Stop time: 1.00 minutes

Average commute FROM work:
  Distance: 1.62 miles
  Moving time: 9.50 minutes
  Elapsed time: 10.50 minutes
  Stop time: 1.00 minutes

Quickest commute TO work:
  Date: 2024-01-08
  Distance: 1.55 miles
  Moving time: 9.00 minutes
  Elapsed time: 10.00 minutes
  Stop time: 1.00 minutes
  Link: https://www.strava.com/activities/101

Longest commute TO work:
  Date: 2024-01-10
  Distance: 1.68 miles
  Moving time: 10.00 minutes
  Elapsed time: 11.00 minutes
  Stop time: 1.00 minutes
  Link: https://www.strava.com/activities/102

Quickest commute FROM work:
  Date: 2024-01-08
  Distance: 1.62 miles
  Moving time: 9.50 minutes
  Elapsed time: 10.50 minutes
  Stop time: 1.00 minutes
  Link: https://www.strava.com/activities/103

Longest commute FROM work:
  Date: 2024-01-08
  Distance: 1.62 miles
  Moving time: 9.50 minutes
  Elapsed time: 10.50 minutes
  Stop time: 1.00 minutes
  Link: https://www.strava.com/activities/103

===================================
`

// The text layout is a regression surface: downstream jobs diff it, so the
// rendering must stay byte-for-byte stable.
func TestRenderFixedLayout(t *testing.T) {
	activities := []activity.Activity{
		commuteActivity(101, time.Date(2024, 1, 8, 7, 30, 0, 0, time.UTC), 2500, 540, 600),
		commuteActivity(102, time.Date(2024, 1, 10, 7, 50, 0, 0, time.UTC), 2700, 600, 660),
		commuteActivity(103, time.Date(2024, 1, 8, 17, 15, 0, 0, time.UTC), 2600, 570, 630),
	}

	got := Render(classifyAndAggregate(t, activities, 2024))

	if got != wantReport {
		t.Errorf("report mismatch:\ngot:\n%s\nwant:\n%s", got, wantReport)
	}
}

func TestRenderEmptyReport(t *testing.T) {
	got := Render(classifyAndAggregate(t, nil, 2023))

	for _, want := range []string{
		"Total commutes: 0\n",
		"Total distance: 0.00 miles\n",
		"Total elapsed time: 0m\n",
		"Average departure TO work: --:--\n",
		"Average departure FROM work: --:--\n",
		"  Distance: 0.00 miles\n",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("empty report missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "Quickest") || strings.Contains(got, "Longest") {
		t.Errorf("empty report should omit extrema blocks:\n%s", got)
	}
	if strings.Contains(got, "Earliest departure") {
		t.Errorf("empty report should omit departure extremes:\n%s", got)
	}
	if !strings.HasSuffix(got, "===================================\n") {
		t.Errorf("report should end with the separator line:\n%s", got)
	}
}

// The two scenarios below mirror real seasons of commute data and pin the
// headline totals exactly.
func TestSeasonTotals(t *testing.T) {
	tests := []struct {
		name         string
		legs         int
		baseMeters   float64
		lastMeters   float64
		baseElapsed  int
		lastElapsed  int
		wantCount    string
		wantDistance string
		wantElapsed  string
	}{
		{"thirty-four legs", 34, 2862, 2872, 639, 633, "Total commutes: 34", "Total distance: 60.47 miles", "Total elapsed time: 6h 2m"},
		{"thirty-six legs", 36, 2866, 2880, 638, 650, "Total commutes: 36", "Total distance: 64.12 miles", "Total elapsed time: 6h 23m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var activities []activity.Activity
			start := time.Date(2023, 1, 9, 8, 0, 0, 0, time.UTC)
			for i := 0; i < tt.legs; i++ {
				meters, elapsed := tt.baseMeters, tt.baseElapsed
				if i == tt.legs-1 {
					meters, elapsed = tt.lastMeters, tt.lastElapsed
				}
				local := start.AddDate(0, 0, i/2)
				if i%2 == 1 {
					local = local.Add(9 * time.Hour) // evening leg
				}
				activities = append(activities, commuteActivity(int64(1000+i), local, meters, elapsed-30, elapsed))
			}

			got := Render(classifyAndAggregate(t, activities, 2023))

			for _, want := range []string{tt.wantCount, tt.wantDistance, tt.wantElapsed} {
				if !strings.Contains(got, want) {
					t.Errorf("report missing %q:\n%s", want, got)
				}
			}
		})
	}
}
