package commute

import (
	"github.com/velograph/velograph/pkg/activity"
)

// Aggregate computes the report for both direction buckets in a single pass
// per bucket. Empty buckets produce zero-valued stats with nil extrema.
func Aggregate(toWork, fromWork []Leg, cutoffYear int) Report {
	r := Report{
		CutoffYear: cutoffYear,
		ToWork:     aggregateDirection(toWork),
		FromWork:   aggregateDirection(fromWork),
	}

	r.TotalCount = r.ToWork.Count + r.FromWork.Count
	r.TotalMiles = (r.ToWork.TotalDistanceMeters + r.FromWork.TotalDistanceMeters) * activity.MetersPerMile
	r.TotalElapsedSeconds = r.ToWork.TotalElapsedSeconds + r.FromWork.TotalElapsedSeconds

	for _, bucket := range [][]Leg{toWork, fromWork} {
		for i := range bucket {
			leg := &bucket[i]
			if r.Earliest == nil || departsBefore(leg, r.Earliest) {
				r.Earliest = leg
			}
			if r.Latest == nil || departsAfter(leg, r.Latest) {
				r.Latest = leg
			}
		}
	}

	return r
}

func aggregateDirection(legs []Leg) DirectionStats {
	stats := DirectionStats{AvgDepartureSeconds: -1}
	if len(legs) == 0 {
		return stats
	}

	var totalMoving, totalDeparture int
	for i := range legs {
		leg := &legs[i]
		stats.Count++
		stats.TotalDistanceMeters += leg.Distance
		stats.TotalElapsedSeconds += leg.ElapsedTime
		totalMoving += leg.MovingTime
		totalDeparture += leg.Departure

		if stats.Quickest == nil || quickerThan(leg, stats.Quickest) {
			stats.Quickest = leg
		}
		if stats.Longest == nil || longerThan(leg, stats.Longest) {
			stats.Longest = leg
		}
	}

	n := float64(stats.Count)
	stats.AvgDistanceMiles = stats.TotalDistanceMeters * activity.MetersPerMile / n
	stats.AvgMovingMinutes = float64(totalMoving) / n / 60
	stats.AvgElapsedMinutes = float64(stats.TotalElapsedSeconds) / n / 60
	stats.AvgStopMinutes = float64(stats.TotalElapsedSeconds-totalMoving) / n / 60
	stats.AvgDepartureSeconds = totalDeparture / stats.Count

	return stats
}

// quickerThan reports whether a beats b for the quickest-leg slot: lower
// elapsed time, ties broken by earlier date, then by smaller activity ID.
func quickerThan(a, b *Leg) bool {
	if a.ElapsedTime != b.ElapsedTime {
		return a.ElapsedTime < b.ElapsedTime
	}
	return tieBreak(a, b)
}

// longerThan reports whether a beats b for the longest-leg slot: higher
// elapsed time, same tie-break.
func longerThan(a, b *Leg) bool {
	if a.ElapsedTime != b.ElapsedTime {
		return a.ElapsedTime > b.ElapsedTime
	}
	return tieBreak(a, b)
}

func departsBefore(a, b *Leg) bool {
	if a.Departure != b.Departure {
		return a.Departure < b.Departure
	}
	return tieBreak(a, b)
}

func departsAfter(a, b *Leg) bool {
	if a.Departure != b.Departure {
		return a.Departure > b.Departure
	}
	return tieBreak(a, b)
}

func tieBreak(a, b *Leg) bool {
	if !a.StartDate.Equal(b.StartDate) {
		return a.StartDate.Before(b.StartDate)
	}
	return a.ID < b.ID
}
