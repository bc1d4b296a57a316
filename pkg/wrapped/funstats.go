package wrapped

import (
	"fmt"
	"strings"

	"github.com/velograph/velograph/pkg/activity"
)

// FunStats holds the lighter lifetime statistics rendered next to the
// wrapped summary.
type FunStats struct {
	MostActiveDay    string
	MostActiveHour   int
	FavoriteType     string
	TotalActivities  int
	TotalMiles       float64
	TotalMovingHours float64
	ElevationFeet    float64
	AvgSpeedMPH      float64
	LongestMiles     float64
	HighestGainFeet  float64
}

// ComputeFunStats derives the fun statistics over the whole record set.
// The speed mean covers activities with recorded moving time; day and hour
// modes use the athlete clock with ties broken by the lower value.
func ComputeFunStats(activities []activity.Activity, fallbackZone string) (FunStats, error) {
	if len(activities) == 0 {
		return FunStats{}, ErrNoData
	}

	var s FunStats
	var speedSum float64
	var speedCount int
	dayCounts := make(map[string]int)
	typeCounts := make(map[string]int)
	var hourCounts [24]int

	for _, a := range activities {
		s.TotalActivities++
		s.TotalMiles += a.Miles()
		s.TotalMovingHours += float64(a.MovingTime) / 3600
		gain := a.TotalElevationGain * feetPerMeter
		s.ElevationFeet += gain
		if gain > s.HighestGainFeet {
			s.HighestGainFeet = gain
		}
		if a.Miles() > s.LongestMiles {
			s.LongestMiles = a.Miles()
		}
		if a.MovingTime > 0 {
			speedSum += a.Miles() / (float64(a.MovingTime) / 3600)
			speedCount++
		}

		local := a.Local(fallbackZone)
		dayCounts[local.Weekday().String()]++
		hourCounts[local.Hour()]++
		typeCounts[a.Type]++
	}

	if speedCount > 0 {
		s.AvgSpeedMPH = speedSum / float64(speedCount)
	}
	s.MostActiveDay = mostCommon(dayCounts)
	s.FavoriteType = mostCommon(typeCounts)
	best := -1
	for hour, count := range hourCounts {
		if count > best {
			best = count
			s.MostActiveHour = hour
		}
	}

	return s, nil
}

// RenderFunStats produces the fun-stats text artifact.
func RenderFunStats(s FunStats) string {
	var b strings.Builder
	b.WriteString("Fun Strava Statistics\n")
	b.WriteString("====================\n\n")
	fmt.Fprintf(&b, "Total Activities: %d\n", s.TotalActivities)
	fmt.Fprintf(&b, "Total Distance (miles): %.2f\n", s.TotalMiles)
	fmt.Fprintf(&b, "Total Moving Time (hours): %.2f\n", s.TotalMovingHours)
	fmt.Fprintf(&b, "Total Elevation Gain (feet): %.2f\n", s.ElevationFeet)
	fmt.Fprintf(&b, "Average Speed (mph): %.2f\n", s.AvgSpeedMPH)
	fmt.Fprintf(&b, "Most Active Day: %s\n", s.MostActiveDay)
	fmt.Fprintf(&b, "Most Active Hour: %d:00\n", s.MostActiveHour)
	fmt.Fprintf(&b, "Favorite Activity Type: %s\n", s.FavoriteType)
	fmt.Fprintf(&b, "Longest Activity (miles): %.2f\n", s.LongestMiles)
	fmt.Fprintf(&b, "Highest Elevation Gain (feet): %.2f\n", s.HighestGainFeet)
	return b.String()
}
