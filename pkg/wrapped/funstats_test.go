package wrapped

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velograph/velograph/pkg/activity"
)

func TestComputeFunStats(t *testing.T) {
	s, err := ComputeFunStats(lifetimeActivities(), "UTC")
	require.NoError(t, err)

	assert.Equal(t, 4, s.TotalActivities)
	assert.InDelta(t, 28.107, s.TotalMiles, 0.01)
	assert.InDelta(t, 4.25, s.TotalMovingHours, 0.001)
	assert.InDelta(t, 400*3.28084, s.ElevationFeet, 0.01)
	// Mean of 10, 10, 6.667 and 2.071 mph.
	assert.InDelta(t, 7.185, s.AvgSpeedMPH, 0.01)
	assert.Equal(t, "Monday", s.MostActiveDay)
	assert.Equal(t, 7, s.MostActiveHour)
	assert.Equal(t, "Ride", s.FavoriteType)
	assert.InDelta(t, 10.0, s.LongestMiles, 0.01)
	assert.InDelta(t, 300*3.28084, s.HighestGainFeet, 0.01)
}

func TestComputeFunStatsEmpty(t *testing.T) {
	_, err := ComputeFunStats(nil, "UTC")
	assert.ErrorIs(t, err, ErrNoData)
}

func TestComputeFunStatsZeroMovingTime(t *testing.T) {
	activities := []activity.Activity{
		{ID: 1, Type: "Ride", StartDate: time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC), Distance: 1609.344, MovingTime: 3600},
		{ID: 2, Type: "Ride", StartDate: time.Date(2024, 1, 2, 8, 0, 0, 0, time.UTC), Distance: 1609.344},
	}

	s, err := ComputeFunStats(activities, "UTC")
	require.NoError(t, err)

	// The zero-moving-time record counts everywhere except the speed mean.
	assert.Equal(t, 2, s.TotalActivities)
	assert.InDelta(t, 1.0, s.AvgSpeedMPH, 0.01)
}

func TestRenderFunStats(t *testing.T) {
	s := FunStats{
		TotalActivities:  4,
		TotalMiles:       28.107,
		TotalMovingHours: 4.25,
		ElevationFeet:    1312.336,
		AvgSpeedMPH:      7.25,
		MostActiveDay:    "Monday",
		MostActiveHour:   7,
		FavoriteType:     "Ride",
		LongestMiles:     10,
		HighestGainFeet:  984.252,
	}

	got := RenderFunStats(s)

	want := strings.Join([]string{
		"Fun Strava Statistics",
		"====================",
		"",
		"Total Activities: 4",
		"Total Distance (miles): 28.11",
		"Total Moving Time (hours): 4.25",
		"Total Elevation Gain (feet): 1312.34",
		"Average Speed (mph): 7.25",
		"Most Active Day: Monday",
		"Most Active Hour: 7:00",
		"Favorite Activity Type: Ride",
		"Longest Activity (miles): 10.00",
		"Highest Elevation Gain (feet): 984.25",
		"",
	}, "\n")
	assert.Equal(t, want, got)
}
