// Package charts renders static PNG and interactive HTML chart artifacts
// from the activity record set. Every chart is derived by binning local
// start times; there is no other state.
package charts

import (
	"sort"
	"strconv"
	"strings"

	"github.com/velograph/velograph/pkg/activity"
)

// MonthBin aggregates one calendar month of activities.
type MonthBin struct {
	Month       string // "2006-01"
	Miles       float64
	MovingHours float64
	Count       int
}

// MonthlyBins buckets activities by local calendar month, sorted
// chronologically.
func MonthlyBins(activities []activity.Activity, fallbackZone string) []MonthBin {
	byMonth := make(map[string]*MonthBin)
	for _, a := range activities {
		key := a.Local(fallbackZone).Format("2006-01")
		bin, ok := byMonth[key]
		if !ok {
			bin = &MonthBin{Month: key}
			byMonth[key] = bin
		}
		bin.Miles += a.Miles()
		bin.MovingHours += float64(a.MovingTime) / 3600
		bin.Count++
	}

	bins := make([]MonthBin, 0, len(byMonth))
	for _, bin := range byMonth {
		bins = append(bins, *bin)
	}
	sort.Slice(bins, func(i, j int) bool { return bins[i].Month < bins[j].Month })
	return bins
}

// TypeBin aggregates lifetime totals for one activity type.
type TypeBin struct {
	Type          string
	Miles         float64
	MovingHours   float64
	ElevationFeet float64
	Count         int
}

const feetPerMeter = 3.28084

// TypeBins buckets activities by type, sorted alphabetically.
func TypeBins(activities []activity.Activity) []TypeBin {
	byType := make(map[string]*TypeBin)
	for _, a := range activities {
		bin, ok := byType[a.Type]
		if !ok {
			bin = &TypeBin{Type: a.Type}
			byType[a.Type] = bin
		}
		bin.Miles += a.Miles()
		bin.MovingHours += float64(a.MovingTime) / 3600
		bin.ElevationFeet += a.TotalElevationGain * feetPerMeter
		bin.Count++
	}

	bins := make([]TypeBin, 0, len(byType))
	for _, bin := range byType {
		bins = append(bins, *bin)
	}
	sort.Slice(bins, func(i, j int) bool { return bins[i].Type < bins[j].Type })
	return bins
}

// Categories are the heatmap panels, one per high-level sport bucket.
var Categories = []string{"Run", "Ride", "Other"}

// Category maps an activity type onto a heatmap panel.
func Category(activityType string) string {
	switch strings.ToLower(activityType) {
	case "run":
		return "Run"
	case "ride", "bike", "cycling":
		return "Ride"
	}
	return "Other"
}

// HourCounts counts activities per local hour of day.
func HourCounts(activities []activity.Activity, fallbackZone string) [24]int {
	var counts [24]int
	for _, a := range activities {
		counts[a.Local(fallbackZone).Hour()]++
	}
	return counts
}

// WeekdayHourCounts counts activities per weekday and local hour,
// Monday-first to match the report reading order.
func WeekdayHourCounts(activities []activity.Activity, fallbackZone string) [7][24]int {
	var counts [7][24]int
	for _, a := range activities {
		local := a.Local(fallbackZone)
		day := (int(local.Weekday()) + 6) % 7 // Monday = 0
		counts[day][local.Hour()]++
	}
	return counts
}

// Weekdays are the row labels for WeekdayHourCounts.
var Weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// HourLabel formats an hour as "12am".."11pm".
func HourLabel(hour int) string {
	h := hour % 12
	if h == 0 {
		h = 12
	}
	suffix := "am"
	if hour >= 12 {
		suffix = "pm"
	}
	return strconv.Itoa(h) + suffix
}
