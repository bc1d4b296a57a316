// Package timefmt formats durations and clock times for reports.
package timefmt

import (
	"fmt"
	"strings"
)

const (
	minutesPerYear = 525600 // 365*24*60
	minutesPerDay  = 1440
)

// HumanMinutes formats a duration given in minutes as a compact string such
// as "30s", "5m", "2h 10m", "1d 12h" or "1y 2d". Sub-minute durations show
// seconds; zero renders "0m".
func HumanMinutes(totalMinutes float64) string {
	if totalMinutes > 0 && totalMinutes < 1 {
		return fmt.Sprintf("%ds", int(totalMinutes*60))
	}

	minutes := int(totalMinutes)
	years := minutes / minutesPerYear
	minutes %= minutesPerYear
	days := minutes / minutesPerDay
	minutes %= minutesPerDay
	hours := minutes / 60
	minutes %= 60

	var parts []string
	if years > 0 {
		parts = append(parts, fmt.Sprintf("%dy", years))
	}
	if days > 0 {
		parts = append(parts, fmt.Sprintf("%dd", days))
	}
	if hours > 0 {
		parts = append(parts, fmt.Sprintf("%dh", hours))
	}
	if minutes > 0 {
		parts = append(parts, fmt.Sprintf("%dm", minutes))
	}
	if len(parts) == 0 {
		return "0m"
	}
	return strings.Join(parts, " ")
}

// Clock formats seconds since midnight as HH:MM, or "--:--" for a negative
// value (no data).
func Clock(secondsSinceMidnight int) string {
	if secondsSinceMidnight < 0 {
		return "--:--"
	}
	h := secondsSinceMidnight / 3600 % 24
	m := secondsSinceMidnight / 60 % 60
	return fmt.Sprintf("%02d:%02d", h, m)
}
