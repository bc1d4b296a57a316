// Package activity defines the normalized Strava activity record and the
// JSON store that persists the fetched record set.
package activity

import (
	"fmt"
	"time"
)

// MetersPerMile converts meters to statute miles.
const MetersPerMile = 0.000621371

// Activity is one normalized Strava activity. Records are immutable once
// fetched; the full set is overwritten on each fetch.
type Activity struct {
	StartDate          time.Time `json:"start_date"`
	StartDateLocal     time.Time `json:"start_date_local"`
	Name               string    `json:"name"`
	Type               string    `json:"type"`
	Timezone           string    `json:"timezone,omitempty"`
	ID                 int64     `json:"id"`
	Distance           float64   `json:"distance"`
	MovingTime         int       `json:"moving_time"`
	ElapsedTime        int       `json:"elapsed_time"`
	TotalElevationGain float64   `json:"total_elevation_gain"`
	KudosCount         int       `json:"kudos_count"`
	PhotoCount         int       `json:"total_photo_count"`
	Commute            bool      `json:"commute"`
}

// Miles returns the activity distance in miles.
func (a Activity) Miles() float64 {
	return a.Distance * MetersPerMile
}

// StopTime returns elapsed minus moving time in seconds.
func (a Activity) StopTime() int {
	return a.ElapsedTime - a.MovingTime
}

// Permalink returns the Strava web URL for the activity.
func (a Activity) Permalink() string {
	return fmt.Sprintf("https://www.strava.com/activities/%d", a.ID)
}

// Local returns the athlete-clock start time. Strava supplies
// start_date_local directly; when it is missing the UTC timestamp is
// converted through the fallback IANA zone name.
func (a Activity) Local(fallbackZone string) time.Time {
	if !a.StartDateLocal.IsZero() {
		return a.StartDateLocal
	}
	if loc, err := time.LoadLocation(fallbackZone); err == nil {
		return a.StartDate.In(loc)
	}
	return a.StartDate
}
