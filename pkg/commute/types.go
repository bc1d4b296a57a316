// Package commute classifies activities into to-work / from-work legs and
// computes per-direction summary statistics.
package commute

import (
	"time"

	"github.com/velograph/velograph/pkg/activity"
)

// Direction of a commute leg.
type Direction int

// Directions.
const (
	ToWork Direction = iota
	FromWork
)

func (d Direction) String() string {
	if d == ToWork {
		return "TO work"
	}
	return "FROM work"
}

// Leg is an activity classified as a directional commute trip.
type Leg struct {
	activity.Activity
	LocalStart time.Time // athlete-clock start, resolved by the classifier
	Direction  Direction
	Departure  int // seconds since local midnight
}

// Policy controls classification. The to/from rule is configurable: the
// clock policy buckets by local departure hour against NoonBoundary, the
// name policy honors explicit "to work"/"from work" tags in the activity
// name and falls back to the clock rule.
type Policy struct {
	FallbackZone string
	CutoffYear   int
	NoonBoundary int
	UseNameTag   bool
}

// DirectionStats summarizes one direction bucket. Averages carry full
// precision; rounding happens at render time. Quickest and Longest are nil
// for an empty bucket.
type DirectionStats struct {
	Quickest            *Leg
	Longest             *Leg
	TotalDistanceMeters float64
	AvgDistanceMiles    float64
	AvgMovingMinutes    float64
	AvgElapsedMinutes   float64
	AvgStopMinutes      float64
	TotalElapsedSeconds int
	AvgDepartureSeconds int // -1 when the bucket is empty
	Count               int
}

// Report is the aggregate over both directions for a cutoff year.
type Report struct {
	Earliest            *Leg // earliest departure clock time across all legs
	Latest              *Leg
	ToWork              DirectionStats
	FromWork            DirectionStats
	CutoffYear          int
	TotalCount          int
	TotalMiles          float64
	TotalElapsedSeconds int
}
