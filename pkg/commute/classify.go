package commute

import (
	"strings"
	"time"

	"github.com/velograph/velograph/pkg/activity"
)

// Classify filters the record set down to commute legs at or after Jan 1 of
// the cutoff year and buckets them by direction. Records with a missing
// start timestamp are skipped rather than aborting the run. Classification
// is deterministic: the same inputs and policy always produce the same
// buckets, in input order.
func Classify(activities []activity.Activity, p Policy) (toWork, fromWork []Leg) {
	for _, a := range activities {
		if !a.Commute {
			continue
		}
		if a.StartDate.IsZero() && a.StartDateLocal.IsZero() {
			continue
		}

		local := a.Local(p.FallbackZone)
		if local.Year() < p.CutoffYear {
			continue
		}

		leg := Leg{
			Activity:   a,
			LocalStart: local,
			Departure:  secondsSinceMidnight(local),
		}
		leg.Direction = p.direction(a.Name, local)

		if leg.Direction == ToWork {
			toWork = append(toWork, leg)
		} else {
			fromWork = append(fromWork, leg)
		}
	}
	return toWork, fromWork
}

func (p Policy) direction(name string, local time.Time) Direction {
	if p.UseNameTag {
		lower := strings.ToLower(name)
		switch {
		case strings.Contains(lower, "to work"):
			return ToWork
		case strings.Contains(lower, "from work"):
			return FromWork
		}
		// No tag in the name, fall through to the clock rule.
	}
	if local.Hour() < p.NoonBoundary {
		return ToWork
	}
	return FromWork
}

func secondsSinceMidnight(t time.Time) int {
	return t.Hour()*3600 + t.Minute()*60 + t.Second()
}
