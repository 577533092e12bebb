package availability

import (
	"time"

	"github.com/vigilbook/vigil-booking/models"
)

// ExpandRules turns recurring weekly rules into the absolute free-time set
// they imply over the calendar dates in [from, to). Both bounds must be
// midnight-aligned. Overlapping rules union rather than conflict, and a
// provider with no matching rules simply yields an empty set.
func ExpandRules(rules []models.AvailabilityRule, from, to time.Time) IntervalSet {
	if len(rules) == 0 || !to.After(from) {
		return IntervalSet{}
	}

	var spans []Interval
	for day := from; day.Before(to); day = day.AddDate(0, 0, 1) {
		for i := range rules {
			if !rules[i].AppliesOn(day) {
				continue
			}
			spans = append(spans, Interval{
				Start: day.Add(time.Duration(rules[i].StartHour) * time.Hour),
				// EndHour 24 lands on the next midnight.
				End: day.Add(time.Duration(rules[i].EndHour) * time.Hour),
			})
		}
	}
	return NewIntervalSet(spans...)
}
