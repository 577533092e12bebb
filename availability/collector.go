package availability

import (
	"context"
	"time"
)

// collectExclusions gathers everything that removes time from availability:
// one-off unavailability blocks and non-cancelled bookings overlapping the
// query window. Both sources subtract identically, so they come back as one
// set. Any read failure fails the whole query closed with a DependencyError;
// "no slots" is never used to paper over an unreachable store.
func (e *Engine) collectExclusions(ctx context.Context, providerID uint, from, to time.Time) (IntervalSet, error) {
	ctx, cancel := context.WithTimeout(ctx, e.settings.StoreTimeout)
	defer cancel()

	blocks, err := e.unavailabilities.ListUnavailabilities(ctx, providerID, from, to)
	if err != nil {
		return IntervalSet{}, &DependencyError{Source: "unavailability store", Err: err}
	}

	bookings, err := e.bookings.ListActiveBookings(ctx, providerID, from, to)
	if err != nil {
		return IntervalSet{}, &DependencyError{Source: "booking store", Err: err}
	}

	spans := make([]Interval, 0, len(blocks)+len(bookings))
	for i := range blocks {
		spans = append(spans, Interval{Start: blocks[i].StartAt, End: blocks[i].EndAt})
	}
	for i := range bookings {
		spans = append(spans, Interval{Start: bookings[i].StartAt, End: bookings[i].EndAt})
	}
	return NewIntervalSet(spans...), nil
}
