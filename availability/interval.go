package availability

import (
	"sort"
	"time"
)

// Interval is a half-open time span [Start, End).
type Interval struct {
	Start time.Time
	End   time.Time
}

// IsZero reports whether the interval covers no time.
func (iv Interval) IsZero() bool {
	return !iv.End.After(iv.Start)
}

// Overlaps reports whether two half-open intervals share any instant.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.Start.Before(other.End) && other.Start.Before(iv.End)
}

// IntervalSet is a sorted set of non-overlapping, non-touching half-open
// intervals on a single time axis.
type IntervalSet struct {
	intervals []Interval
}

// NewIntervalSet normalizes arbitrary intervals into a set: zero-length
// inputs are dropped, the rest sorted and coalesced.
func NewIntervalSet(intervals ...Interval) IntervalSet {
	kept := make([]Interval, 0, len(intervals))
	for _, iv := range intervals {
		if !iv.IsZero() {
			kept = append(kept, iv)
		}
	}
	sort.Slice(kept, func(i, j int) bool {
		return kept[i].Start.Before(kept[j].Start)
	})

	merged := make([]Interval, 0, len(kept))
	for _, iv := range kept {
		if n := len(merged); n > 0 && !merged[n-1].End.Before(iv.Start) {
			// Touching or overlapping the previous interval: extend it.
			if iv.End.After(merged[n-1].End) {
				merged[n-1].End = iv.End
			}
			continue
		}
		merged = append(merged, iv)
	}
	return IntervalSet{intervals: merged}
}

// Union merges two sets, coalescing intervals that touch or overlap.
func (s IntervalSet) Union(other IntervalSet) IntervalSet {
	combined := make([]Interval, 0, len(s.intervals)+len(other.intervals))
	combined = append(combined, s.intervals...)
	combined = append(combined, other.intervals...)
	return NewIntervalSet(combined...)
}

// Subtract removes every portion of s covered by other, splitting intervals
// into zero, one or two pieces as needed.
func (s IntervalSet) Subtract(other IntervalSet) IntervalSet {
	if s.IsEmpty() || other.IsEmpty() {
		return s
	}

	result := make([]Interval, 0, len(s.intervals))
	for _, iv := range s.intervals {
		cursor := iv.Start
		for _, hole := range other.intervals {
			if !hole.End.After(cursor) {
				continue
			}
			if !hole.Start.Before(iv.End) {
				break
			}
			if hole.Start.After(cursor) {
				result = append(result, Interval{Start: cursor, End: hole.Start})
			}
			if hole.End.After(cursor) {
				cursor = hole.End
			}
			if !cursor.Before(iv.End) {
				break
			}
		}
		if cursor.Before(iv.End) {
			result = append(result, Interval{Start: cursor, End: iv.End})
		}
	}
	// Pieces of sorted inputs stay sorted and disjoint.
	return IntervalSet{intervals: result}
}

// IsEmpty reports whether the set contains no time at all.
func (s IntervalSet) IsEmpty() bool {
	return len(s.intervals) == 0
}

// Intervals returns the underlying intervals in chronological order.
func (s IntervalSet) Intervals() []Interval {
	out := make([]Interval, len(s.intervals))
	copy(out, s.intervals)
	return out
}
