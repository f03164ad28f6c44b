package valueobjects

import (
	"errors"
	"time"
)

// TimeRange is an inclusive [start, end] interval. A zero bound is open:
// a zero start means no lower bound, a zero end means no upper bound, and
// the zero value contains every instant.
type TimeRange struct {
	start time.Time
	end   time.Time
}

// NewTimeRange creates a time range. Either bound may be zero to leave
// that end open; when both are set, end must not precede start.
func NewTimeRange(start, end time.Time) (TimeRange, error) {
	if !start.IsZero() && !end.IsZero() && end.Before(start) {
		return TimeRange{}, errors.New("time range end precedes start")
	}
	return TimeRange{start: start, end: end}, nil
}

// Start returns the inclusive lower bound
func (r TimeRange) Start() time.Time {
	return r.start
}

// End returns the inclusive upper bound
func (r TimeRange) End() time.Time {
	return r.end
}

// IsZero reports whether the range is unbounded
func (r TimeRange) IsZero() bool {
	return r.start.IsZero() && r.end.IsZero()
}

// Contains reports whether t falls within the range, inclusive on both
// ends. Open bounds do not constrain; the zero range contains everything.
func (r TimeRange) Contains(t time.Time) bool {
	if !r.start.IsZero() && t.Before(r.start) {
		return false
	}
	if !r.end.IsZero() && t.After(r.end) {
		return false
	}
	return true
}
