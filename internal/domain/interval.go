package domain

import (
	"fmt"
	"time"
)

// Interval half-open time range [Start, End)
type Interval struct {
	Start time.Time
	End   time.Time
}

// NewInterval builds an interval from a start and a duration
func NewInterval(start time.Time, duration time.Duration) Interval {
	return Interval{Start: start, End: start.Add(duration)}
}

// Overlaps reports whether two half-open intervals intersect.
// Touching endpoints do not overlap.
func Overlaps(a, b Interval) bool {
	return a.Start.Before(b.End) && b.Start.Before(a.End)
}

// Overlaps is the method form of Overlaps(i, other)
func (i Interval) Overlaps(other Interval) bool {
	return Overlaps(i, other)
}

// Duration returns End - Start
func (i Interval) Duration() time.Duration {
	return i.End.Sub(i.Start)
}

// DurationMinutes returns the length in whole minutes.
// Positivity is the caller's responsibility.
func (i Interval) DurationMinutes() int {
	return int(i.Duration() / time.Minute)
}

// Shift moves both endpoints by d
func (i Interval) Shift(d time.Duration) Interval {
	return Interval{Start: i.Start.Add(d), End: i.End.Add(d)}
}

// Equal compares instants, ignoring location
func (i Interval) Equal(other Interval) bool {
	return i.Start.Equal(other.Start) && i.End.Equal(other.End)
}

// Validate returns ErrValidation when the interval is empty or inverted
func (i Interval) Validate() error {
	if i.Start.IsZero() || i.End.IsZero() {
		return fmt.Errorf("%w: interval bounds are required", ErrValidation)
	}
	if !i.Start.Before(i.End) {
		return fmt.Errorf("%w: start %s must be before end %s", ErrValidation,
			i.Start.Format(time.RFC3339), i.End.Format(time.RFC3339))
	}
	return nil
}

// String formats the interval for logs
func (i Interval) String() string {
	return i.Start.Format(DateTimeFormat) + "–" + i.End.Format(TimeFormat)
}
