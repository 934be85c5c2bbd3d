// Package recurrence expands a seed interval into a fixed number of
// occurrences.
//
// Month-end policy: a monthly seed on a day the target month lacks is clamped
// to that month's last day (Jan 31 -> Feb 28 -> Mar 31). The day-of-month
// never drifts. Wall-clock time and duration are preserved in the seed's
// location.
package recurrence

import (
	"errors"
	"fmt"
	"strings"

	"github.com/teambition/rrule-go"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

var (
	ErrInvalidFrequency = errors.New("recurrence: invalid frequency")
	ErrInvalidCount     = errors.New("recurrence: count must be positive")
	ErrExpand           = errors.New("recurrence: failed to expand rule")
)

// Frequency step between occurrences
type Frequency string

const (
	Weekly  Frequency = "weekly"
	Monthly Frequency = "monthly"
)

// ParseFrequency accepts "weekly"/"monthly" in any case
func ParseFrequency(s string) (Frequency, error) {
	switch Frequency(strings.ToLower(strings.TrimSpace(s))) {
	case Weekly:
		return Weekly, nil
	case Monthly:
		return Monthly, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidFrequency, s)
	}
}

// Rule builds the RRULE for the seed start
func Rule(seed domain.Interval, freq Frequency, count int) (*rrule.RRule, error) {
	if count <= 0 {
		return nil, ErrInvalidCount
	}

	opt := rrule.ROption{
		Dtstart: seed.Start,
		Count:   count,
	}

	switch freq {
	case Weekly:
		opt.Freq = rrule.WEEKLY
	case Monthly:
		opt.Freq = rrule.MONTHLY
		if day := seed.Start.Day(); day > 28 {
			// last existing day among 28..day in each month
			for d := 28; d <= day; d++ {
				opt.Bymonthday = append(opt.Bymonthday, d)
			}
			opt.Bysetpos = []int{-1}
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidFrequency, freq)
	}

	r, err := rrule.NewRRule(opt)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExpand, err)
	}
	return r, nil
}

// Expand returns exactly count intervals. Occurrence 0 equals seed.
// Conflict and past-date filtering belong to the caller.
func Expand(seed domain.Interval, freq Frequency, count int) ([]domain.Interval, error) {
	if err := seed.Validate(); err != nil {
		return nil, err
	}

	r, err := Rule(seed, freq, count)
	if err != nil {
		return nil, err
	}

	starts := r.All()
	if len(starts) != count {
		return nil, fmt.Errorf("%w: expected %d occurrences, got %d", ErrExpand, count, len(starts))
	}

	duration := seed.Duration()
	out := make([]domain.Interval, 0, count)
	for i, start := range starts {
		if i == 0 {
			out = append(out, seed)
			continue
		}
		out = append(out, domain.NewInterval(start.In(seed.Start.Location()), duration))
	}
	return out, nil
}
