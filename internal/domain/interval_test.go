package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func at(hour, minute int) time.Time {
	return time.Date(2025, time.October, 13, hour, minute, 0, 0, time.UTC)
}

func iv(h1, m1, h2, m2 int) Interval {
	return Interval{Start: at(h1, m1), End: at(h2, m2)}
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b Interval
		want bool
	}{
		{name: "partial overlap", a: iv(10, 0, 11, 0), b: iv(10, 30, 11, 30), want: true},
		{name: "touching end", a: iv(10, 0, 11, 0), b: iv(11, 0, 12, 0), want: false},
		{name: "touching start", a: iv(11, 0, 12, 0), b: iv(10, 0, 11, 0), want: false},
		{name: "contained", a: iv(9, 0, 13, 0), b: iv(10, 0, 11, 0), want: true},
		{name: "identical", a: iv(10, 0, 11, 0), b: iv(10, 0, 11, 0), want: true},
		{name: "disjoint", a: iv(8, 0, 9, 0), b: iv(12, 0, 13, 0), want: false},
		{name: "one minute overlap", a: iv(10, 0, 11, 1), b: iv(11, 0, 12, 0), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.a, tt.b))
			// симметричность
			assert.Equal(t, Overlaps(tt.a, tt.b), Overlaps(tt.b, tt.a))
		})
	}
}

func TestOverlaps_SymmetryGrid(t *testing.T) {
	// все интервалы с концами на получасовой сетке 08:00–12:00
	var intervals []Interval
	for s := 0; s < 8; s++ {
		for e := s + 1; e <= 8; e++ {
			intervals = append(intervals, Interval{
				Start: at(8, 0).Add(time.Duration(s) * 30 * time.Minute),
				End:   at(8, 0).Add(time.Duration(e) * 30 * time.Minute),
			})
		}
	}

	for _, a := range intervals {
		for _, b := range intervals {
			assert.Equal(t, Overlaps(a, b), Overlaps(b, a), "a=%s b=%s", a, b)
		}
	}
}

func TestInterval_DurationMinutes(t *testing.T) {
	assert.Equal(t, 90, iv(10, 0, 11, 30).DurationMinutes())
	assert.Equal(t, 30, NewInterval(at(9, 0), 30*time.Minute).DurationMinutes())
}

func TestInterval_Shift(t *testing.T) {
	shifted := iv(10, 0, 11, 0).Shift(30 * time.Minute)
	assert.True(t, shifted.Equal(iv(10, 30, 11, 30)))
}

func TestInterval_Validate(t *testing.T) {
	assert.NoError(t, iv(10, 0, 11, 0).Validate())
	assert.ErrorIs(t, iv(11, 0, 11, 0).Validate(), ErrValidation)
	assert.ErrorIs(t, iv(12, 0, 11, 0).Validate(), ErrValidation)
	assert.ErrorIs(t, Interval{}.Validate(), ErrValidation)
}
