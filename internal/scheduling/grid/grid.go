// Package grid converts between wall-clock time and vertical pixel offsets on
// a day grid of equal-height hourly rows.
//
// The mapper is a pure coordinate transform: it never clamps to the visible
// range. Bounds are enforced by callers through Grid.Contains.
package grid

import (
	"errors"
	"math"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

var ErrInvalidGrid = errors.New("grid: invalid grid parameters")

// TimeToOffset maps the minute-of-day of t to pixels below the grid top
func TimeToOffset(t time.Time, gridStartHour int, rowHeightPx float64) float64 {
	minutes := float64(t.Hour()*60+t.Minute()) + float64(t.Second())/60
	return (minutes - float64(gridStartHour*60)) / 60 * rowHeightPx
}

// OffsetToTime maps pixels back to an instant on baseDate's calendar day,
// rounding the minute-of-day to the nearest multiple of snapMinutes (ties up).
func OffsetToTime(px float64, baseDate time.Time, gridStartHour int, rowHeightPx float64, snapMinutes int) time.Time {
	minutes := float64(gridStartHour*60) + px/rowHeightPx*60
	if snapMinutes > 0 {
		step := float64(snapMinutes)
		minutes = math.Floor(minutes/step+0.5) * step
	} else {
		minutes = math.Floor(minutes + 0.5)
	}
	return domain.StartOfDay(baseDate).Add(time.Duration(minutes) * time.Minute)
}

// SnapDelta quantizes a raw pointer displacement to whole snap increments.
// Ties round up, matching OffsetToTime.
func SnapDelta(rawPx, rowHeightPx float64, snapMinutes int) float64 {
	step := float64(snapMinutes) / 60 * rowHeightPx
	if step <= 0 {
		return rawPx
	}
	return math.Floor(rawPx/step+0.5) * step
}

// PixelsToMinutes converts a vertical distance to whole minutes
func PixelsToMinutes(px, rowHeightPx float64) int {
	return int(math.Round(px / rowHeightPx * 60))
}

// Grid visible day grid from StartHour to EndHour
type Grid struct {
	StartHour   int
	EndHour     int
	RowHeightPx float64
	SnapMinutes int
}

// New builds a validated grid
func New(startHour, endHour int, rowHeightPx float64, snapMinutes int) (Grid, error) {
	g := Grid{
		StartHour:   startHour,
		EndHour:     endHour,
		RowHeightPx: rowHeightPx,
		SnapMinutes: snapMinutes,
	}
	if err := g.Validate(); err != nil {
		return Grid{}, err
	}
	return g, nil
}

// Validate checks the grid parameters
func (g Grid) Validate() error {
	switch {
	case g.StartHour < 0 || g.EndHour > 24 || g.StartHour >= g.EndHour:
		return ErrInvalidGrid
	case g.RowHeightPx <= 0:
		return ErrInvalidGrid
	case g.SnapMinutes <= 0:
		return ErrInvalidGrid
	}
	return nil
}

func (g Grid) TimeToOffset(t time.Time) float64 {
	return TimeToOffset(t, g.StartHour, g.RowHeightPx)
}

func (g Grid) OffsetToTime(px float64, baseDate time.Time) time.Time {
	return OffsetToTime(px, baseDate, g.StartHour, g.RowHeightPx, g.SnapMinutes)
}

func (g Grid) SnapDelta(rawPx float64) float64 {
	return SnapDelta(rawPx, g.RowHeightPx, g.SnapMinutes)
}

// Height total pixel height of the visible day
func (g Grid) Height() float64 {
	return float64(g.EndHour-g.StartHour) * g.RowHeightPx
}

// Bounds returns the visible range on day's calendar date
func (g Grid) Bounds(day time.Time) domain.Interval {
	start := domain.StartOfDay(day)
	return domain.Interval{
		Start: start.Add(time.Duration(g.StartHour) * time.Hour),
		End:   start.Add(time.Duration(g.EndHour) * time.Hour),
	}
}

// Contains reports whether iv lies entirely inside the visible range of day
func (g Grid) Contains(day time.Time, iv domain.Interval) bool {
	b := g.Bounds(day)
	return !iv.Start.Before(b.Start) && !iv.End.After(b.End)
}
