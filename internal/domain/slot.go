package domain

import "time"

// SlotCandidate a start time at which a resource is free for the required duration
type SlotCandidate struct {
	Start      time.Time
	ResourceID int64
}

// ColumnAssignment places a reservation in a side-by-side display lane.
// Derived on every render, never persisted.
type ColumnAssignment struct {
	ReservationID int64
	Column        int
	TotalColumns  int
}

// WidthPercent returns the lane width as a percentage of the day column
func (c ColumnAssignment) WidthPercent() float64 {
	if c.TotalColumns <= 0 {
		return 100
	}
	return 100 / float64(c.TotalColumns)
}

// LeftPercent returns the lane offset as a percentage of the day column
func (c ColumnAssignment) LeftPercent() float64 {
	return float64(c.Column) * c.WidthPercent()
}
