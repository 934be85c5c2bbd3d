package domain

import (
	"time"

	"github.com/google/uuid"
)

// ReservationStatus represents the lifecycle state of a reservation
type ReservationStatus string

const (
	StatusPending   ReservationStatus = "pending"
	StatusConfirmed ReservationStatus = "confirmed"
	StatusFinalized ReservationStatus = "finalized"
	StatusCancelled ReservationStatus = "cancelled"
)

// ParseReservationStatus validates a status string
func ParseReservationStatus(s string) (ReservationStatus, bool) {
	switch ReservationStatus(s) {
	case StatusPending, StatusConfirmed, StatusFinalized, StatusCancelled:
		return ReservationStatus(s), true
	default:
		return "", false
	}
}

// Reservation is a time-bound booking of one resource.
// The scheduling core never mutates it; it proposes new intervals that the
// storage layer persists.
type Reservation struct {
	ID         int64
	ResourceID int64
	ServiceIDs []int64
	Start      time.Time
	End        time.Time
	Status     ReservationStatus

	// SeriesID links occurrences created from one recurring request
	SeriesID *uuid.UUID

	CustomerName  string
	CustomerEmail *string
	CustomerPhone *string
	Notes         *string

	CreatedBy int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Interval returns the reservation's [Start, End)
func (r *Reservation) Interval() Interval {
	return Interval{Start: r.Start, End: r.End}
}

// In returns a copy with Start and End expressed in loc.
// A nil loc returns r unchanged.
func (r *Reservation) In(loc *time.Location) *Reservation {
	if r == nil || loc == nil {
		return r
	}
	out := *r
	out.Start = r.Start.In(loc)
	out.End = r.End.In(loc)
	return &out
}

// IsActive returns true if the reservation still occupies its resource
func (r *Reservation) IsActive() bool {
	return r.Status != StatusCancelled
}

// CanBeCancelled returns true if the reservation can be cancelled
func (r *Reservation) CanBeCancelled() bool {
	return r.Status == StatusPending || r.Status == StatusConfirmed
}

// CanBeRescheduled returns true if the interval may still be changed
func (r *Reservation) CanBeRescheduled() bool {
	return r.Status == StatusPending || r.Status == StatusConfirmed
}

// ReservationsFilter selects reservations for one or many resources in a range.
// A reservation matches when it overlaps [From, To).
type ReservationsFilter struct {
	ResourceIDs     []int64
	From            time.Time
	To              time.Time
	IncludeInactive bool

	// Optional narrowing, nil means any
	CreatedBy *int64
	SeriesID  *uuid.UUID
	Status    *ReservationStatus
}

// DayFilter returns a filter covering the whole calendar day of `day`
func DayFilter(day time.Time, resourceIDs ...int64) ReservationsFilter {
	start := StartOfDay(day)
	return ReservationsFilter{
		ResourceIDs: resourceIDs,
		From:        start,
		To:          start.AddDate(0, 0, 1),
	}
}
