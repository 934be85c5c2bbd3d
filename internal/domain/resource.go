package domain

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// ResourceKind distinguishes bookable spaces from professionals
type ResourceKind string

const (
	ResourceKindSpace        ResourceKind = "space"
	ResourceKindProfessional ResourceKind = "professional"
)

// Resource is a bookable entity. The scheduling core only compares IDs;
// business hours feed the slot finder.
type Resource struct {
	ID        int64
	Kind      ResourceKind
	Name      string
	OpenTime  types.TimeString
	CloseTime types.TimeString
	Position  int // display order, drives the palette colour
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Service is a catalog entry booked on a professional
type Service struct {
	ID              int64
	Name            string
	DurationMinutes int
}

// TotalDuration sums service durations
func TotalDuration(services []*Service) time.Duration {
	total := 0
	for _, s := range services {
		total += s.DurationMinutes
	}
	return time.Duration(total) * time.Minute
}

// ResourcesFilter selects resources; empty fields do not filter
type ResourcesFilter struct {
	IDs  []int64
	Kind *ResourceKind
}

// ParseResourceKind validates a kind string
func ParseResourceKind(s string) (ResourceKind, bool) {
	switch ResourceKind(s) {
	case ResourceKindSpace, ResourceKindProfessional:
		return ResourceKind(s), true
	default:
		return "", false
	}
}

// OpenMinute returns opening time in minutes since midnight
func (r *Resource) OpenMinute() int {
	return r.OpenTime.Minutes()
}

// CloseMinute returns closing time in minutes since midnight
func (r *Resource) CloseMinute() int {
	return r.CloseTime.Minutes()
}

// BusinessHours returns the resource's opening interval on day's calendar date
func (r *Resource) BusinessHours(day time.Time) Interval {
	return Interval{Start: r.OpenTime.On(day), End: r.CloseTime.On(day)}
}

// IsWithinBusinessHours reports whether iv fits inside the opening interval of its start day
func (r *Resource) IsWithinBusinessHours(iv Interval) bool {
	hours := r.BusinessHours(iv.Start)
	return !iv.Start.Before(hours.Start) && !iv.End.After(hours.End)
}
