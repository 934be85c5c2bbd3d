// Package availability finds start times at which resources are free for a
// required duration.
//
// The search is discrete: marks every StepMinutes inside business hours are
// tested with the conflict checker, no free intervals are computed.
package availability

import (
	"sort"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/internal/scheduling/conflict"
)

// Hours business hours of one resource in minutes since midnight
type Hours struct {
	OpenMinute  int
	CloseMinute int
}

// Request slot search input
type Request struct {
	Day         time.Time
	Duration    time.Duration
	ResourceIDs []int64
	Existing    []*domain.Reservation

	// OpenMinute/CloseMinute apply to resources missing from Hours
	OpenMinute  int
	CloseMinute int
	Hours       map[int64]Hours

	StepMinutes int
	// Now marks earlier than Now are dropped. Zero disables the filter.
	Now time.Time
}

func (r Request) hoursFor(resourceID int64) Hours {
	if h, ok := r.Hours[resourceID]; ok {
		return h
	}
	return Hours{OpenMinute: r.OpenMinute, CloseMinute: r.CloseMinute}
}

// FindSlots returns candidates ordered by start, then by ResourceIDs order.
// Each resource is stepped from its own OpenMinute. A mark free on several
// resources yields one candidate per resource.
func FindSlots(req Request) []domain.SlotCandidate {
	result := make([]domain.SlotCandidate, 0)
	if req.Duration <= 0 || req.StepMinutes <= 0 || len(req.ResourceIDs) == 0 {
		return result
	}

	durationMinutes := int((req.Duration + time.Minute - 1) / time.Minute)
	midnight := domain.StartOfDay(req.Day)

	for _, id := range req.ResourceIDs {
		h := req.hoursFor(id)
		for mark := h.OpenMinute; mark+durationMinutes <= h.CloseMinute; mark += req.StepMinutes {
			start := midnight.Add(time.Duration(mark) * time.Minute)
			if !req.Now.IsZero() && start.Before(req.Now) {
				continue
			}
			if conflict.HasConflict(id, domain.NewInterval(start, req.Duration), req.Existing, nil) {
				continue
			}
			result = append(result, domain.SlotCandidate{Start: start, ResourceID: id})
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Start.Before(result[j].Start)
	})
	return result
}
