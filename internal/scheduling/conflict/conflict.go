// Package conflict detects double-booking of a resource.
//
// The check is advisory on the client side: the storage layer re-validates
// inside the write transaction.
package conflict

import "github.com/m04kA/SMC-SchedulingService/internal/domain"

// HasConflict reports whether candidate overlaps any active reservation on
// resourceID. excludeID skips the reservation being edited.
func HasConflict(resourceID int64, candidate domain.Interval, existing []*domain.Reservation, excludeID *int64) bool {
	for _, r := range existing {
		if blocks(r, resourceID, candidate, excludeID) {
			return true
		}
	}
	return false
}

// Conflicts returns every reservation that blocks candidate, in input order
func Conflicts(resourceID int64, candidate domain.Interval, existing []*domain.Reservation, excludeID *int64) []*domain.Reservation {
	var out []*domain.Reservation
	for _, r := range existing {
		if blocks(r, resourceID, candidate, excludeID) {
			out = append(out, r)
		}
	}
	return out
}

func blocks(r *domain.Reservation, resourceID int64, candidate domain.Interval, excludeID *int64) bool {
	if r == nil || r.ResourceID != resourceID {
		return false
	}
	if excludeID != nil && r.ID == *excludeID {
		return false
	}
	if r.Status == domain.StatusCancelled {
		return false
	}
	return domain.Overlaps(r.Interval(), candidate)
}
