// Package layout assigns side-by-side display columns to overlapping
// reservations of one day column.
package layout

import (
	"sort"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// Assign packs reservations into the minimum number of columns per overlap group.
//
// Reservations are stable-sorted by start. A group is a maximal run of
// transitively overlapping reservations; inside a group each reservation takes
// the first column whose last occupant ends at or before its start. Every
// member of a group reports the group's column count as TotalColumns.
// Output order follows the sorted order.
func Assign(reservations []*domain.Reservation) []domain.ColumnAssignment {
	if len(reservations) == 0 {
		return []domain.ColumnAssignment{}
	}

	sorted := make([]*domain.Reservation, 0, len(reservations))
	for _, r := range reservations {
		if r != nil {
			sorted = append(sorted, r)
		}
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Start.Before(sorted[j].Start)
	})

	result := make([]domain.ColumnAssignment, 0, len(sorted))
	for _, group := range groups(sorted) {
		result = append(result, pack(group)...)
	}
	return result
}

// groups splits sorted reservations into maximal overlap groups.
// A reservation joins the open group if it overlaps any member.
func groups(sorted []*domain.Reservation) [][]*domain.Reservation {
	var out [][]*domain.Reservation
	var current []*domain.Reservation

	for _, r := range sorted {
		if len(current) > 0 && !overlapsAny(r, current) {
			out = append(out, current)
			current = nil
		}
		current = append(current, r)
	}
	if len(current) > 0 {
		out = append(out, current)
	}
	return out
}

func overlapsAny(r *domain.Reservation, group []*domain.Reservation) bool {
	for _, g := range group {
		if domain.Overlaps(r.Interval(), g.Interval()) {
			return true
		}
	}
	return false
}

// pack runs first-fit column assignment over one group
func pack(group []*domain.Reservation) []domain.ColumnAssignment {
	// columnEnds[i] is the end of the last reservation placed in column i
	var columnEnds []int64
	assigned := make([]domain.ColumnAssignment, 0, len(group))

	for _, r := range group {
		column := -1
		for i, end := range columnEnds {
			if end <= r.Start.UnixNano() {
				column = i
				break
			}
		}
		if column == -1 {
			column = len(columnEnds)
			columnEnds = append(columnEnds, 0)
		}
		columnEnds[column] = r.End.UnixNano()

		assigned = append(assigned, domain.ColumnAssignment{
			ReservationID: r.ID,
			Column:        column,
		})
	}

	for i := range assigned {
		assigned[i].TotalColumns = len(columnEnds)
	}
	return assigned
}
