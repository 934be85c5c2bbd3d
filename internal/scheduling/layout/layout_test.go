package layout

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

func at(hour, minute int) time.Time {
	return time.Date(2025, time.October, 13, hour, minute, 0, 0, time.UTC)
}

func res(id int64, h1, m1, h2, m2 int) *domain.Reservation {
	return &domain.Reservation{ID: id, ResourceID: 1, Start: at(h1, m1), End: at(h2, m2), Status: domain.StatusConfirmed}
}

func byID(assignments []domain.ColumnAssignment) map[int64]domain.ColumnAssignment {
	out := make(map[int64]domain.ColumnAssignment, len(assignments))
	for _, a := range assignments {
		out[a.ReservationID] = a
	}
	return out
}

func TestAssign_Empty(t *testing.T) {
	got := Assign(nil)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestAssign_SingleReservation(t *testing.T) {
	got := Assign([]*domain.Reservation{res(1, 9, 0, 10, 0)})
	require.Len(t, got, 1)
	assert.Equal(t, domain.ColumnAssignment{ReservationID: 1, Column: 0, TotalColumns: 1}, got[0])
}

func TestAssign_TwoGroups(t *testing.T) {
	// A 09-10, B 09:30-10:30, C 10:00-11:00, D 12-13
	input := []*domain.Reservation{
		res(4, 12, 0, 13, 0),
		res(3, 10, 0, 11, 0),
		res(1, 9, 0, 10, 0),
		res(2, 9, 30, 10, 30),
	}

	got := Assign(input)
	require.Len(t, got, 4)

	// output follows start order
	assert.Equal(t, []int64{1, 2, 3, 4}, []int64{got[0].ReservationID, got[1].ReservationID, got[2].ReservationID, got[3].ReservationID})

	m := byID(got)
	assert.Equal(t, 0, m[1].Column)
	assert.Equal(t, 1, m[2].Column)
	assert.Equal(t, 0, m[3].Column)
	assert.Equal(t, 0, m[4].Column)

	assert.Equal(t, 2, m[1].TotalColumns)
	assert.Equal(t, 2, m[2].TotalColumns)
	assert.Equal(t, 2, m[3].TotalColumns)
	assert.Equal(t, 1, m[4].TotalColumns)
}

func TestAssign_TouchingReservationsShareColumn(t *testing.T) {
	got := Assign([]*domain.Reservation{
		res(1, 9, 0, 10, 0),
		res(2, 10, 0, 11, 0),
		res(3, 11, 0, 12, 0),
	})

	for _, a := range got {
		assert.Equal(t, 0, a.Column)
		assert.Equal(t, 1, a.TotalColumns)
	}
}

func TestAssign_FullyNested(t *testing.T) {
	got := byID(Assign([]*domain.Reservation{
		res(1, 9, 0, 12, 0),
		res(2, 9, 30, 10, 0),
		res(3, 10, 0, 10, 30),
		res(4, 10, 15, 11, 0),
	}))

	assert.Equal(t, 0, got[1].Column)
	assert.Equal(t, 1, got[2].Column)
	assert.Equal(t, 1, got[3].Column)
	assert.Equal(t, 2, got[4].Column)
	for _, a := range got {
		assert.Equal(t, 3, a.TotalColumns)
	}
}

func TestAssign_StableForEqualStarts(t *testing.T) {
	got := Assign([]*domain.Reservation{
		res(7, 9, 0, 10, 0),
		res(3, 9, 0, 10, 0),
		res(5, 9, 0, 10, 0),
	})

	require.Len(t, got, 3)
	assert.Equal(t, int64(7), got[0].ReservationID)
	assert.Equal(t, 0, got[0].Column)
	assert.Equal(t, int64(3), got[1].ReservationID)
	assert.Equal(t, 1, got[1].Column)
	assert.Equal(t, int64(5), got[2].ReservationID)
	assert.Equal(t, 2, got[2].Column)
}

// Overlapping reservations never share a column and TotalColumns equals the
// group's maximum concurrency.
func TestAssign_Properties(t *testing.T) {
	input := []*domain.Reservation{
		res(1, 8, 0, 9, 30),
		res(2, 8, 30, 9, 0),
		res(3, 9, 0, 10, 0),
		res(4, 9, 15, 9, 45),
		res(5, 9, 45, 11, 0),
		res(6, 14, 0, 15, 0),
		res(7, 14, 30, 15, 30),
	}
	got := byID(Assign(input))

	for i, a := range input {
		for _, b := range input[i+1:] {
			if domain.Overlaps(a.Interval(), b.Interval()) {
				assert.NotEqual(t, got[a.ID].Column, got[b.ID].Column, "%d and %d overlap", a.ID, b.ID)
				assert.Equal(t, got[a.ID].TotalColumns, got[b.ID].TotalColumns)
			}
		}
		assert.Less(t, got[a.ID].Column, got[a.ID].TotalColumns)
	}

	// 09:15-09:30 is covered by 1, 3 and 4
	assert.Equal(t, 3, got[1].TotalColumns)
	assert.Equal(t, 2, got[6].TotalColumns)
}
