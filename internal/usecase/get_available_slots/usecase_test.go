package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	catalogRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/catalog"
	resourceRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/resource"
	"github.com/m04kA/SMC-SchedulingService/pkg/ptr"
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

type fakeReservations struct {
	items      []*domain.Reservation
	lastFilter domain.ReservationsFilter
}

func (f *fakeReservations) ListByResources(_ context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error) {
	f.lastFilter = filter
	return f.items, nil
}

type fakeResources struct{ items []*domain.Resource }

func (f *fakeResources) GetByID(_ context.Context, id int64) (*domain.Resource, error) {
	for _, r := range f.items {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, resourceRepo.ErrResourceNotFound
}

func (f *fakeResources) List(_ context.Context, filter domain.ResourcesFilter) ([]*domain.Resource, error) {
	out := make([]*domain.Resource, 0)
	for _, r := range f.items {
		if filter.Kind == nil || r.Kind == *filter.Kind {
			out = append(out, r)
		}
	}
	return out, nil
}

type fakeServices struct{}

func (fakeServices) GetServicesByIDs(_ context.Context, ids []int64) ([]*domain.Service, error) {
	catalog := map[int64]*domain.Service{
		1: {ID: 1, Name: "Haircut", DurationMinutes: 30},
		2: {ID: 2, Name: "Wash", DurationMinutes: 30},
	}
	out := make([]*domain.Service, 0, len(ids))
	for _, id := range ids {
		s, ok := catalog[id]
		if !ok {
			return nil, catalogRepo.ErrServiceNotFound
		}
		out = append(out, s)
	}
	return out, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

func at(day, hour int) time.Time {
	return time.Date(2025, time.October, day, hour, 0, 0, 0, time.UTC)
}

func professional(id int64, name, open, close string) *domain.Resource {
	return &domain.Resource{
		ID:        id,
		Kind:      domain.ResourceKindProfessional,
		Name:      name,
		OpenTime:  types.TimeString(open),
		CloseTime: types.TimeString(close),
	}
}

func newUseCase(reservations *fakeReservations, now time.Time) *UseCase {
	resources := &fakeResources{items: []*domain.Resource{
		professional(1, "Ana", "09:00", "12:00"),
		professional(2, "Bruno", "10:00", "12:00"),
		{ID: 3, Kind: domain.ResourceKindSpace, Name: "Court", OpenTime: "08:00", CloseTime: "22:00"},
	}}
	uc := NewUseCase(reservations, resources, fakeServices{}, 60, nopLogger{})
	uc.timeProvider = fixedTime{now: now}
	return uc
}

func TestExecute_AnyProfessional(t *testing.T) {
	reservations := &fakeReservations{items: []*domain.Reservation{
		{ID: 1, ResourceID: 1, Start: at(14, 10), End: at(14, 11), Status: domain.StatusConfirmed},
	}}
	uc := newUseCase(reservations, at(13, 8))

	resp, err := uc.Execute(context.Background(), &Request{UserID: 1, Date: at(14, 0), ServiceIDs: []int64{1, 2}})

	require.NoError(t, err)
	assert.Equal(t, 60, resp.DurationMinutes)
	assert.ElementsMatch(t, []int64{1, 2}, reservations.lastFilter.ResourceIDs)

	got := make([]string, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		got = append(got, s.StartTime.String()+"/"+s.ResourceName)
	}
	// 09 Ana; 10 только Bruno (Ana занята); 11 оба
	assert.Equal(t, []string{"09:00/Ana", "10:00/Bruno", "11:00/Ana", "11:00/Bruno"}, got)
	assert.True(t, resp.Slots[0].End.Equal(at(14, 10)))
}

func TestExecute_SingleResource(t *testing.T) {
	uc := newUseCase(&fakeReservations{}, at(13, 8))

	resp, err := uc.Execute(context.Background(), &Request{Date: at(14, 0), ServiceIDs: []int64{1}, ResourceID: ptr.Ptr(int64(2))})

	require.NoError(t, err)
	require.Len(t, resp.Slots, 2)
	for _, s := range resp.Slots {
		assert.Equal(t, int64(2), s.ResourceID)
	}
}

func TestExecute_TodayExcludesPastMarks(t *testing.T) {
	now := time.Date(2025, time.October, 14, 10, 30, 0, 0, time.UTC)
	uc := newUseCase(&fakeReservations{}, now)

	resp, err := uc.Execute(context.Background(), &Request{Date: at(14, 0), ServiceIDs: []int64{1}, ResourceID: ptr.Ptr(int64(1))})

	require.NoError(t, err)
	require.Len(t, resp.Slots, 1)
	assert.Equal(t, "11:00", resp.Slots[0].StartTime.String())
}

func TestExecute_Errors(t *testing.T) {
	tests := []struct {
		name    string
		req     *Request
		wantErr error
	}{
		{"no services", &Request{Date: at(14, 0)}, ErrInvalidInput},
		{"no date", &Request{ServiceIDs: []int64{1}}, ErrInvalidInput},
		{"past date", &Request{Date: at(12, 0), ServiceIDs: []int64{1}}, ErrInvalidDate},
		{"unknown service", &Request{Date: at(14, 0), ServiceIDs: []int64{7}}, ErrServiceNotFound},
		{"unknown resource", &Request{Date: at(14, 0), ServiceIDs: []int64{1}, ResourceID: ptr.Ptr(int64(9))}, ErrResourceNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newUseCase(&fakeReservations{}, at(13, 8))
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
