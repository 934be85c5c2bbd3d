package reservations

import (
	"context"
	"strings"
	"testing"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-SchedulingService/internal/service/reservations/models"
	"github.com/m04kA/SMC-SchedulingService/pkg/ptr"
)

type fakeRepo struct {
	items      map[int64]*domain.Reservation
	lastFilter domain.ReservationsFilter
	cancelled  []int64
}

func (f *fakeRepo) GetByID(_ context.Context, id int64) (*domain.Reservation, error) {
	r, ok := f.items[id]
	if !ok {
		return nil, reservationRepo.ErrReservationNotFound
	}
	return r, nil
}

func (f *fakeRepo) ListByResources(_ context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error) {
	f.lastFilter = filter
	out := make([]*domain.Reservation, 0)
	for id := int64(1); id <= int64(len(f.items)); id++ {
		r, ok := f.items[id]
		if !ok {
			continue
		}
		if filter.SeriesID != nil && (r.SeriesID == nil || *r.SeriesID != *filter.SeriesID) {
			continue
		}
		if !filter.IncludeInactive && !r.IsActive() {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeRepo) Cancel(_ context.Context, id int64) error {
	r, ok := f.items[id]
	if !ok {
		return reservationRepo.ErrReservationNotFound
	}
	r.Status = domain.StatusCancelled
	f.cancelled = append(f.cancelled, id)
	return nil
}

type fakeResources struct{}

func (fakeResources) GetByID(_ context.Context, id int64) (*domain.Resource, error) {
	return &domain.Resource{ID: id, Name: "Court 1"}, nil
}

type fakeTx struct{}

func (fakeTx) Do(ctx context.Context, fn func(ctx context.Context) error) error { return fn(ctx) }

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func at(day, hour int) time.Time {
	return time.Date(2025, time.October, day, hour, 0, 0, 0, time.UTC)
}

func newService(items ...*domain.Reservation) (*Service, *fakeRepo) {
	repo := &fakeRepo{items: make(map[int64]*domain.Reservation)}
	for _, r := range items {
		repo.items[r.ID] = r
	}
	s := NewService(repo, fakeResources{}, fakeTx{}, nopLogger{})
	s.timeProvider = fixedTime{t: at(15, 0)}
	return s, repo
}

func reservation(id int64, day, hour int, status domain.ReservationStatus) *domain.Reservation {
	return &domain.Reservation{
		ID:           id,
		ResourceID:   1,
		Start:        at(day, hour),
		End:          at(day, hour+1),
		Status:       status,
		CustomerName: "Ana",
		CreatedBy:    7,
	}
}

func TestGetByID(t *testing.T) {
	s, _ := newService(reservation(1, 20, 10, domain.StatusConfirmed))

	resp, err := s.GetByID(context.Background(), 1, 7)
	require.NoError(t, err)
	assert.Equal(t, "2025-10-20", resp.Date)
	assert.Equal(t, "10:00", resp.StartTime)
	assert.Equal(t, "11:00", resp.EndTime)
	assert.Equal(t, 60, resp.DurationMinutes)

	_, err = s.GetByID(context.Background(), 2, 7)
	assert.ErrorIs(t, err, ErrReservationNotFound)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestList_Filter(t *testing.T) {
	s, repo := newService(reservation(1, 20, 10, domain.StatusConfirmed))

	from, to := at(20, 0), at(21, 0)
	resp, err := s.List(context.Background(), &models.ListReservationsRequest{
		UserID:     7,
		ResourceID: ptr.Ptr[int64](1),
		From:       &from,
		To:         &to,
		Status:     ptr.Ptr("confirmed"),
		OnlyMine:   true,
	})
	require.NoError(t, err)
	assert.Len(t, resp.Reservations, 1)

	assert.Equal(t, []int64{1}, repo.lastFilter.ResourceIDs)
	require.NotNil(t, repo.lastFilter.CreatedBy)
	assert.Equal(t, int64(7), *repo.lastFilter.CreatedBy)
	require.NotNil(t, repo.lastFilter.Status)
	assert.Equal(t, domain.StatusConfirmed, *repo.lastFilter.Status)
}

func TestList_InvalidFilter(t *testing.T) {
	s, _ := newService()

	_, err := s.List(context.Background(), &models.ListReservationsRequest{UserID: 7, Status: ptr.Ptr("lost")})
	assert.ErrorIs(t, err, ErrInvalidInput)

	from, to := at(21, 0), at(20, 0)
	_, err = s.List(context.Background(), &models.ListReservationsRequest{UserID: 7, From: &from, To: &to})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCancel(t *testing.T) {
	s, repo := newService(
		reservation(1, 20, 10, domain.StatusConfirmed),
		reservation(2, 20, 12, domain.StatusFinalized),
	)

	require.NoError(t, s.Cancel(context.Background(), 1, 7))
	assert.Equal(t, []int64{1}, repo.cancelled)

	assert.ErrorIs(t, s.Cancel(context.Background(), 2, 7), ErrCannotCancel)
	assert.ErrorIs(t, s.Cancel(context.Background(), 3, 7), ErrReservationNotFound)
}

func TestCancelSeries(t *testing.T) {
	series := uuid.New()
	past := reservation(1, 8, 10, domain.StatusConfirmed)
	next := reservation(2, 22, 10, domain.StatusConfirmed)
	later := reservation(3, 29, 10, domain.StatusPending)
	other := reservation(4, 22, 12, domain.StatusConfirmed)
	for _, r := range []*domain.Reservation{past, next, later} {
		r.SeriesID = &series
	}

	s, repo := newService(past, next, later, other)

	resp, err := s.CancelSeries(context.Background(), series, 7)
	require.NoError(t, err)

	assert.Equal(t, 2, resp.Cancelled)
	assert.Equal(t, 1, resp.Skipped)
	assert.ElementsMatch(t, []int64{2, 3}, repo.cancelled)

	_, err = s.CancelSeries(context.Background(), uuid.New(), 7)
	assert.ErrorIs(t, err, ErrSeriesNotFound)
}

func TestExportICS(t *testing.T) {
	series := uuid.New()
	first := reservation(1, 20, 10, domain.StatusConfirmed)
	second := reservation(2, 27, 10, domain.StatusPending)
	second.SeriesID = &series
	second.Notes = ptr.Ptr("bring rackets")

	s, _ := newService(first, second)

	out, err := s.ExportICS(context.Background(), &models.ListReservationsRequest{UserID: 7})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "BEGIN:VCALENDAR"))

	cal, err := ical.ParseCalendar(strings.NewReader(out))
	require.NoError(t, err)

	events := cal.Events()
	require.Len(t, events, 2)

	assert.Equal(t, "reservation-1@scheduling.smc", events[0].Id())
	assert.Equal(t, "Ana / Court 1", events[0].GetProperty(ical.ComponentPropertySummary).Value)
	assert.Equal(t, "CONFIRMED", events[0].GetProperty(ical.ComponentPropertyStatus).Value)

	start, err := events[0].GetStartAt()
	require.NoError(t, err)
	assert.True(t, start.Equal(at(20, 10)))

	assert.Equal(t, "TENTATIVE", events[1].GetProperty(ical.ComponentPropertyStatus).Value)
	assert.Equal(t, series.String(), events[1].GetProperty(ical.ComponentPropertyRelatedTo).Value)
	assert.Equal(t, "bring rackets", events[1].GetProperty(ical.ComponentPropertyDescription).Value)
}
