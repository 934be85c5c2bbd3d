package create_recurring_reservations

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	catalogRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/catalog"
	resourceRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/resource"
	"github.com/m04kA/SMC-SchedulingService/internal/usecase/create_reservation"
	"github.com/m04kA/SMC-SchedulingService/pkg/ptr"
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// fakeCreator имитирует create_reservation поверх списка занятых интервалов
type fakeCreator struct {
	busy     []domain.Interval
	failOn   map[int]error
	calls    int
	requests []*create_reservation.Request
}

func (f *fakeCreator) Execute(_ context.Context, req *create_reservation.Request) (*create_reservation.Response, error) {
	f.calls++
	f.requests = append(f.requests, req)
	if err, ok := f.failOn[f.calls]; ok {
		return nil, err
	}
	iv := domain.Interval{Start: req.Start, End: *req.End}
	for _, b := range f.busy {
		if domain.Overlaps(b, iv) {
			return nil, fmt.Errorf("%w: busy", create_reservation.ErrConflict)
		}
	}
	return &create_reservation.Response{ID: int64(100 + f.calls), Start: req.Start, End: *req.End, SeriesID: req.SeriesID}, nil
}

type fakeResources struct{}

func (fakeResources) GetByID(_ context.Context, id int64) (*domain.Resource, error) {
	if id != 1 {
		return nil, resourceRepo.ErrResourceNotFound
	}
	return &domain.Resource{ID: 1, OpenTime: types.TimeString("08:00"), CloseTime: types.TimeString("22:00")}, nil
}

type fakeServices struct{}

func (fakeServices) GetServicesByIDs(_ context.Context, ids []int64) ([]*domain.Service, error) {
	out := make([]*domain.Service, 0, len(ids))
	for _, id := range ids {
		if id != 5 {
			return nil, catalogRepo.ErrServiceNotFound
		}
		out = append(out, &domain.Service{ID: 5, DurationMinutes: 45})
	}
	return out, nil
}

type fakeOccurrences struct{ outcomes map[string]int }

func (f *fakeOccurrences) IncOccurrence(outcome string) { f.outcomes[outcome]++ }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

func date(month time.Month, day, hour int) time.Time {
	return time.Date(2025, month, day, hour, 0, 0, 0, time.UTC)
}

func newUseCase(creator *fakeCreator, now time.Time) (*UseCase, *fakeOccurrences) {
	occ := &fakeOccurrences{outcomes: map[string]int{}}
	uc := NewUseCase(creator, fakeResources{}, fakeServices{}, occ, 52, nopLogger{})
	uc.timeProvider = fixedTime{now: now}
	return uc, occ
}

func weeklyRequest(count int) *Request {
	return &Request{
		UserID:       7,
		ResourceID:   1,
		Start:        date(time.October, 6, 18),
		End:          ptr.Ptr(date(time.October, 6, 19)),
		Frequency:    "weekly",
		Count:        count,
		CustomerName: "League",
	}
}

// Четыре еженедельных повторения, третье занято: создано 3 из 4
func TestExecute_SkipsConflictingOccurrence(t *testing.T) {
	creator := &fakeCreator{busy: []domain.Interval{{Start: date(time.October, 20, 18), End: date(time.October, 20, 19)}}}
	uc, occ := newUseCase(creator, date(time.October, 1, 9))

	resp, err := uc.Execute(context.Background(), weeklyRequest(4))

	require.NoError(t, err)
	assert.Equal(t, 4, resp.Requested)
	assert.Equal(t, 3, resp.Created)
	assert.Equal(t, 1, resp.SkippedConflict)
	assert.Equal(t, 0, resp.SkippedPast)
	require.Len(t, resp.Occurrences, 4)
	assert.Equal(t, OutcomeSkippedConflict, resp.Occurrences[2].Outcome)
	assert.Nil(t, resp.Occurrences[2].ReservationID)
	assert.Equal(t, 3, occ.outcomes[OutcomeCreated])
	assert.Equal(t, 1, occ.outcomes[OutcomeSkippedConflict])

	require.Len(t, resp.Reservations, 3)
	for _, r := range resp.Reservations {
		require.NotNil(t, r.SeriesID)
		assert.Equal(t, resp.SeriesID, *r.SeriesID)
	}
	assert.NotEqual(t, uuid.Nil, resp.SeriesID)
}

func TestExecute_SkipsPastOccurrences(t *testing.T) {
	creator := &fakeCreator{}
	uc, _ := newUseCase(creator, date(time.October, 15, 12))

	resp, err := uc.Execute(context.Background(), weeklyRequest(4))

	require.NoError(t, err)
	assert.Equal(t, 2, resp.SkippedPast)
	assert.Equal(t, 2, resp.Created)
	assert.Equal(t, 2, creator.calls)
	assert.True(t, creator.requests[0].Start.Equal(date(time.October, 20, 18)))
}

func TestExecute_NothingCreated(t *testing.T) {
	creator := &fakeCreator{busy: []domain.Interval{{Start: date(time.October, 1, 0), End: date(time.November, 1, 0)}}}
	uc, _ := newUseCase(creator, date(time.October, 1, 9))

	resp, err := uc.Execute(context.Background(), weeklyRequest(3))

	assert.ErrorIs(t, err, ErrNoOccurrencesCreated)
	require.NotNil(t, resp)
	assert.Equal(t, 3, resp.SkippedConflict)
	assert.Equal(t, 0, resp.Created)
}

func TestExecute_FailureDoesNotStopSeries(t *testing.T) {
	creator := &fakeCreator{failOn: map[int]error{2: errors.New("db down")}}
	uc, occ := newUseCase(creator, date(time.October, 1, 9))

	resp, err := uc.Execute(context.Background(), weeklyRequest(3))

	require.NoError(t, err)
	assert.Equal(t, 2, resp.Created)
	assert.Equal(t, 1, resp.Failed)
	assert.Equal(t, OutcomeFailed, resp.Occurrences[1].Outcome)
	assert.Equal(t, 1, occ.outcomes[OutcomeFailed])
}

func TestExecute_MonthlyFromServices(t *testing.T) {
	creator := &fakeCreator{}
	uc, _ := newUseCase(creator, date(time.January, 1, 9))

	req := weeklyRequest(3)
	req.Start = date(time.January, 31, 10)
	req.End = nil
	req.ServiceIDs = []int64{5}
	req.Frequency = "monthly"

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	require.Equal(t, 3, resp.Created)
	assert.True(t, resp.Occurrences[1].Start.Equal(date(time.February, 28, 10)))
	assert.True(t, resp.Occurrences[2].Start.Equal(date(time.March, 31, 10)))
	assert.Equal(t, 45*time.Minute, resp.Occurrences[2].End.Sub(resp.Occurrences[2].Start))
}

func TestExecute_Errors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *Request)
		wantErr error
	}{
		{"zero count", func(r *Request) { r.Count = 0 }, ErrInvalidInput},
		{"count above limit", func(r *Request) { r.Count = 53 }, ErrInvalidInput},
		{"unknown frequency", func(r *Request) { r.Frequency = "daily" }, ErrInvalidInput},
		{"unknown resource", func(r *Request) { r.ResourceID = 2 }, ErrResourceNotFound},
		{"unknown service", func(r *Request) { r.End = nil; r.ServiceIDs = []int64{9} }, ErrServiceNotFound},
		{"outside hours", func(r *Request) { r.Start = date(time.October, 6, 6); r.End = ptr.Ptr(date(time.October, 6, 7)) }, ErrOutsideBusinessHours},
		{"inverted", func(r *Request) { r.End = ptr.Ptr(date(time.October, 6, 17)) }, ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			creator := &fakeCreator{}
			uc, _ := newUseCase(creator, date(time.October, 1, 9))
			req := weeklyRequest(4)
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, 0, creator.calls)
		})
	}
}
