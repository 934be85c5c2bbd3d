package get_day_layout

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	resourceRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/resource"
	"github.com/m04kA/SMC-SchedulingService/internal/scheduling/grid"
)

type fakeReservations struct{ items []*domain.Reservation }

func (f *fakeReservations) ListByResources(context.Context, domain.ReservationsFilter) ([]*domain.Reservation, error) {
	return f.items, nil
}

type fakeResources struct{}

func (fakeResources) GetByID(_ context.Context, id int64) (*domain.Resource, error) {
	if id != 1 {
		return nil, resourceRepo.ErrResourceNotFound
	}
	return &domain.Resource{ID: 1, Name: "Court 1", Position: 9}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func at(hour, minute int) time.Time {
	return time.Date(2025, time.October, 13, hour, minute, 0, 0, time.UTC)
}

func res(id int64, h1, m1, h2, m2 int) *domain.Reservation {
	return &domain.Reservation{ID: id, ResourceID: 1, Start: at(h1, m1), End: at(h2, m2), Status: domain.StatusConfirmed}
}

var testGrid = grid.Grid{StartHour: 8, EndHour: 22, RowHeightPx: 60, SnapMinutes: 30}

func TestExecute_Layout(t *testing.T) {
	series := uuid.New()
	d := res(4, 12, 0, 13, 0)
	d.SeriesID = &series

	uc := NewUseCase(&fakeReservations{items: []*domain.Reservation{
		d,
		res(3, 10, 0, 11, 0),
		res(1, 9, 0, 10, 0),
		res(2, 9, 30, 10, 30),
	}}, fakeResources{}, testGrid, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{ResourceID: 1, Date: at(0, 0)})
	require.NoError(t, err)

	assert.Equal(t, "Court 1", resp.ResourceName)
	assert.Equal(t, domain.ColorFor(1), resp.Color)
	assert.InDelta(t, 840.0, resp.Grid.HeightPx, 1e-9)

	require.Len(t, resp.Cards, 4)
	a, b, c, dd := resp.Cards[0], resp.Cards[1], resp.Cards[2], resp.Cards[3]

	assert.Equal(t, int64(1), a.ReservationID)
	assert.InDelta(t, 60.0, a.TopPx, 1e-9)
	assert.InDelta(t, 60.0, a.HeightPx, 1e-9)
	assert.InDelta(t, 50.0, a.WidthPercent, 1e-9)
	assert.InDelta(t, 0.0, a.LeftPercent, 1e-9)

	assert.Equal(t, 1, b.Column)
	assert.InDelta(t, 50.0, b.LeftPercent, 1e-9)
	assert.InDelta(t, 90.0, b.TopPx, 1e-9)

	assert.Equal(t, 0, c.Column)
	assert.Equal(t, 2, c.TotalColumns)

	assert.Equal(t, 1, dd.TotalColumns)
	assert.InDelta(t, 100.0, dd.WidthPercent, 1e-9)
	require.NotNil(t, dd.SeriesID)
	assert.Equal(t, series.String(), *dd.SeriesID)
}

func TestExecute_EmptyDay(t *testing.T) {
	uc := NewUseCase(&fakeReservations{}, fakeResources{}, testGrid, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{ResourceID: 1, Date: at(0, 0)})

	require.NoError(t, err)
	assert.NotNil(t, resp.Cards)
	assert.Empty(t, resp.Cards)
}

func TestExecute_Errors(t *testing.T) {
	uc := NewUseCase(&fakeReservations{}, fakeResources{}, testGrid, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{ResourceID: 2, Date: at(0, 0)})
	assert.ErrorIs(t, err, ErrResourceNotFound)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.Execute(context.Background(), &Request{ResourceID: 1})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_StoredTimesInOtherZone(t *testing.T) {
	moscow, err := time.LoadLocation("Europe/Moscow")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}

	// 10:00-11:00 по Москве, прочитано из БД в UTC
	uc := NewUseCase(&fakeReservations{items: []*domain.Reservation{res(1, 7, 0, 8, 0)}},
		fakeResources{}, testGrid, nopLogger{})

	day := time.Date(2025, time.October, 13, 0, 0, 0, 0, moscow)
	resp, err := uc.Execute(context.Background(), &Request{ResourceID: 1, Date: day})
	require.NoError(t, err)

	require.Len(t, resp.Cards, 1)
	card := resp.Cards[0]
	assert.InDelta(t, 120.0, card.TopPx, 1e-9)
	assert.InDelta(t, 60.0, card.HeightPx, 1e-9)
	assert.Equal(t, 10, card.Start.Hour())
	assert.Equal(t, moscow, card.Start.Location())
}
