package list_reservations

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingService/internal/api/middleware"
	"github.com/m04kA/SMC-SchedulingService/internal/service/reservations/models"
)

type fakeService struct{ got *models.ListReservationsRequest }

func (f *fakeService) List(_ context.Context, req *models.ListReservationsRequest) (*models.ReservationListResponse, error) {
	f.got = req
	return &models.ReservationListResponse{Reservations: []models.ReservationResponse{}}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(h *Handler, target string) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodGet, target, nil)
	r = r.WithContext(middleware.WithUserID(r.Context(), 7))
	w := httptest.NewRecorder()
	h.Handle(w, r)
	return w
}

func TestHandle_ParsesQuery(t *testing.T) {
	svc := &fakeService{}
	h := NewHandler(svc, time.UTC, nopLogger{})

	w := serve(h, "/api/v1/reservations?resourceId=3&from=2025-10-13&to=2025-10-13&status=confirmed&mine=true")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())

	require.NotNil(t, svc.got.ResourceID)
	assert.Equal(t, int64(3), *svc.got.ResourceID)
	assert.Equal(t, time.Date(2025, time.October, 13, 0, 0, 0, 0, time.UTC), *svc.got.From)
	assert.Equal(t, time.Date(2025, time.October, 14, 0, 0, 0, 0, time.UTC), *svc.got.To)
	assert.True(t, svc.got.OnlyMine)
	assert.Equal(t, int64(7), svc.got.UserID)
}

func TestHandle_InvalidQuery(t *testing.T) {
	h := NewHandler(&fakeService{}, time.UTC, nopLogger{})

	for _, target := range []string{
		"/api/v1/reservations?from=13.10.2025",
		"/api/v1/reservations?status=lost",
		"/api/v1/reservations?resourceId=abc",
		"/api/v1/reservations?seriesId=nope",
	} {
		w := serve(h, target)
		assert.Equal(t, http.StatusBadRequest, w.Code, target)
	}
}
