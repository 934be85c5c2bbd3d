package get_day_layout

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	getDayLayout "github.com/m04kA/SMC-SchedulingService/internal/usecase/get_day_layout"
)

type fakeUseCase struct {
	got *getDayLayout.Request
	err error
}

func (f *fakeUseCase) Execute(_ context.Context, req *getDayLayout.Request) (*getDayLayout.Response, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	start := req.Date.Add(9 * time.Hour)
	return &getDayLayout.Response{
		ResourceID:   req.ResourceID,
		ResourceName: "Chair 1",
		Date:         req.Date,
		Color:        domain.ColorFor(0),
		Grid:         getDayLayout.Grid{StartHour: 8, EndHour: 22, RowHeightPx: 60, SnapMinutes: 30, HeightPx: 840},
		Cards: []getDayLayout.Card{{
			ReservationID: 1,
			Start:         start,
			End:           start.Add(time.Hour),
			Status:        "confirmed",
			Column:        0,
			TotalColumns:  2,
			LeftPercent:   0,
			WidthPercent:  50,
			TopPx:         60,
			HeightPx:      60,
		}},
	}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(h *Handler, resourceID, query string) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodGet, "/?"+query, nil)
	r = mux.SetURLVars(r, map[string]string{"resourceId": resourceID})
	w := httptest.NewRecorder()
	h.Handle(w, r)
	return w
}

func TestHandle_OK(t *testing.T) {
	uc := &fakeUseCase{}
	w := serve(NewHandler(uc, time.UTC, nopLogger{}), "4", "date=2025-10-13")
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, int64(4), uc.got.ResourceID)
	assert.True(t, uc.got.Date.Equal(time.Date(2025, time.October, 13, 0, 0, 0, 0, time.UTC)))

	var resp DayLayoutResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "2025-10-13", resp.Date)
	require.Len(t, resp.Cards, 1)
	assert.Equal(t, "09:00", resp.Cards[0].StartTime)
	assert.Equal(t, 50.0, resp.Cards[0].WidthPercent)
	assert.Equal(t, domain.ColorFor(0).Border, resp.Color.Border)
}

func TestHandle_BadRequests(t *testing.T) {
	h := NewHandler(&fakeUseCase{}, time.UTC, nopLogger{})

	assert.Equal(t, http.StatusBadRequest, serve(h, "abc", "date=2025-10-13").Code)
	assert.Equal(t, http.StatusBadRequest, serve(h, "4", "").Code)
	assert.Equal(t, http.StatusBadRequest, serve(h, "4", "date=13.10.2025").Code)
}

func TestHandle_NotFound(t *testing.T) {
	h := NewHandler(&fakeUseCase{err: getDayLayout.ErrResourceNotFound}, time.UTC, nopLogger{})
	assert.Equal(t, http.StatusNotFound, serve(h, "4", "date=2025-10-13").Code)
}
