package create_recurring_reservations

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingService/internal/api/middleware"
	createRecurring "github.com/m04kA/SMC-SchedulingService/internal/usecase/create_recurring_reservations"
)

type fakeUseCase struct {
	got *createRecurring.Request
	err error
}

func (f *fakeUseCase) Execute(_ context.Context, req *createRecurring.Request) (*createRecurring.Response, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	id := int64(11)
	second := req.Start.AddDate(0, 0, 7)
	return &createRecurring.Response{
		SeriesID:        uuid.MustParse("6f1c3a4e-2b7d-4c1e-9a55-0d3f2e8b7c10"),
		Requested:       2,
		Created:         1,
		SkippedConflict: 1,
		Occurrences: []createRecurring.Occurrence{
			{Start: req.Start, End: req.Start.Add(time.Hour), Outcome: createRecurring.OutcomeCreated, ReservationID: &id},
			{Start: second, End: second.Add(time.Hour), Outcome: createRecurring.OutcomeSkippedConflict},
		},
	}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

const body = `{
	"resourceId": 4,
	"start": "2025-10-13T10:00:00Z",
	"end": "2025-10-13T11:00:00Z",
	"frequency": "weekly",
	"count": 2,
	"customerName": "Ana"
}`

func serve(h *Handler, payload string) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodPost, "/api/v1/reservations/recurring", strings.NewReader(payload))
	r = r.WithContext(middleware.WithUserID(r.Context(), 7))
	w := httptest.NewRecorder()
	h.Handle(w, r)
	return w
}

func TestHandle_PartialSuccess(t *testing.T) {
	uc := &fakeUseCase{}
	w := serve(NewHandler(uc, time.UTC, nopLogger{}), body)
	require.Equal(t, http.StatusCreated, w.Code)

	assert.Equal(t, "weekly", uc.got.Frequency)
	require.NotNil(t, uc.got.End)
	assert.Equal(t, int64(7), uc.got.UserID)

	var resp SeriesResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, 1, resp.Created)
	assert.Equal(t, 1, resp.SkippedConflict)
	require.Len(t, resp.Occurrences, 2)
	assert.Equal(t, createRecurring.OutcomeSkippedConflict, resp.Occurrences[1].Outcome)
	assert.Nil(t, resp.Occurrences[1].ReservationID)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{name: "nothing created", err: createRecurring.ErrNoOccurrencesCreated, status: http.StatusConflict},
		{name: "resource", err: createRecurring.ErrResourceNotFound, status: http.StatusNotFound},
		{name: "hours", err: createRecurring.ErrOutsideBusinessHours, status: http.StatusBadRequest},
		{name: "invalid", err: createRecurring.ErrInvalidInput, status: http.StatusBadRequest},
		{name: "internal", err: createRecurring.ErrInternal, status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(NewHandler(&fakeUseCase{err: tt.err}, time.UTC, nopLogger{}), body)
			assert.Equal(t, tt.status, w.Code)
		})
	}
}

func TestHandle_InvalidFrequency(t *testing.T) {
	payload := strings.Replace(body, `"weekly"`, `"daily"`, 1)
	w := serve(NewHandler(&fakeUseCase{}, time.UTC, nopLogger{}), payload)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
