package update_resource

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingService/internal/api/middleware"
	"github.com/m04kA/SMC-SchedulingService/internal/service/resources"
	"github.com/m04kA/SMC-SchedulingService/internal/service/resources/models"
)

type fakeService struct {
	got *models.UpdateResourceRequest
	err error
}

func (f *fakeService) Update(_ context.Context, id int64, req *models.UpdateResourceRequest) (*models.ResourceResponse, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return &models.ResourceResponse{ID: id, Name: "Room A"}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(h *Handler, body string, withUser bool) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(body))
	r = mux.SetURLVars(r, map[string]string{"resourceId": "2"})
	if withUser {
		r = r.WithContext(middleware.WithUserID(r.Context(), 7))
	}
	w := httptest.NewRecorder()
	h.Handle(w, r)
	return w
}

func TestHandle_PartialUpdate(t *testing.T) {
	svc := &fakeService{}
	w := serve(NewHandler(svc, nopLogger{}), `{"closeTime":"20:00"}`, true)
	require.Equal(t, http.StatusOK, w.Code)

	require.NotNil(t, svc.got.CloseTime)
	assert.Equal(t, "20:00", svc.got.CloseTime.String())
	assert.Nil(t, svc.got.Name)
	assert.Equal(t, int64(7), svc.got.UserID)
}

func TestHandle_Errors(t *testing.T) {
	assert.Equal(t, http.StatusUnauthorized, serve(NewHandler(&fakeService{}, nopLogger{}), `{}`, false).Code)
	assert.Equal(t, http.StatusBadRequest, serve(NewHandler(&fakeService{}, nopLogger{}), `{"openTime":"25:00"}`, true).Code)
	assert.Equal(t, http.StatusNotFound, serve(NewHandler(&fakeService{err: resources.ErrResourceNotFound}, nopLogger{}), `{}`, true).Code)
	assert.Equal(t, http.StatusBadRequest, serve(NewHandler(&fakeService{err: resources.ErrInvalidInput}, nopLogger{}), `{}`, true).Code)
}
