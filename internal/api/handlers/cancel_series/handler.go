package cancel_series

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	"github.com/m04kA/SMC-SchedulingService/internal/api/middleware"
	"github.com/m04kA/SMC-SchedulingService/internal/service/reservations"
)

const (
	msgInvalidSeriesID = "некорректный ID серии"
	msgMissingUserID   = "отсутствует ID пользователя"
	msgNotFound        = "серия не найдена"
)

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/series/{seriesId}/cancel
// Отменяет будущие повторения, прошедшие остаются без изменений
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	seriesID, err := uuid.Parse(mux.Vars(r)["seriesId"])
	if err != nil {
		h.logger.Warn("PATCH /series/{id}/cancel - Invalid series ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSeriesID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /series/{id}/cancel - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	result, err := h.service.CancelSeries(r.Context(), seriesID, userID)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrSeriesNotFound):
			h.logger.Warn("PATCH /series/{id}/cancel - Series not found: series_id=%s", seriesID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("PATCH /series/{id}/cancel - Failed to cancel series: series_id=%s, error=%v", seriesID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /series/{id}/cancel - Series cancelled: series_id=%s, cancelled=%d, skipped=%d",
		seriesID, result.Cancelled, result.Skipped)
	handlers.RespondJSON(w, http.StatusOK, result)
}
