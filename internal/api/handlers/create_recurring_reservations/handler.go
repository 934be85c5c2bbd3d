package create_recurring_reservations

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	"github.com/m04kA/SMC-SchedulingService/internal/api/middleware"
	createRecurring "github.com/m04kA/SMC-SchedulingService/internal/usecase/create_recurring_reservations"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgMissingUserID        = "отсутствует ID пользователя"
	msgResourceNotFound     = "ресурс не найден"
	msgServiceNotFound      = "услуга не найдена"
	msgOutsideBusinessHours = "время вне часов работы ресурса"
	msgNoOccurrences        = "ни одно повторение не было создано"
	msgInvalidData          = "некорректные параметры повторения"
)

type Handler struct {
	useCase  CreateRecurringUseCase
	location *time.Location
	logger   Logger
}

func NewHandler(useCase CreateRecurringUseCase, location *time.Location, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		location: location,
		logger:   logger,
	}
}

// Handle POST /api/v1/reservations/recurring
// Частичный успех возвращается как 201 с итогами по каждому повторению
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /reservations/recurring - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateRecurringRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations/recurring - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(userID, h.location))
	if err != nil {
		switch {
		case errors.Is(err, createRecurring.ErrNoOccurrencesCreated):
			h.logger.Warn("POST /reservations/recurring - No occurrences created: user_id=%d, resource_id=%d",
				userID, req.ResourceID)
			handlers.RespondConflict(w, msgNoOccurrences)

		case errors.Is(err, createRecurring.ErrResourceNotFound):
			handlers.RespondNotFound(w, msgResourceNotFound)

		case errors.Is(err, createRecurring.ErrServiceNotFound):
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createRecurring.ErrOutsideBusinessHours):
			handlers.RespondBadRequest(w, msgOutsideBusinessHours)

		case errors.Is(err, createRecurring.ErrInvalidInput):
			h.logger.Warn("POST /reservations/recurring - Invalid data: %v", err)
			handlers.RespondBadRequest(w, msgInvalidData)

		default:
			h.logger.Error("POST /reservations/recurring - Failed to create series: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations/recurring - Series created: series_id=%s, created=%d of %d",
		result.SeriesID, result.Created, result.Requested)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
