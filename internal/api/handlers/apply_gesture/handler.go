package apply_gesture

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	updateReservationHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/update_reservation"
	"github.com/m04kA/SMC-SchedulingService/internal/api/middleware"
	applyGesture "github.com/m04kA/SMC-SchedulingService/internal/usecase/apply_gesture"
)

const (
	msgInvalidReservationID = "некорректный ID бронирования"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgMissingUserID        = "отсутствует ID пользователя"
	msgNotFound             = "бронирование не найдено"
	msgOutOfGrid            = "интервал выходит за пределы сетки дня"
	msgSlotNotAvailable     = "выбранное время занято"
	msgInvalidData          = "некорректные параметры жеста"
)

const route = "POST /reservations/{id}/gestures"

type Handler struct {
	useCase ApplyGestureUseCase
	logger  Logger
}

func NewHandler(useCase ApplyGestureUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations/{reservationId}/gestures
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	reservationID, err := handlers.PathInt64(r, "reservationId")
	if err != nil {
		h.logger.Warn("%s - Invalid reservation ID: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("%s - Missing user ID", route)
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req GestureRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("%s - Invalid request body: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(userID, reservationID))
	if err != nil {
		switch {
		case errors.Is(err, applyGesture.ErrReservationNotFound):
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, applyGesture.ErrOutOfGrid):
			h.logger.Warn("%s - Out of grid: reservation_id=%d", route, reservationID)
			handlers.RespondUnprocessable(w, msgOutOfGrid)

		case errors.Is(err, applyGesture.ErrConflict):
			h.logger.Warn("%s - Slot not available: reservation_id=%d", route, reservationID)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, applyGesture.ErrInvalidInput):
			h.logger.Warn("%s - Invalid data: %v", route, err)
			handlers.RespondBadRequest(w, msgInvalidData)

		case errors.Is(err, applyGesture.ErrInternal):
			h.logger.Error("%s - Failed to apply gesture: reservation_id=%d, error=%v", route, reservationID, err)
			handlers.RespondInternalError(w)

		default:
			// Ошибка сохранения через перенос бронирования
			updateReservationHandler.RespondUseCaseError(w, err, h.logger, route, reservationID)
		}
		return
	}

	h.logger.Info("%s - Gesture applied: reservation_id=%d, changed=%t", route, reservationID, result.Changed)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
