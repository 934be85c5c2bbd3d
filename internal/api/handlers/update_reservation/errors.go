package update_reservation

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	updateReservation "github.com/m04kA/SMC-SchedulingService/internal/usecase/update_reservation"
)

const (
	msgNotFound             = "бронирование не найдено"
	msgSlotNotAvailable     = "выбранное время занято"
	msgNotReschedulable     = "бронирование нельзя перенести"
	msgPastInterval         = "нельзя перенести на прошедшее время"
	msgTooShort             = "длительность меньше минимальной"
	msgOutsideBusinessHours = "время вне часов работы ресурса"
	msgInvalidData          = "некорректный интервал"
)

// RespondUseCaseError отвечает на ошибку переноса бронирования
// Используется также обработчиком жестов, который сохраняет результат через перенос
func RespondUseCaseError(w http.ResponseWriter, err error, logger Logger, route string, reservationID int64) {
	switch {
	case errors.Is(err, updateReservation.ErrReservationNotFound):
		logger.Warn("%s - Reservation not found: reservation_id=%d", route, reservationID)
		handlers.RespondNotFound(w, msgNotFound)

	case errors.Is(err, updateReservation.ErrConflict):
		logger.Warn("%s - Slot not available: reservation_id=%d", route, reservationID)
		handlers.RespondConflict(w, msgSlotNotAvailable)

	case errors.Is(err, updateReservation.ErrNotReschedulable):
		handlers.RespondUnprocessable(w, msgNotReschedulable)

	case errors.Is(err, updateReservation.ErrPastInterval):
		handlers.RespondBadRequest(w, msgPastInterval)

	case errors.Is(err, updateReservation.ErrTooShort):
		handlers.RespondBadRequest(w, msgTooShort)

	case errors.Is(err, updateReservation.ErrOutsideBusinessHours):
		handlers.RespondBadRequest(w, msgOutsideBusinessHours)

	case errors.Is(err, updateReservation.ErrInvalidInput):
		logger.Warn("%s - Invalid data: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidData)

	default:
		logger.Error("%s - Failed to update reservation: reservation_id=%d, error=%v", route, reservationID, err)
		handlers.RespondInternalError(w)
	}
}
