package update_reservation

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = fmt.Errorf("update_reservation: %w", domain.ErrNotFound)

	// ErrNotReschedulable возвращается, когда бронирование отменено или завершено
	ErrNotReschedulable = errors.New("update_reservation: reservation cannot be rescheduled")

	// ErrPastInterval возвращается при переносе на прошедшее время
	ErrPastInterval = errors.New("update_reservation: interval is in the past")

	// ErrTooShort возвращается, когда интервал короче минимальной длительности
	ErrTooShort = fmt.Errorf("update_reservation: interval is shorter than minimum duration: %w", domain.ErrValidation)

	// ErrOutsideBusinessHours возвращается, когда интервал выходит за часы работы ресурса
	ErrOutsideBusinessHours = errors.New("update_reservation: interval is outside business hours")

	// ErrConflict возвращается, когда новый интервал пересекается с другим бронированием ресурса
	ErrConflict = fmt.Errorf("update_reservation: %w", domain.ErrConflict)

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("update_reservation: %w", domain.ErrValidation)

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_reservation: internal error")
)
