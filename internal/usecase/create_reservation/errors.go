package create_reservation

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

var (
	// ErrResourceNotFound возвращается, когда ресурс не найден
	ErrResourceNotFound = errors.New("create_reservation: resource not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("create_reservation: service not found")

	// ErrPastInterval возвращается при попытке забронировать прошедшее время
	ErrPastInterval = errors.New("create_reservation: interval is in the past")

	// ErrOutsideBusinessHours возвращается, когда интервал выходит за часы работы ресурса
	ErrOutsideBusinessHours = errors.New("create_reservation: interval is outside business hours")

	// ErrConflict возвращается, когда интервал пересекается с активным бронированием ресурса
	ErrConflict = fmt.Errorf("create_reservation: %w", domain.ErrConflict)

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("create_reservation: %w", domain.ErrValidation)

	// ErrTooShort возвращается, когда явный интервал короче минимальной длительности
	ErrTooShort = fmt.Errorf("%w: interval is shorter than minimum duration", ErrInvalidInput)

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)
