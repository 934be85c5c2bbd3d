package create_recurring_reservations

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

var (
	// ErrResourceNotFound возвращается, когда ресурс не найден
	ErrResourceNotFound = errors.New("create_recurring_reservations: resource not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("create_recurring_reservations: service not found")

	// ErrOutsideBusinessHours возвращается, когда исходный интервал выходит за часы работы ресурса
	ErrOutsideBusinessHours = errors.New("create_recurring_reservations: interval is outside business hours")

	// ErrNoOccurrencesCreated возвращается, когда ни одно повторение не было создано
	ErrNoOccurrencesCreated = errors.New("create_recurring_reservations: no occurrences created")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("create_recurring_reservations: %w", domain.ErrValidation)

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_recurring_reservations: internal error")
)
