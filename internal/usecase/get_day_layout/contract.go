package get_day_layout

import (
	"context"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	ListByResources(ctx context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error)
}

// ResourceProvider источник ресурсов (кэш каталога)
type ResourceProvider interface {
	GetByID(ctx context.Context, id int64) (*domain.Resource, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
