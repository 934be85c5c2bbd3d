package apply_gesture

import (
	"context"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/internal/usecase/update_reservation"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	ListByResources(ctx context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error)
}

// IntervalUpdater сохраняет новый интервал (use case update_reservation)
type IntervalUpdater interface {
	Execute(ctx context.Context, req *update_reservation.Request) (*update_reservation.Response, error)
}

// ConflictRecorder счетчик отклоненных из-за пересечения запросов
type ConflictRecorder interface {
	IncConflict(source string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
