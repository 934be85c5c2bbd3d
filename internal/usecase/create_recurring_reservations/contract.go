package create_recurring_reservations

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/internal/usecase/create_reservation"
)

// ReservationCreator создание одного бронирования в собственной транзакции
type ReservationCreator interface {
	Execute(ctx context.Context, req *create_reservation.Request) (*create_reservation.Response, error)
}

// ResourceProvider источник ресурсов (кэш каталога)
type ResourceProvider interface {
	GetByID(ctx context.Context, id int64) (*domain.Resource, error)
}

// ServiceCatalog источник услуг (кэш каталога)
type ServiceCatalog interface {
	GetServicesByIDs(ctx context.Context, ids []int64) ([]*domain.Service, error)
}

// OccurrenceRecorder счетчик исходов по каждому повторению
type OccurrenceRecorder interface {
	IncOccurrence(outcome string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
