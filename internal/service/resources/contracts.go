package resources

import (
	"context"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// ResourceRepository интерфейс репозитория ресурсов
type ResourceRepository interface {
	Create(ctx context.Context, resource *domain.Resource) (*domain.Resource, error)
	GetByID(ctx context.Context, id int64) (*domain.Resource, error)
	List(ctx context.Context, filter domain.ResourcesFilter) ([]*domain.Resource, error)
	Update(ctx context.Context, id int64, resource *domain.Resource) (*domain.Resource, error)
}

// CacheInvalidator сбрасывает запись ресурса в кэше каталога
type CacheInvalidator interface {
	InvalidateResource(id int64)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
