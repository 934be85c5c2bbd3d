package catalog

import (
	"context"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/pkg/dbmetrics"
)

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

// ServiceSource источник услуг для кэша
type ServiceSource interface {
	GetServicesByIDs(ctx context.Context, ids []int64) ([]*domain.Service, error)
}

// ResourceSource источник ресурсов для кэша
type ResourceSource interface {
	GetByID(ctx context.Context, id int64) (*domain.Resource, error)
}
