package catalog

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// Cache кэширует справочники (услуги, ресурсы) с ограничением по размеру и TTL
// Справочники меняются редко, а читаются на каждый запрос слотов и раскладки дня
type Cache struct {
	services  ServiceSource
	resources ResourceSource

	serviceCache  *expirable.LRU[int64, *domain.Service]
	resourceCache *expirable.LRU[int64, *domain.Resource]
}

// NewCache создает кэш поверх источников
func NewCache(services ServiceSource, resources ResourceSource, size int, ttl time.Duration) *Cache {
	return &Cache{
		services:      services,
		resources:     resources,
		serviceCache:  expirable.NewLRU[int64, *domain.Service](size, nil, ttl),
		resourceCache: expirable.NewLRU[int64, *domain.Resource](size, nil, ttl),
	}
}

// GetServicesByIDs возвращает услуги в порядке ids, догружая отсутствующие одним запросом
func (c *Cache) GetServicesByIDs(ctx context.Context, ids []int64) ([]*domain.Service, error) {
	missing := make([]int64, 0)
	for _, id := range ids {
		if _, ok := c.serviceCache.Get(id); !ok {
			missing = append(missing, id)
		}
	}

	if len(missing) > 0 {
		loaded, err := c.services.GetServicesByIDs(ctx, missing)
		if err != nil {
			return nil, err
		}
		for _, s := range loaded {
			c.serviceCache.Add(s.ID, s)
		}
	}

	result := make([]*domain.Service, 0, len(ids))
	for _, id := range ids {
		s, ok := c.serviceCache.Get(id)
		if !ok {
			// запись вытеснена между загрузкой и чтением
			return c.services.GetServicesByIDs(ctx, ids)
		}
		result = append(result, s)
	}
	return result, nil
}

// GetByID возвращает ресурс из кэша или источника
func (c *Cache) GetByID(ctx context.Context, id int64) (*domain.Resource, error) {
	if r, ok := c.resourceCache.Get(id); ok {
		return r, nil
	}

	r, err := c.resources.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	c.resourceCache.Add(id, r)
	return r, nil
}

// InvalidateResource удаляет ресурс из кэша после изменения
func (c *Cache) InvalidateResource(id int64) {
	c.resourceCache.Remove(id)
}
