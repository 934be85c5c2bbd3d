package resources

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	resourceRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/resource"
	"github.com/m04kA/SMC-SchedulingService/internal/service/resources/models"
)

const maxNameLength = 100

// Service сервис для работы с ресурсами (помещения и специалисты)
type Service struct {
	resourceRepo ResourceRepository
	cache        CacheInvalidator
	logger       Logger
}

// NewService создает новый экземпляр сервиса ресурсов
func NewService(resourceRepo ResourceRepository, cache CacheInvalidator, logger Logger) *Service {
	return &Service{
		resourceRepo: resourceRepo,
		cache:        cache,
		logger:       logger,
	}
}

// Create создает новый ресурс
func (s *Service) Create(ctx context.Context, req *models.CreateResourceRequest) (*models.ResourceResponse, error) {
	s.logger.Info("Create: creating resource kind=%s, name=%q by user=%d", req.Kind, req.Name, req.UserID)

	// 1. Валидируем входные данные
	if _, ok := domain.ParseResourceKind(req.Kind); !ok {
		s.logger.Warn("Create: invalid kind=%q", req.Kind)
		return nil, fmt.Errorf("%w: kind must be space or professional", ErrInvalidInput)
	}

	resource := req.ToDomainResource()
	if err := s.validateResource(resource); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	// 2. Создаем ресурс
	created, err := s.resourceRepo.Create(ctx, resource)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created resource id=%d", created.ID)
	return models.FromDomainResource(created), nil
}

// GetByID получает ресурс по ID
// Публичный метод - доступен всем
func (s *Service) GetByID(ctx context.Context, id int64) (*models.ResourceResponse, error) {
	s.logger.Info("GetByID: fetching resource id=%d", id)

	resource, err := s.resourceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, resourceRepo.ErrResourceNotFound) {
			s.logger.Warn("GetByID: resource id=%d not found", id)
			return nil, ErrResourceNotFound
		}
		s.logger.Error("GetByID: repository error for resource id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainResource(resource), nil
}

// List получает ресурсы в порядке отображения
func (s *Service) List(ctx context.Context, req *models.ListResourcesRequest) (*models.ResourceListResponse, error) {
	filter := domain.ResourcesFilter{}
	if req.Kind != nil {
		kind, ok := domain.ParseResourceKind(*req.Kind)
		if !ok {
			s.logger.Warn("List: invalid kind=%q", *req.Kind)
			return nil, fmt.Errorf("%w: kind must be space or professional", ErrInvalidInput)
		}
		filter.Kind = &kind
	}

	resources, err := s.resourceRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d resources", len(resources))
	return models.FromDomainResourceList(resources), nil
}

// Update обновляет существующий ресурс
// Поддерживает частичное обновление - обновляются только указанные поля
// Уже созданные бронирования не перепроверяются на новые часы работы
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateResourceRequest) (*models.ResourceResponse, error) {
	s.logger.Info("Update: updating resource id=%d by user=%d", id, req.UserID)

	// 1. Получаем существующий ресурс
	resource, err := s.resourceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, resourceRepo.ErrResourceNotFound) {
			s.logger.Warn("Update: resource id=%d not found", id)
			return nil, ErrResourceNotFound
		}
		s.logger.Error("Update: repository error for resource id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	// 2. Применяем обновления и валидируем
	req.ApplyToResource(resource)
	if err := s.validateResource(resource); err != nil {
		s.logger.Warn("Update: validation failed for resource id=%d: %v", id, err)
		return nil, err
	}

	// 3. Обновляем ресурс в БД
	updated, err := s.resourceRepo.Update(ctx, id, resource)
	if err != nil {
		if errors.Is(err, resourceRepo.ErrResourceNotFound) {
			return nil, ErrResourceNotFound
		}
		s.logger.Error("Update: repository error for resource id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	// 4. Сбрасываем кэш каталога
	s.cache.InvalidateResource(id)

	s.logger.Info("Update: successfully updated resource id=%d", id)
	return models.FromDomainResource(updated), nil
}

// validateResource валидирует параметры ресурса
func (s *Service) validateResource(r *domain.Resource) error {
	name := strings.TrimSpace(r.Name)
	if name == "" || len(name) > maxNameLength {
		return fmt.Errorf("%w: name must be 1..%d characters", ErrInvalidInput, maxNameLength)
	}

	if err := r.OpenTime.Validate(); err != nil {
		return fmt.Errorf("%w: openTime: %v", ErrInvalidInput, err)
	}
	if err := r.CloseTime.Validate(); err != nil {
		return fmt.Errorf("%w: closeTime: %v", ErrInvalidInput, err)
	}
	if !r.OpenTime.IsBefore(r.CloseTime) {
		return fmt.Errorf("%w: openTime must be before closeTime", ErrInvalidInput)
	}

	if r.Position < 0 {
		return fmt.Errorf("%w: position must not be negative", ErrInvalidInput)
	}

	return nil
}
