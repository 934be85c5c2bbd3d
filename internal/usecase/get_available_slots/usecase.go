package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	catalogRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/catalog"
	resourceRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/resource"
	"github.com/m04kA/SMC-SchedulingService/internal/scheduling/availability"
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// UseCase use case для получения доступных слотов для бронирования
type UseCase struct {
	reservationRepo ReservationRepository
	resourceRepo    ResourceRepository
	services        ServiceCatalog
	stepMinutes     int
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	resourceRepo ResourceRepository,
	services ServiceCatalog,
	stepMinutes int,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		resourceRepo:    resourceRepo,
		services:        services,
		stepMinutes:     stepMinutes,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: user=%d, date=%s, services=%v, resource=%v",
		req.UserID, req.Date.Format(domain.DateFormat), req.ServiceIDs, req.ResourceID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	if isDateInPast(req.Date, now) {
		uc.logger.Warn("GetAvailableSlots: date %s is in the past", req.Date.Format(domain.DateFormat))
		return nil, ErrInvalidDate
	}

	// 3. Получаем услуги и суммарную длительность
	services, err := uc.services.GetServicesByIDs(ctx, req.ServiceIDs)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailableSlots: services %v not found", req.ServiceIDs)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get services: %v", err)
		return nil, fmt.Errorf("%w: failed to get services: %v", ErrInternal, err)
	}
	duration := domain.TotalDuration(services)

	// 4. Определяем пул ресурсов: один специалист или все специалисты
	pool, err := uc.resolvePool(ctx, req.ResourceID)
	if err != nil {
		return nil, err
	}

	response := &Response{
		Date:            domain.StartOfDay(req.Date),
		DurationMinutes: int(duration / time.Minute),
		ServiceIDs:      req.ServiceIDs,
		Slots:           []Slot{},
	}
	if len(pool) == 0 {
		uc.logger.Info("GetAvailableSlots: no professionals available")
		return response, nil
	}

	// 5. Получаем бронирования пула на эту дату
	ids := make([]int64, 0, len(pool))
	names := make(map[int64]string, len(pool))
	hours := make(map[int64]availability.Hours, len(pool))
	for _, r := range pool {
		ids = append(ids, r.ID)
		names[r.ID] = r.Name
		hours[r.ID] = availability.Hours{OpenMinute: r.OpenMinute(), CloseMinute: r.CloseMinute()}
	}

	existing, err := uc.reservationRepo.ListByResources(ctx, domain.DayFilter(req.Date, ids...))
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to list reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to list reservations: %v", ErrInternal, err)
	}

	// 6. Перебираем сетку кандидатов, у каждого ресурса свои часы работы
	candidates := availability.FindSlots(availability.Request{
		Day:         req.Date,
		Duration:    duration,
		ResourceIDs: ids,
		Existing:    existing,
		Hours:       hours,
		StepMinutes: uc.stepMinutes,
		Now:         now,
	})

	for _, c := range candidates {
		response.Slots = append(response.Slots, Slot{
			Start:        c.Start,
			StartTime:    types.NewTimeString(c.Start),
			End:          c.Start.Add(duration),
			ResourceID:   c.ResourceID,
			ResourceName: names[c.ResourceID],
		})
	}

	uc.logger.Info("GetAvailableSlots: found %d slots across %d resources on %s",
		len(response.Slots), len(pool), req.Date.Format(domain.DateFormat))

	return response, nil
}

// resolvePool возвращает ресурсы, среди которых ищутся слоты
func (uc *UseCase) resolvePool(ctx context.Context, resourceID *int64) ([]*domain.Resource, error) {
	if resourceID != nil {
		resource, err := uc.resourceRepo.GetByID(ctx, *resourceID)
		if err != nil {
			if errors.Is(err, resourceRepo.ErrResourceNotFound) {
				uc.logger.Warn("GetAvailableSlots: resource id=%d not found", *resourceID)
				return nil, ErrResourceNotFound
			}
			uc.logger.Error("GetAvailableSlots: failed to get resource id=%d: %v", *resourceID, err)
			return nil, fmt.Errorf("%w: failed to get resource: %v", ErrInternal, err)
		}
		return []*domain.Resource{resource}, nil
	}

	kind := domain.ResourceKindProfessional
	resources, err := uc.resourceRepo.List(ctx, domain.ResourcesFilter{Kind: &kind})
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to list professionals: %v", err)
		return nil, fmt.Errorf("%w: failed to list professionals: %v", ErrInternal, err)
	}
	return resources, nil
}
