package create_reservation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	catalogRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/catalog"
	reservationRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/reservation"
	resourceRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/resource"
	"github.com/m04kA/SMC-SchedulingService/internal/scheduling/conflict"
	"github.com/m04kA/SMC-SchedulingService/pkg/txmanager"
)

const conflictSource = "create"

// UseCase use case для создания бронирования
type UseCase struct {
	reservationRepo ReservationRepository
	resources       ResourceProvider
	services        ServiceCatalog
	txManager       TransactionManager
	conflicts       ConflictRecorder
	minDuration     time.Duration
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	resources ResourceProvider,
	services ServiceCatalog,
	txManager TransactionManager,
	conflicts ConflictRecorder,
	minDuration time.Duration,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		resources:       resources,
		services:        services,
		txManager:       txManager,
		conflicts:       conflicts,
		minDuration:     minDuration,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания бронирования
// Проверка конфликта и вставка выполняются в сериализуемой транзакции:
// клиентская проверка носит рекомендательный характер, сервер перепроверяет на записи
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: user=%d, resource=%d, start=%s, services=%v",
		req.UserID, req.ResourceID, req.Start.Format(domain.DateTimeFormat), req.ServiceIDs)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем ресурс
	resource, err := uc.resources.GetByID(ctx, req.ResourceID)
	if err != nil {
		if errors.Is(err, resourceRepo.ErrResourceNotFound) {
			uc.logger.Warn("CreateReservation: resource id=%d not found", req.ResourceID)
			return nil, ErrResourceNotFound
		}
		uc.logger.Error("CreateReservation: failed to get resource id=%d: %v", req.ResourceID, err)
		return nil, fmt.Errorf("%w: failed to get resource: %v", ErrInternal, err)
	}

	// 4. Определяем интервал: явный конец или сумма длительностей услуг
	interval, err := uc.resolveInterval(ctx, req)
	if err != nil {
		return nil, err
	}

	// 5. Проверяем интервал
	if err := interval.Validate(); err != nil {
		uc.logger.Warn("CreateReservation: invalid interval: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	// Нижняя граница длительности действует для явного конца, длительности услуг берутся из каталога как есть
	if req.End != nil && interval.Duration() < uc.minDuration {
		uc.logger.Warn("CreateReservation: interval %s is shorter than %s", interval, uc.minDuration)
		return nil, ErrTooShort
	}
	if interval.Start.Before(now) {
		uc.logger.Warn("CreateReservation: interval %s is in the past", interval)
		return nil, ErrPastInterval
	}
	if !resource.IsWithinBusinessHours(interval) {
		uc.logger.Warn("CreateReservation: interval %s is outside business hours %s-%s of resource id=%d",
			interval, resource.OpenTime, resource.CloseTime, resource.ID)
		return nil, ErrOutsideBusinessHours
	}

	var result *domain.Reservation

	// 6. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 6.1. Получаем активные бронирования ресурса на этот день с блокировкой (FOR UPDATE)
		existing, err := uc.reservationRepo.ListByResources(txCtx, domain.DayFilter(interval.Start, req.ResourceID))
		if err != nil {
			uc.logger.Error("CreateReservation: failed to list reservations: %v", err)
			return fmt.Errorf("%w: failed to list reservations: %v", ErrInternal, err)
		}

		// 6.2. Проверяем пересечение
		if blocking := conflict.Conflicts(req.ResourceID, interval, existing, nil); len(blocking) > 0 {
			uc.logger.Warn("CreateReservation: interval %s conflicts with reservation id=%d", interval, blocking[0].ID)
			return fmt.Errorf("%w: resource %d %s", ErrConflict, req.ResourceID, interval)
		}

		// 6.3. Сохраняем бронирование
		created, err := uc.reservationRepo.Create(txCtx, &domain.Reservation{
			ResourceID:    req.ResourceID,
			ServiceIDs:    req.ServiceIDs,
			Start:         interval.Start,
			End:           interval.End,
			Status:        domain.StatusConfirmed,
			SeriesID:      req.SeriesID,
			CustomerName:  req.CustomerName,
			CustomerEmail: req.CustomerEmail,
			CustomerPhone: req.CustomerPhone,
			Notes:         req.Notes,
			CreatedBy:     req.UserID,
		})
		if err != nil {
			if errors.Is(err, reservationRepo.ErrOverlap) {
				uc.logger.Warn("CreateReservation: overlap rejected by storage: %v", err)
				return fmt.Errorf("%w: resource %d %s", ErrConflict, req.ResourceID, interval)
			}
			uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
			return fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		// Конкурирующая транзакция заняла тот же интервал
		if errors.Is(err, txmanager.ErrSerialization) {
			uc.logger.Warn("CreateReservation: serialization failure: %v", err)
			err = fmt.Errorf("%w: resource %d %s", ErrConflict, req.ResourceID, interval)
		}
		if errors.Is(err, ErrConflict) {
			uc.conflicts.IncConflict(conflictSource)
		}
		return nil, err
	}

	uc.logger.Info("CreateReservation: successfully created reservation id=%d", result.ID)

	return toResponse(result), nil
}

// resolveInterval вычисляет интервал бронирования
func (uc *UseCase) resolveInterval(ctx context.Context, req *Request) (domain.Interval, error) {
	if req.End != nil {
		return domain.Interval{Start: req.Start, End: *req.End}, nil
	}

	services, err := uc.services.GetServicesByIDs(ctx, req.ServiceIDs)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateReservation: services %v not found", req.ServiceIDs)
			return domain.Interval{}, ErrServiceNotFound
		}
		uc.logger.Error("CreateReservation: failed to get services: %v", err)
		return domain.Interval{}, fmt.Errorf("%w: failed to get services: %v", ErrInternal, err)
	}

	return domain.NewInterval(req.Start, domain.TotalDuration(services)), nil
}

func toResponse(r *domain.Reservation) *Response {
	return &Response{
		ID:            r.ID,
		ResourceID:    r.ResourceID,
		ServiceIDs:    r.ServiceIDs,
		Start:         r.Start,
		End:           r.End,
		Status:        string(r.Status),
		SeriesID:      r.SeriesID,
		CustomerName:  r.CustomerName,
		CustomerEmail: r.CustomerEmail,
		CustomerPhone: r.CustomerPhone,
		Notes:         r.Notes,
		CreatedBy:     r.CreatedBy,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}
