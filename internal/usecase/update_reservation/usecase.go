package update_reservation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-SchedulingService/internal/scheduling/conflict"
	"github.com/m04kA/SMC-SchedulingService/pkg/txmanager"
)

const conflictSource = "update"

// UseCase use case для переноса и изменения длительности бронирования
type UseCase struct {
	reservationRepo ReservationRepository
	resources       ResourceProvider
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
	txManager TransactionManager,
	conflicts ConflictRecorder,
	minDuration time.Duration,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		resources:       resources,
		txManager:       txManager,
		conflicts:       conflicts,
		minDuration:     minDuration,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет перенос бронирования на новый интервал
// Проверка конфликта исключает само бронирование
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateReservation: user=%d, reservation=%d, start=%s, end=%s",
		req.UserID, req.ReservationID, req.Start.Format(domain.DateTimeFormat), req.End.Format(domain.DateTimeFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateReservation: validation failed: %v", err)
		return nil, err
	}

	interval := domain.Interval{Start: req.Start, End: req.End}
	if interval.Duration() < uc.minDuration {
		uc.logger.Warn("UpdateReservation: interval %s is shorter than %s", interval, uc.minDuration)
		return nil, ErrTooShort
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	var result *domain.Reservation
	changed := true

	// 3. Выполняем операции с БД в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Получаем бронирование с блокировкой
		current, err := uc.reservationRepo.GetByID(txCtx, req.ReservationID)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				uc.logger.Warn("UpdateReservation: reservation id=%d not found", req.ReservationID)
				return ErrReservationNotFound
			}
			uc.logger.Error("UpdateReservation: failed to get reservation id=%d: %v", req.ReservationID, err)
			return fmt.Errorf("%w: failed to get reservation: %v", ErrInternal, err)
		}

		// 3.2. Интервал не изменился: запись не нужна
		if current.Interval().Equal(interval) {
			uc.logger.Info("UpdateReservation: reservation id=%d unchanged", current.ID)
			result = current
			changed = false
			return nil
		}

		if !current.CanBeRescheduled() {
			uc.logger.Warn("UpdateReservation: reservation id=%d has status %s", current.ID, current.Status)
			return ErrNotReschedulable
		}

		if interval.Start.Before(now) {
			uc.logger.Warn("UpdateReservation: interval %s is in the past", interval)
			return ErrPastInterval
		}

		// 3.3. Проверяем часы работы ресурса
		resource, err := uc.resources.GetByID(txCtx, current.ResourceID)
		if err != nil {
			uc.logger.Error("UpdateReservation: failed to get resource id=%d: %v", current.ResourceID, err)
			return fmt.Errorf("%w: failed to get resource: %v", ErrInternal, err)
		}
		if !resource.IsWithinBusinessHours(interval) {
			uc.logger.Warn("UpdateReservation: interval %s is outside business hours of resource id=%d", interval, resource.ID)
			return ErrOutsideBusinessHours
		}

		// 3.4. Получаем бронирования ресурса на день с блокировкой и проверяем пересечение
		existing, err := uc.reservationRepo.ListByResources(txCtx, domain.DayFilter(interval.Start, current.ResourceID))
		if err != nil {
			uc.logger.Error("UpdateReservation: failed to list reservations: %v", err)
			return fmt.Errorf("%w: failed to list reservations: %v", ErrInternal, err)
		}

		if conflict.HasConflict(current.ResourceID, interval, existing, &current.ID) {
			uc.logger.Warn("UpdateReservation: interval %s conflicts on resource id=%d", interval, current.ResourceID)
			return fmt.Errorf("%w: resource %d %s", ErrConflict, current.ResourceID, interval)
		}

		// 3.5. Сохраняем новый интервал
		updated, err := uc.reservationRepo.UpdateInterval(txCtx, current.ID, interval)
		if err != nil {
			switch {
			case errors.Is(err, reservationRepo.ErrReservationNotFound):
				return ErrReservationNotFound
			case errors.Is(err, reservationRepo.ErrOverlap):
				uc.logger.Warn("UpdateReservation: overlap rejected by storage: %v", err)
				return fmt.Errorf("%w: resource %d %s", ErrConflict, current.ResourceID, interval)
			}
			uc.logger.Error("UpdateReservation: failed to update reservation id=%d: %v", current.ID, err)
			return fmt.Errorf("%w: failed to update reservation: %v", ErrInternal, err)
		}

		result = updated
		return nil
	})

	if err != nil {
		if errors.Is(err, txmanager.ErrSerialization) {
			uc.logger.Warn("UpdateReservation: serialization failure: %v", err)
			err = fmt.Errorf("%w: reservation %d %s", ErrConflict, req.ReservationID, interval)
		}
		if errors.Is(err, ErrConflict) {
			uc.conflicts.IncConflict(conflictSource)
		}
		return nil, err
	}

	uc.logger.Info("UpdateReservation: reservation id=%d now %s", result.ID, result.Interval())

	return &Response{
		ID:            result.ID,
		ResourceID:    result.ResourceID,
		ServiceIDs:    result.ServiceIDs,
		Start:         result.Start,
		End:           result.End,
		Status:        string(result.Status),
		SeriesID:      result.SeriesID,
		CustomerName:  result.CustomerName,
		CustomerEmail: result.CustomerEmail,
		CustomerPhone: result.CustomerPhone,
		Notes:         result.Notes,
		CreatedBy:     result.CreatedBy,
		CreatedAt:     result.CreatedAt,
		UpdatedAt:     result.UpdatedAt,
		Changed:       changed,
	}, nil
}
