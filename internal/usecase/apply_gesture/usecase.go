package apply_gesture

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-SchedulingService/internal/scheduling/grid"
	"github.com/m04kA/SMC-SchedulingService/internal/scheduling/manipulation"
	"github.com/m04kA/SMC-SchedulingService/internal/usecase/update_reservation"
)

const conflictSource = "gesture"

// UseCase проигрывает жест перетаскивания/растягивания карточки и сохраняет результат
type UseCase struct {
	reservationRepo ReservationRepository
	updater         IntervalUpdater
	conflicts       ConflictRecorder
	grid            grid.Grid
	minDuration     time.Duration
	location        *time.Location
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	updater IntervalUpdater,
	conflicts ConflictRecorder,
	g grid.Grid,
	minDuration time.Duration,
	location *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		updater:         updater,
		conflicts:       conflicts,
		grid:            g,
		minDuration:     minDuration,
		location:        location,
		logger:          logger,
	}
}

// Execute выполняет use case
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ApplyGesture: user=%d, reservation=%d, mode=%s, moves=%d",
		req.UserID, req.ReservationID, req.Mode, len(req.Moves))

	// 1. Валидация входных данных
	mode, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("ApplyGesture: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем бронирование
	target, err := uc.reservationRepo.GetByID(ctx, req.ReservationID)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			uc.logger.Warn("ApplyGesture: reservation id=%d not found", req.ReservationID)
			return nil, ErrReservationNotFound
		}
		uc.logger.Error("ApplyGesture: failed to get reservation id=%d: %v", req.ReservationID, err)
		return nil, fmt.Errorf("%w: failed to get reservation: %v", ErrInternal, err)
	}

	// Сетка и день карточки считаются в часовом поясе площадки
	target = target.In(uc.location)

	// 3. Получаем бронирования ресурса на день карточки
	existing, err := uc.reservationRepo.ListByResources(ctx, domain.DayFilter(target.Start, target.ResourceID))
	if err != nil {
		uc.logger.Error("ApplyGesture: failed to list reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to list reservations: %v", ErrInternal, err)
	}

	// 4. Проигрываем трассу указателя
	controller := manipulation.NewController(uc.grid, uc.minDuration)
	if err := controller.PointerDown(target, mode, req.StartY); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	previews := make([]domain.Interval, 0, len(req.Moves))
	for _, y := range req.Moves {
		preview, err := controller.PointerMove(y)
		if err != nil {
			uc.logger.Error("ApplyGesture: pointer move failed: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
		previews = append(previews, preview)
	}

	response := &Response{
		ReservationID: target.ID,
		Origin:        target.Interval(),
		Interval:      target.Interval(),
		Previews:      previews,
	}

	commit, err := controller.PointerUp(req.EndY, existing)
	if err != nil {
		switch {
		case errors.Is(err, manipulation.ErrOutOfGrid):
			uc.logger.Warn("ApplyGesture: reservation id=%d: %v", target.ID, err)
			return nil, fmt.Errorf("%w: %v", ErrOutOfGrid, err)
		case errors.Is(err, domain.ErrConflict):
			uc.logger.Warn("ApplyGesture: reservation id=%d: %v", target.ID, err)
			uc.conflicts.IncConflict(conflictSource)
			return nil, fmt.Errorf("%w: %v", ErrConflict, err)
		}
		uc.logger.Error("ApplyGesture: pointer up failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	// 5. Интервал не изменился: сохранять нечего
	if commit == nil {
		uc.logger.Info("ApplyGesture: reservation id=%d unchanged", target.ID)
		return response, nil
	}

	// 6. Сохраняем через перенос бронирования (повторная проверка в транзакции)
	updated, err := uc.updater.Execute(ctx, &update_reservation.Request{
		UserID:        req.UserID,
		ReservationID: commit.ReservationID,
		Start:         commit.Interval.Start,
		End:           commit.Interval.End,
	})
	if err != nil {
		uc.logger.Warn("ApplyGesture: failed to persist reservation id=%d: %v", commit.ReservationID, err)
		return nil, err
	}

	response.Interval = commit.Interval
	response.Changed = updated.Changed
	response.Reservation = updated

	uc.logger.Info("ApplyGesture: reservation id=%d moved %s -> %s", target.ID, commit.Origin, commit.Interval)

	return response, nil
}
