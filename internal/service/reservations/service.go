package reservations

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-SchedulingService/internal/service/reservations/models"
)

// Service сервис для чтения и отмены бронирований
type Service struct {
	reservationRepo ReservationRepository
	resources       ResourceProvider
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	reservationRepo ReservationRepository,
	resources ResourceProvider,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		resources:       resources,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id int64, userID int64) (*models.ReservationResponse, error) {
	s.logger.Info("GetByID: fetching reservation id=%d for user=%d", id, userID)

	reservation, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("GetByID: reservation id=%d not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("GetByID: repository error for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByID: successfully fetched reservation id=%d", id)
	return models.FromDomainReservation(reservation), nil
}

// List получает бронирования с гибкой фильтрацией
//
// Примеры использования:
// - День ресурса: ResourceID и период From..To длиной в сутки
// - Мои бронирования: OnlyMine = true
// - Серия повторений: SeriesID
// - Включая отменённые: IncludeInactive = true
func (s *Service) List(ctx context.Context, req *models.ListReservationsRequest) (*models.ReservationListResponse, error) {
	s.logger.Info("List: fetching reservations for user=%d, resource=%v, onlyMine=%t", req.UserID, req.ResourceID, req.OnlyMine)

	filter, err := s.filter(req)
	if err != nil {
		return nil, err
	}

	reservations, err := s.reservationRepo.ListByResources(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d reservations", len(reservations))
	return models.FromDomainReservationList(reservations), nil
}

// Cancel отменяет бронирование
// Отменённое бронирование освобождает интервал ресурса
func (s *Service) Cancel(ctx context.Context, id int64, userID int64) error {
	s.logger.Info("Cancel: cancelling reservation id=%d by user=%d", id, userID)

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		// Получаем бронирование с блокировкой
		reservation, err := s.reservationRepo.GetByID(txCtx, id)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				s.logger.Warn("Cancel: reservation id=%d not found", id)
				return ErrReservationNotFound
			}
			s.logger.Error("Cancel: repository error for reservation id=%d: %v", id, err)
			return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
		}

		if !reservation.CanBeCancelled() {
			s.logger.Warn("Cancel: reservation id=%d cannot be cancelled, status=%s", id, reservation.Status)
			return ErrCannotCancel
		}

		if err := s.reservationRepo.Cancel(txCtx, id); err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				return ErrReservationNotFound
			}
			s.logger.Error("Cancel: repository error for reservation id=%d: %v", id, err)
			return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("Cancel: successfully cancelled reservation id=%d", id)
	return nil
}

// CancelSeries отменяет будущие повторения серии
// Прошедшие и завершённые повторения не трогаются
func (s *Service) CancelSeries(ctx context.Context, seriesID uuid.UUID, userID int64) (*models.CancelSeriesResponse, error) {
	s.logger.Info("CancelSeries: cancelling series=%s by user=%d", seriesID, userID)

	now := s.timeProvider.Now()
	result := &models.CancelSeriesResponse{SeriesID: seriesID}

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		occurrences, err := s.reservationRepo.ListByResources(txCtx, domain.ReservationsFilter{SeriesID: &seriesID})
		if err != nil {
			s.logger.Error("CancelSeries: repository error: %v", err)
			return fmt.Errorf("%w: CancelSeries - repository error: %v", ErrInternal, err)
		}
		if len(occurrences) == 0 {
			s.logger.Warn("CancelSeries: series=%s has no active reservations", seriesID)
			return ErrSeriesNotFound
		}

		for _, r := range occurrences {
			if !r.CanBeCancelled() || r.Start.Before(now) {
				result.Skipped++
				continue
			}
			if err := s.reservationRepo.Cancel(txCtx, r.ID); err != nil {
				s.logger.Error("CancelSeries: failed to cancel reservation id=%d: %v", r.ID, err)
				return fmt.Errorf("%w: CancelSeries - repository error: %v", ErrInternal, err)
			}
			result.Cancelled++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("CancelSeries: series=%s cancelled=%d skipped=%d", seriesID, result.Cancelled, result.Skipped)
	return result, nil
}

func (s *Service) filter(req *models.ListReservationsRequest) (domain.ReservationsFilter, error) {
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("invalid reservations filter: %v", err)
		return filter, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return filter, nil
}
