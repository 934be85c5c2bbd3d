package create_recurring_reservations

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	catalogRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/catalog"
	resourceRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/resource"
	"github.com/m04kA/SMC-SchedulingService/internal/scheduling/recurrence"
	"github.com/m04kA/SMC-SchedulingService/internal/usecase/create_reservation"
)

// UseCase use case для создания серии повторяющихся бронирований
type UseCase struct {
	creator      ReservationCreator
	resources    ResourceProvider
	services     ServiceCatalog
	occurrences  OccurrenceRecorder
	maxCount     int
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	creator ReservationCreator,
	resources ResourceProvider,
	services ServiceCatalog,
	occurrences OccurrenceRecorder,
	maxCount int,
	logger Logger,
) *UseCase {
	return &UseCase{
		creator:      creator,
		resources:    resources,
		services:     services,
		occurrences:  occurrences,
		maxCount:     maxCount,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute разворачивает серию и создает каждое повторение независимо
// Прошедшие и конфликтующие повторения пропускаются без ошибки.
// Ошибка возвращается, только если не создано ни одного повторения.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateRecurringReservations: user=%d, resource=%d, start=%s, frequency=%s, count=%d",
		req.UserID, req.ResourceID, req.Start.Format(domain.DateTimeFormat), req.Frequency, req.Count)

	// 1. Валидация входных данных
	if err := validateRequest(req, uc.maxCount); err != nil {
		uc.logger.Warn("CreateRecurringReservations: validation failed: %v", err)
		return nil, err
	}

	freq, err := recurrence.ParseFrequency(req.Frequency)
	if err != nil {
		uc.logger.Warn("CreateRecurringReservations: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// 2. Получаем ресурс
	resource, err := uc.resources.GetByID(ctx, req.ResourceID)
	if err != nil {
		if errors.Is(err, resourceRepo.ErrResourceNotFound) {
			uc.logger.Warn("CreateRecurringReservations: resource id=%d not found", req.ResourceID)
			return nil, ErrResourceNotFound
		}
		uc.logger.Error("CreateRecurringReservations: failed to get resource id=%d: %v", req.ResourceID, err)
		return nil, fmt.Errorf("%w: failed to get resource: %v", ErrInternal, err)
	}

	// 3. Определяем исходный интервал
	seed, err := uc.resolveSeed(ctx, req)
	if err != nil {
		return nil, err
	}

	if !resource.IsWithinBusinessHours(seed) {
		uc.logger.Warn("CreateRecurringReservations: seed %s is outside business hours of resource id=%d", seed, resource.ID)
		return nil, ErrOutsideBusinessHours
	}

	// 4. Разворачиваем серию
	intervals, err := recurrence.Expand(seed, freq, req.Count)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		uc.logger.Error("CreateRecurringReservations: failed to expand series: %v", err)
		return nil, fmt.Errorf("%w: failed to expand series: %v", ErrInternal, err)
	}

	now := uc.timeProvider.Now()
	seriesID := uuid.New()

	resp := &Response{
		SeriesID:     seriesID,
		Requested:    req.Count,
		Occurrences:  make([]Occurrence, 0, len(intervals)),
		Reservations: make([]*create_reservation.Response, 0, len(intervals)),
	}

	// 5. Создаем каждое повторение в собственной транзакции
	var lastErr error
	for i, interval := range intervals {
		occurrence := Occurrence{Start: interval.Start, End: interval.End}

		// 5.1. Прошедшие повторения пропускаются молча
		if interval.Start.Before(now) {
			occurrence.Outcome = OutcomeSkippedPast
			resp.SkippedPast++
			uc.record(resp, occurrence)
			continue
		}

		end := interval.End
		created, err := uc.creator.Execute(ctx, &create_reservation.Request{
			UserID:        req.UserID,
			ResourceID:    req.ResourceID,
			ServiceIDs:    req.ServiceIDs,
			Start:         interval.Start,
			End:           &end,
			CustomerName:  req.CustomerName,
			CustomerEmail: req.CustomerEmail,
			CustomerPhone: req.CustomerPhone,
			Notes:         req.Notes,
			SeriesID:      &seriesID,
		})

		switch {
		case err == nil:
			occurrence.Outcome = OutcomeCreated
			occurrence.ReservationID = &created.ID
			resp.Created++
			resp.Reservations = append(resp.Reservations, created)
		case errors.Is(err, create_reservation.ErrConflict):
			// 5.2. Конфликтующие повторения пропускаются молча
			occurrence.Outcome = OutcomeSkippedConflict
			resp.SkippedConflict++
		case errors.Is(err, create_reservation.ErrPastInterval):
			occurrence.Outcome = OutcomeSkippedPast
			resp.SkippedPast++
		default:
			// 5.3. Ошибка одного повторения не откатывает остальные
			uc.logger.Error("CreateRecurringReservations: occurrence %d (%s) failed: %v", i, interval, err)
			occurrence.Outcome = OutcomeFailed
			resp.Failed++
			lastErr = err
		}

		uc.record(resp, occurrence)
	}

	uc.logger.Info("CreateRecurringReservations: series=%s created %d/%d (past=%d, conflict=%d, failed=%d)",
		seriesID, resp.Created, resp.Requested, resp.SkippedPast, resp.SkippedConflict, resp.Failed)

	if resp.Created == 0 {
		if lastErr != nil {
			return resp, fmt.Errorf("%w: %v", ErrNoOccurrencesCreated, lastErr)
		}
		return resp, ErrNoOccurrencesCreated
	}

	return resp, nil
}

func (uc *UseCase) record(resp *Response, occurrence Occurrence) {
	resp.Occurrences = append(resp.Occurrences, occurrence)
	uc.occurrences.IncOccurrence(occurrence.Outcome)
}

// resolveSeed вычисляет интервал первого повторения
func (uc *UseCase) resolveSeed(ctx context.Context, req *Request) (domain.Interval, error) {
	var seed domain.Interval
	if req.End != nil {
		seed = domain.Interval{Start: req.Start, End: *req.End}
	} else {
		services, err := uc.services.GetServicesByIDs(ctx, req.ServiceIDs)
		if err != nil {
			if errors.Is(err, catalogRepo.ErrServiceNotFound) {
				uc.logger.Warn("CreateRecurringReservations: services %v not found", req.ServiceIDs)
				return domain.Interval{}, ErrServiceNotFound
			}
			uc.logger.Error("CreateRecurringReservations: failed to get services: %v", err)
			return domain.Interval{}, fmt.Errorf("%w: failed to get services: %v", ErrInternal, err)
		}
		seed = domain.NewInterval(req.Start, domain.TotalDuration(services))
	}

	if err := seed.Validate(); err != nil {
		uc.logger.Warn("CreateRecurringReservations: invalid seed: %v", err)
		return domain.Interval{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return seed, nil
}
