package get_day_layout

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	resourceRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/resource"
	"github.com/m04kA/SMC-SchedulingService/internal/scheduling/grid"
	"github.com/m04kA/SMC-SchedulingService/internal/scheduling/layout"
)

// UseCase раскладка бронирований ресурса на день: колонки, пиксельные координаты, цвет
// Пересчитывается целиком на каждый запрос
type UseCase struct {
	reservationRepo ReservationRepository
	resources       ResourceProvider
	grid            grid.Grid
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(reservationRepo ReservationRepository, resources ResourceProvider, g grid.Grid, logger Logger) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		resources:       resources,
		grid:            g,
		logger:          logger,
	}
}

// Execute выполняет use case
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetDayLayout: resource=%d, date=%s", req.ResourceID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if req.ResourceID <= 0 {
		return nil, fmt.Errorf("%w: resourceID must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// 2. Получаем ресурс
	resource, err := uc.resources.GetByID(ctx, req.ResourceID)
	if err != nil {
		if errors.Is(err, resourceRepo.ErrResourceNotFound) {
			uc.logger.Warn("GetDayLayout: resource id=%d not found", req.ResourceID)
			return nil, ErrResourceNotFound
		}
		uc.logger.Error("GetDayLayout: failed to get resource id=%d: %v", req.ResourceID, err)
		return nil, fmt.Errorf("%w: failed to get resource: %v", ErrInternal, err)
	}

	// 3. Получаем активные бронирования на день
	reservations, err := uc.reservationRepo.ListByResources(ctx, domain.DayFilter(req.Date, req.ResourceID))
	if err != nil {
		uc.logger.Error("GetDayLayout: failed to list reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to list reservations: %v", ErrInternal, err)
	}

	// 4. Переводим время в часовой пояс запрошенной даты и раскладываем по колонкам
	location := req.Date.Location()
	local := make([]*domain.Reservation, 0, len(reservations))
	byID := make(map[int64]*domain.Reservation, len(reservations))
	for _, r := range reservations {
		r = r.In(location)
		local = append(local, r)
		byID[r.ID] = r
	}
	assignments := layout.Assign(local)

	// 5. Переводим время в координаты сетки
	cards := make([]Card, 0, len(assignments))
	for _, a := range assignments {
		r := byID[a.ReservationID]
		top := uc.grid.TimeToOffset(r.Start)

		card := Card{
			ReservationID: r.ID,
			Start:         r.Start,
			End:           r.End,
			Status:        string(r.Status),
			CustomerName:  r.CustomerName,
			Column:        a.Column,
			TotalColumns:  a.TotalColumns,
			LeftPercent:   a.LeftPercent(),
			WidthPercent:  a.WidthPercent(),
			TopPx:         top,
			HeightPx:      float64(r.Interval().DurationMinutes()) / 60 * uc.grid.RowHeightPx,
		}
		if r.SeriesID != nil {
			s := r.SeriesID.String()
			card.SeriesID = &s
		}
		cards = append(cards, card)
	}

	uc.logger.Info("GetDayLayout: resource=%d laid out %d reservations", req.ResourceID, len(cards))

	return &Response{
		ResourceID:   resource.ID,
		ResourceName: resource.Name,
		Date:         domain.StartOfDay(req.Date),
		Color:        domain.ColorFor(resource.Position),
		Grid: Grid{
			StartHour:   uc.grid.StartHour,
			EndHour:     uc.grid.EndHour,
			RowHeightPx: uc.grid.RowHeightPx,
			SnapMinutes: uc.grid.SnapMinutes,
			HeightPx:    uc.grid.Height(),
		},
		Cards: cards,
	}, nil
}
