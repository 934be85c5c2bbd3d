package list_reservations

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/internal/service/reservations/models"
)

// ListReservationsQuery query параметры списка бронирований
// Даты в формате YYYY-MM-DD, to включительно
type ListReservationsQuery struct {
	ResourceID      *int64  `query:"resourceId" validate:"omitempty,gt=0"`
	From            string  `query:"from" validate:"omitempty,datetime=2006-01-02"`
	To              string  `query:"to" validate:"omitempty,datetime=2006-01-02"`
	Status          *string `query:"status" validate:"omitempty,oneof=pending confirmed finalized cancelled"`
	SeriesID        string  `query:"seriesId" validate:"omitempty,uuid"`
	Mine            bool    `query:"mine"`
	IncludeInactive bool    `query:"includeInactive"`
}

// ToServiceRequest конвертирует query в модель сервиса
func (q *ListReservationsQuery) ToServiceRequest(userID int64, loc *time.Location) (*models.ListReservationsRequest, error) {
	req := &models.ListReservationsRequest{
		UserID:          userID,
		ResourceID:      q.ResourceID,
		Status:          q.Status,
		OnlyMine:        q.Mine,
		IncludeInactive: q.IncludeInactive,
	}

	if q.From != "" {
		from, err := time.ParseInLocation(domain.DateFormat, q.From, loc)
		if err != nil {
			return nil, fmt.Errorf("from: %w", err)
		}
		req.From = &from
	}
	if q.To != "" {
		to, err := time.ParseInLocation(domain.DateFormat, q.To, loc)
		if err != nil {
			return nil, fmt.Errorf("to: %w", err)
		}
		to = to.AddDate(0, 0, 1)
		req.To = &to
	}

	if q.SeriesID != "" {
		id, err := uuid.Parse(q.SeriesID)
		if err != nil {
			return nil, fmt.Errorf("seriesId: %w", err)
		}
		req.SeriesID = &id
	}

	return req, nil
}
