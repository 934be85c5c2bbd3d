package create_reservation

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	createReservation "github.com/m04kA/SMC-SchedulingService/internal/usecase/create_reservation"
)

// CreateReservationRequest HTTP request model
// Время в RFC 3339, переводится в часовой пояс площадки
type CreateReservationRequest struct {
	ResourceID    int64      `json:"resourceId" validate:"required,gt=0"`
	ServiceIDs    []int64    `json:"serviceIds,omitempty" validate:"omitempty,dive,gt=0"`
	Start         time.Time  `json:"start" validate:"required"`
	End           *time.Time `json:"end,omitempty"`
	CustomerName  string     `json:"customerName" validate:"required,max=200"`
	CustomerEmail *string    `json:"customerEmail,omitempty" validate:"omitempty,email"`
	CustomerPhone *string    `json:"customerPhone,omitempty" validate:"omitempty,max=32"`
	Notes         *string    `json:"notes,omitempty" validate:"omitempty,max=500"`
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID            int64      `json:"id"`
	ResourceID    int64      `json:"resourceId"`
	ServiceIDs    []int64    `json:"serviceIds"`
	Date          string     `json:"date"`
	StartTime     string     `json:"startTime"`
	EndTime       string     `json:"endTime"`
	Start         string     `json:"start"`
	End           string     `json:"end"`
	Status        string     `json:"status"`
	SeriesID      *uuid.UUID `json:"seriesId,omitempty"`
	CustomerName  string     `json:"customerName"`
	CustomerEmail *string    `json:"customerEmail,omitempty"`
	CustomerPhone *string    `json:"customerPhone,omitempty"`
	Notes         *string    `json:"notes,omitempty"`
	CreatedBy     int64      `json:"createdBy"`
	CreatedAt     string     `json:"createdAt"`
	UpdatedAt     string     `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReservationRequest) ToUseCaseRequest(userID int64, loc *time.Location) *createReservation.Request {
	req := &createReservation.Request{
		UserID:        userID,
		ResourceID:    r.ResourceID,
		ServiceIDs:    r.ServiceIDs,
		Start:         r.Start.In(loc),
		CustomerName:  r.CustomerName,
		CustomerEmail: r.CustomerEmail,
		CustomerPhone: r.CustomerPhone,
		Notes:         r.Notes,
	}
	if r.End != nil {
		end := r.End.In(loc)
		req.End = &end
	}
	return req
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createReservation.Response) *ReservationResponse {
	return &ReservationResponse{
		ID:            resp.ID,
		ResourceID:    resp.ResourceID,
		ServiceIDs:    resp.ServiceIDs,
		Date:          resp.Start.Format(domain.DateFormat),
		StartTime:     resp.Start.Format(domain.TimeFormat),
		EndTime:       resp.End.Format(domain.TimeFormat),
		Start:         resp.Start.Format(time.RFC3339),
		End:           resp.End.Format(time.RFC3339),
		Status:        resp.Status,
		SeriesID:      resp.SeriesID,
		CustomerName:  resp.CustomerName,
		CustomerEmail: resp.CustomerEmail,
		CustomerPhone: resp.CustomerPhone,
		Notes:         resp.Notes,
		CreatedBy:     resp.CreatedBy,
		CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     resp.UpdatedAt.Format(time.RFC3339),
	}
}
