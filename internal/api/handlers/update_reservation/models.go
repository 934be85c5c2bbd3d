package update_reservation

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	updateReservation "github.com/m04kA/SMC-SchedulingService/internal/usecase/update_reservation"
)

// UpdateIntervalRequest HTTP request model
type UpdateIntervalRequest struct {
	Start time.Time `json:"start" validate:"required"`
	End   time.Time `json:"end" validate:"required"`
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID         int64   `json:"id"`
	ResourceID int64   `json:"resourceId"`
	Date       string  `json:"date"`
	StartTime  string  `json:"startTime"`
	EndTime    string  `json:"endTime"`
	Start      string  `json:"start"`
	End        string  `json:"end"`
	Status     string  `json:"status"`
	Changed    bool    `json:"changed"`
	SeriesID   *string `json:"seriesId,omitempty"`
	UpdatedAt  string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdateIntervalRequest) ToUseCaseRequest(userID, reservationID int64, loc *time.Location) *updateReservation.Request {
	return &updateReservation.Request{
		UserID:        userID,
		ReservationID: reservationID,
		Start:         r.Start.In(loc),
		End:           r.End.In(loc),
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *updateReservation.Response) *ReservationResponse {
	out := &ReservationResponse{
		ID:         resp.ID,
		ResourceID: resp.ResourceID,
		Date:       resp.Start.Format(domain.DateFormat),
		StartTime:  resp.Start.Format(domain.TimeFormat),
		EndTime:    resp.End.Format(domain.TimeFormat),
		Start:      resp.Start.Format(time.RFC3339),
		End:        resp.End.Format(time.RFC3339),
		Status:     resp.Status,
		Changed:    resp.Changed,
		UpdatedAt:  resp.UpdatedAt.Format(time.RFC3339),
	}
	if resp.SeriesID != nil {
		s := resp.SeriesID.String()
		out.SeriesID = &s
	}
	return out
}
