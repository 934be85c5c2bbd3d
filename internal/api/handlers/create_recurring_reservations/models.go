package create_recurring_reservations

import (
	"time"

	createRecurring "github.com/m04kA/SMC-SchedulingService/internal/usecase/create_recurring_reservations"
)

// CreateRecurringRequest HTTP request model
type CreateRecurringRequest struct {
	ResourceID    int64      `json:"resourceId" validate:"required,gt=0"`
	ServiceIDs    []int64    `json:"serviceIds,omitempty" validate:"omitempty,dive,gt=0"`
	Start         time.Time  `json:"start" validate:"required"`
	End           *time.Time `json:"end,omitempty"`
	Frequency     string     `json:"frequency" validate:"required,oneof=weekly monthly"`
	Count         int        `json:"count" validate:"required,gt=0"`
	CustomerName  string     `json:"customerName" validate:"required,max=200"`
	CustomerEmail *string    `json:"customerEmail,omitempty" validate:"omitempty,email"`
	CustomerPhone *string    `json:"customerPhone,omitempty" validate:"omitempty,max=32"`
	Notes         *string    `json:"notes,omitempty" validate:"omitempty,max=500"`
}

// OccurrenceResponse результат одного повторения
type OccurrenceResponse struct {
	Start         string `json:"start"`
	End           string `json:"end"`
	Outcome       string `json:"outcome"`
	ReservationID *int64 `json:"reservationId,omitempty"`
}

// SeriesResponse HTTP response model
type SeriesResponse struct {
	SeriesID        string               `json:"seriesId"`
	Requested       int                  `json:"requested"`
	Created         int                  `json:"created"`
	SkippedPast     int                  `json:"skippedPast"`
	SkippedConflict int                  `json:"skippedConflict"`
	Failed          int                  `json:"failed"`
	Occurrences     []OccurrenceResponse `json:"occurrences"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateRecurringRequest) ToUseCaseRequest(userID int64, loc *time.Location) *createRecurring.Request {
	req := &createRecurring.Request{
		UserID:        userID,
		ResourceID:    r.ResourceID,
		ServiceIDs:    r.ServiceIDs,
		Start:         r.Start.In(loc),
		Frequency:     r.Frequency,
		Count:         r.Count,
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
func FromUseCaseResponse(resp *createRecurring.Response) *SeriesResponse {
	out := &SeriesResponse{
		SeriesID:        resp.SeriesID.String(),
		Requested:       resp.Requested,
		Created:         resp.Created,
		SkippedPast:     resp.SkippedPast,
		SkippedConflict: resp.SkippedConflict,
		Failed:          resp.Failed,
		Occurrences:     make([]OccurrenceResponse, 0, len(resp.Occurrences)),
	}
	for _, o := range resp.Occurrences {
		out.Occurrences = append(out.Occurrences, OccurrenceResponse{
			Start:         o.Start.Format(time.RFC3339),
			End:           o.End.Format(time.RFC3339),
			Outcome:       o.Outcome,
			ReservationID: o.ReservationID,
		})
	}
	return out
}
