package get_available_slots

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-SchedulingService/internal/usecase/get_available_slots"
)

// AvailableSlotsQuery query параметры поиска слотов
// serviceIds передается повтором параметра: ?serviceIds=1&serviceIds=2
type AvailableSlotsQuery struct {
	Date       string  `query:"date" validate:"required,datetime=2006-01-02"`
	ServiceIDs []int64 `query:"serviceIds" validate:"required,min=1,dive,gt=0"`
	ResourceID *int64  `query:"resourceId" validate:"omitempty,gt=0"`
}

// SlotResponse HTTP модель слота
type SlotResponse struct {
	Start        string `json:"start"`
	End          string `json:"end"`
	StartTime    string `json:"startTime"`
	ResourceID   int64  `json:"resourceId"`
	ResourceName string `json:"resourceName"`
}

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date            string         `json:"date"`
	DurationMinutes int            `json:"durationMinutes"`
	ServiceIDs      []int64        `json:"serviceIds"`
	Slots           []SlotResponse `json:"slots"`
}

// ToUseCaseRequest конвертирует query в модель use case
func (q *AvailableSlotsQuery) ToUseCaseRequest(userID int64, loc *time.Location) (*getAvailableSlots.Request, error) {
	date, err := time.ParseInLocation(domain.DateFormat, q.Date, loc)
	if err != nil {
		return nil, fmt.Errorf("date: %w", err)
	}

	return &getAvailableSlots.Request{
		UserID:     userID,
		Date:       date,
		ServiceIDs: q.ServiceIDs,
		ResourceID: q.ResourceID,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	out := &AvailableSlotsResponse{
		Date:            resp.Date.Format(domain.DateFormat),
		DurationMinutes: resp.DurationMinutes,
		ServiceIDs:      resp.ServiceIDs,
		Slots:           make([]SlotResponse, 0, len(resp.Slots)),
	}

	for _, s := range resp.Slots {
		out.Slots = append(out.Slots, SlotResponse{
			Start:        s.Start.Format(time.RFC3339),
			End:          s.End.Format(time.RFC3339),
			StartTime:    s.StartTime.String(),
			ResourceID:   s.ResourceID,
			ResourceName: s.ResourceName,
		})
	}

	return out
}
