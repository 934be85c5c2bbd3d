package apply_gesture

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	applyGesture "github.com/m04kA/SMC-SchedulingService/internal/usecase/apply_gesture"
)

// GestureRequest HTTP request model: трасса указателя в пикселях сетки
type GestureRequest struct {
	Mode   string    `json:"mode" validate:"required,oneof=move resize_start resize_end"`
	StartY float64   `json:"startY"`
	Moves  []float64 `json:"moves,omitempty" validate:"max=1000"`
	EndY   float64   `json:"endY"`
}

// IntervalResponse интервал в ответе
type IntervalResponse struct {
	Start     string `json:"start"`
	End       string `json:"end"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// GestureResponse HTTP response model
type GestureResponse struct {
	ReservationID int64              `json:"reservationId"`
	Origin        IntervalResponse   `json:"origin"`
	Interval      IntervalResponse   `json:"interval"`
	Previews      []IntervalResponse `json:"previews"`
	Changed       bool               `json:"changed"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *GestureRequest) ToUseCaseRequest(userID, reservationID int64) *applyGesture.Request {
	return &applyGesture.Request{
		UserID:        userID,
		ReservationID: reservationID,
		Mode:          r.Mode,
		StartY:        r.StartY,
		Moves:         r.Moves,
		EndY:          r.EndY,
	}
}

func fromInterval(iv domain.Interval) IntervalResponse {
	return IntervalResponse{
		Start:     iv.Start.Format(time.RFC3339),
		End:       iv.End.Format(time.RFC3339),
		StartTime: iv.Start.Format(domain.TimeFormat),
		EndTime:   iv.End.Format(domain.TimeFormat),
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *applyGesture.Response) *GestureResponse {
	out := &GestureResponse{
		ReservationID: resp.ReservationID,
		Origin:        fromInterval(resp.Origin),
		Interval:      fromInterval(resp.Interval),
		Previews:      make([]IntervalResponse, 0, len(resp.Previews)),
		Changed:       resp.Changed,
	}
	for _, p := range resp.Previews {
		out.Previews = append(out.Previews, fromInterval(p))
	}
	return out
}
