package get_day_layout

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	getDayLayout "github.com/m04kA/SMC-SchedulingService/internal/usecase/get_day_layout"
)

// LayoutQuery query параметры раскладки дня
type LayoutQuery struct {
	Date string `query:"date" validate:"required,datetime=2006-01-02"`
}

// ColorResponse цвета карточек ресурса
type ColorResponse struct {
	Background string `json:"background"`
	Border     string `json:"border"`
	Text       string `json:"text"`
}

// GridResponse параметры сетки дня
type GridResponse struct {
	StartHour   int     `json:"startHour"`
	EndHour     int     `json:"endHour"`
	RowHeightPx float64 `json:"rowHeightPx"`
	SnapMinutes int     `json:"snapMinutes"`
	HeightPx    float64 `json:"heightPx"`
}

// CardResponse карточка бронирования
type CardResponse struct {
	ReservationID int64   `json:"reservationId"`
	Start         string  `json:"start"`
	End           string  `json:"end"`
	StartTime     string  `json:"startTime"`
	EndTime       string  `json:"endTime"`
	Status        string  `json:"status"`
	CustomerName  string  `json:"customerName"`
	SeriesID      *string `json:"seriesId,omitempty"`
	Column        int     `json:"column"`
	TotalColumns  int     `json:"totalColumns"`
	LeftPercent   float64 `json:"leftPercent"`
	WidthPercent  float64 `json:"widthPercent"`
	TopPx         float64 `json:"topPx"`
	HeightPx      float64 `json:"heightPx"`
}

// DayLayoutResponse HTTP response model
type DayLayoutResponse struct {
	ResourceID   int64          `json:"resourceId"`
	ResourceName string         `json:"resourceName"`
	Date         string         `json:"date"`
	Color        ColorResponse  `json:"color"`
	Grid         GridResponse   `json:"grid"`
	Cards        []CardResponse `json:"cards"`
}

// ToUseCaseRequest конвертирует query в модель use case
func (q *LayoutQuery) ToUseCaseRequest(resourceID int64, loc *time.Location) (*getDayLayout.Request, error) {
	date, err := time.ParseInLocation(domain.DateFormat, q.Date, loc)
	if err != nil {
		return nil, fmt.Errorf("date: %w", err)
	}
	return &getDayLayout.Request{ResourceID: resourceID, Date: date}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getDayLayout.Response) *DayLayoutResponse {
	out := &DayLayoutResponse{
		ResourceID:   resp.ResourceID,
		ResourceName: resp.ResourceName,
		Date:         resp.Date.Format(domain.DateFormat),
		Color: ColorResponse{
			Background: resp.Color.Background,
			Border:     resp.Color.Border,
			Text:       resp.Color.Text,
		},
		Grid: GridResponse{
			StartHour:   resp.Grid.StartHour,
			EndHour:     resp.Grid.EndHour,
			RowHeightPx: resp.Grid.RowHeightPx,
			SnapMinutes: resp.Grid.SnapMinutes,
			HeightPx:    resp.Grid.HeightPx,
		},
		Cards: make([]CardResponse, 0, len(resp.Cards)),
	}

	for _, c := range resp.Cards {
		out.Cards = append(out.Cards, CardResponse{
			ReservationID: c.ReservationID,
			Start:         c.Start.Format(time.RFC3339),
			End:           c.End.Format(time.RFC3339),
			StartTime:     c.Start.Format(domain.TimeFormat),
			EndTime:       c.End.Format(domain.TimeFormat),
			Status:        c.Status,
			CustomerName:  c.CustomerName,
			SeriesID:      c.SeriesID,
			Column:        c.Column,
			TotalColumns:  c.TotalColumns,
			LeftPercent:   c.LeftPercent,
			WidthPercent:  c.WidthPercent,
			TopPx:         c.TopPx,
			HeightPx:      c.HeightPx,
		})
	}

	return out
}
