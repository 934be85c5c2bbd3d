package get_day_layout

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// Request модель запроса раскладки дня ресурса
type Request struct {
	ResourceID int64
	Date       time.Time
}

// Grid параметры сетки дня
type Grid struct {
	StartHour   int
	EndHour     int
	RowHeightPx float64
	SnapMinutes int
	HeightPx    float64
}

// Card карточка бронирования в колонке дня
// Координаты не обрезаются по границам сетки
type Card struct {
	ReservationID int64
	Start         time.Time
	End           time.Time
	Status        string
	CustomerName  string
	SeriesID      *string

	Column       int
	TotalColumns int
	LeftPercent  float64
	WidthPercent float64
	TopPx        float64
	HeightPx     float64
}

// Response раскладка дня
type Response struct {
	ResourceID   int64
	ResourceName string
	Date         time.Time
	Color        domain.PaletteEntry
	Grid         Grid
	Cards        []Card
}
