package create_reservation

import (
	"time"

	"github.com/google/uuid"
)

// Request модель запроса на создание бронирования
type Request struct {
	UserID     int64      // ID пользователя, создающего бронирование
	ResourceID int64      // ID ресурса (помещение или специалист)
	ServiceIDs []int64    // Услуги (для специалиста); сумма длительностей задает конец интервала
	Start      time.Time  // Начало интервала
	End        *time.Time // Конец интервала; если не указан, вычисляется по услугам

	CustomerName  string
	CustomerEmail *string
	CustomerPhone *string
	Notes         *string

	SeriesID *uuid.UUID // Серия повторяющихся бронирований (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID         int64
	ResourceID int64
	ServiceIDs []int64
	Start      time.Time
	End        time.Time
	Status     string
	SeriesID   *uuid.UUID

	CustomerName  string
	CustomerEmail *string
	CustomerPhone *string
	Notes         *string

	CreatedBy int64
	CreatedAt time.Time
	UpdatedAt time.Time
}
