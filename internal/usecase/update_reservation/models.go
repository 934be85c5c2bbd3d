package update_reservation

import (
	"time"

	"github.com/google/uuid"
)

// Request модель запроса на перенос/изменение длительности бронирования
type Request struct {
	UserID        int64
	ReservationID int64
	Start         time.Time
	End           time.Time
}

// Response модель ответа с обновленным бронированием
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

	// Changed false, если интервал совпал с текущим и запись не выполнялась
	Changed bool
}
