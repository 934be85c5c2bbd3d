package create_recurring_reservations

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SchedulingService/internal/usecase/create_reservation"
)

// Исход обработки одного повторения
const (
	OutcomeCreated         = "created"
	OutcomeSkippedPast     = "skipped_past"
	OutcomeSkippedConflict = "skipped_conflict"
	OutcomeFailed          = "failed"
)

// Request модель запроса на создание серии бронирований
type Request struct {
	UserID     int64
	ResourceID int64
	ServiceIDs []int64
	Start      time.Time  // Начало первого повторения
	End        *time.Time // Конец первого повторения; если не указан, вычисляется по услугам
	Frequency  string     // weekly | monthly
	Count      int        // Количество повторений, включая первое

	CustomerName  string
	CustomerEmail *string
	CustomerPhone *string
	Notes         *string
}

// Occurrence результат обработки одного повторения
type Occurrence struct {
	Start         time.Time
	End           time.Time
	Outcome       string
	ReservationID *int64
}

// Response итог создания серии
// Частичный успех - ожидаемый результат, а не ошибка
type Response struct {
	SeriesID        uuid.UUID
	Requested       int
	Created         int
	SkippedPast     int
	SkippedConflict int
	Failed          int
	Occurrences     []Occurrence
	Reservations    []*create_reservation.Response
}
