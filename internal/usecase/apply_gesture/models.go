package apply_gesture

import (
	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/internal/usecase/update_reservation"
)

// Request трасса указателя над карточкой бронирования
// Координаты в пикселях сетки дня, смещение считается от StartY
type Request struct {
	UserID        int64
	ReservationID int64
	Mode          string
	StartY        float64
	Moves         []float64
	EndY          float64
}

// Response результат жеста
type Response struct {
	ReservationID int64
	Origin        domain.Interval
	Interval      domain.Interval

	// Previews интервалы предпросмотра для каждого Moves
	Previews []domain.Interval

	// Changed false, если интервал не изменился и запись не выполнялась
	Changed bool

	Reservation *update_reservation.Response
}
