package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	UserID     int64     // ID пользователя (для логирования, не влияет на результат)
	Date       time.Time // Дата для получения слотов (часовой пояс площадки)
	ServiceIDs []int64   // Выбранные услуги; сумма длительностей задает длину слота
	ResourceID *int64    // Конкретный специалист; если не указан, ищем среди всех специалистов
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Date            time.Time
	DurationMinutes int
	ServiceIDs      []int64
	Slots           []Slot
}

// Slot кандидат на бронирование
// Одно и то же время у нескольких специалистов - несколько слотов
type Slot struct {
	Start        time.Time
	StartTime    types.TimeString
	End          time.Time
	ResourceID   int64
	ResourceName string
}
