package apply_gesture

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = fmt.Errorf("apply_gesture: %w", domain.ErrNotFound)

	// ErrOutOfGrid возвращается, когда итоговый интервал выходит за видимую сетку дня
	ErrOutOfGrid = fmt.Errorf("apply_gesture: interval is outside the visible grid: %w", domain.ErrValidation)

	// ErrConflict возвращается, когда итоговый интервал пересекается с другим бронированием
	ErrConflict = fmt.Errorf("apply_gesture: %w", domain.ErrConflict)

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("apply_gesture: %w", domain.ErrValidation)

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("apply_gesture: internal error")
)
