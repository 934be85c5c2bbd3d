package apply_gesture

import (
	"fmt"
	"math"

	"github.com/m04kA/SMC-SchedulingService/internal/scheduling/manipulation"
)

// maxMoves ограничение длины трассы
const maxMoves = 1000

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) (manipulation.Mode, error) {
	if req.UserID <= 0 {
		return "", fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.ReservationID <= 0 {
		return "", fmt.Errorf("%w: reservationID must be positive", ErrInvalidInput)
	}

	mode, err := manipulation.ParseMode(req.Mode)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if len(req.Moves) > maxMoves {
		return "", fmt.Errorf("%w: too many moves (max %d)", ErrInvalidInput, maxMoves)
	}

	points := append([]float64{req.StartY, req.EndY}, req.Moves...)
	for _, y := range points {
		if math.IsNaN(y) || math.IsInf(y, 0) {
			return "", fmt.Errorf("%w: pointer coordinates must be finite", ErrInvalidInput)
		}
	}

	return mode, nil
}
