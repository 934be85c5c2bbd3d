package create_recurring_reservations

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request, maxCount int) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.ResourceID <= 0 {
		return fmt.Errorf("%w: resourceID must be positive", ErrInvalidInput)
	}

	if req.Start.IsZero() {
		return fmt.Errorf("%w: start is required", ErrInvalidInput)
	}

	if req.End == nil && len(req.ServiceIDs) == 0 {
		return fmt.Errorf("%w: end or serviceIds is required", ErrInvalidInput)
	}

	if req.Count <= 0 {
		return fmt.Errorf("%w: count must be positive", ErrInvalidInput)
	}

	if maxCount > 0 && req.Count > maxCount {
		return fmt.Errorf("%w: count must not exceed %d", ErrInvalidInput, maxCount)
	}

	if strings.TrimSpace(req.CustomerName) == "" {
		return fmt.Errorf("%w: customerName is required", ErrInvalidInput)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}
