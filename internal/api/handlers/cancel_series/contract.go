package cancel_series

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SchedulingService/internal/service/reservations/models"
)

type ReservationService interface {
	CancelSeries(ctx context.Context, seriesID uuid.UUID, userID int64) (*models.CancelSeriesResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
