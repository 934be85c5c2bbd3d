package jobs

import (
	"context"
	"fmt"
	"time"
)

// ReservationFinalizer переводит завершившиеся бронирования в finalized
type ReservationFinalizer interface {
	FinalizeEnded(ctx context.Context, before time.Time) (int64, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// FinalizeJob задача завершения прошедших бронирований
type FinalizeJob struct {
	repo    ReservationFinalizer
	now     func() time.Time
	timeout time.Duration
	logger  Logger
}

// NewFinalizeJob создает задачу завершения бронирований
func NewFinalizeJob(repo ReservationFinalizer, timeout time.Duration, logger Logger) *FinalizeJob {
	return &FinalizeJob{
		repo:    repo,
		now:     time.Now,
		timeout: timeout,
		logger:  logger,
	}
}

// Run выполняет один проход и возвращает количество завершенных бронирований
func (j *FinalizeJob) Run(ctx context.Context) (int64, error) {
	if j.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, j.timeout)
		defer cancel()
	}

	now := j.now()
	count, err := j.repo.FinalizeEnded(ctx, now)
	if err != nil {
		j.logger.Error("FinalizeJob: failed to finalize reservations ended before %s: %v", now.Format(time.RFC3339), err)
		return 0, fmt.Errorf("finalize ended reservations: %w", err)
	}

	if count > 0 {
		j.logger.Info("FinalizeJob: finalized %d reservations", count)
	}
	return count, nil
}
