package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
)

// Scheduler запускает фоновые задачи по cron-расписанию
type Scheduler struct {
	cron   *cron.Cron
	logger Logger
}

// NewScheduler создает планировщик в часовом поясе площадки
// Запуск пропускается, если предыдущий еще выполняется
func NewScheduler(loc *time.Location, logger Logger) *Scheduler {
	return &Scheduler{
		cron: cron.New(
			cron.WithLocation(loc),
			cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
		),
		logger: logger,
	}
}

// AddFinalize регистрирует задачу завершения бронирований
func (s *Scheduler) AddFinalize(spec string, job *FinalizeJob) error {
	_, err := s.cron.AddFunc(spec, func() {
		_, _ = job.Run(context.Background())
	})
	if err != nil {
		return fmt.Errorf("invalid schedule %q: %w", spec, err)
	}
	s.logger.Info("Scheduler: finalize job registered with schedule %q", spec)
	return nil
}

// Start запускает планировщик в фоне
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop останавливает планировщик и ждет завершения запущенных задач или ctx
func (s *Scheduler) Stop(ctx context.Context) {
	done := s.cron.Stop()
	select {
	case <-done.Done():
	case <-ctx.Done():
		s.logger.Warn("Scheduler: stop timed out: %v", ctx.Err())
	}
}
