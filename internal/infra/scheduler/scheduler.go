package scheduler

import (
	"context"
	"log/slog"
	"time"

	"rentx-api/internal/pkg/config"

	"github.com/robfig/cron/v3"
)

type Job interface {
	Run()
}

// Scheduler runs the background jobs on their cron schedules in UTC.
type Scheduler struct {
	cron *cron.Cron
}

func NewScheduler(notification config.NotificationConfig, cfg config.SchedulerConfig, dispatcher, reconciler Job) *Scheduler {
	c := cron.New(
		cron.WithLocation(time.UTC),
		cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
	)
	s := &Scheduler{cron: c}

	s.register("outbox_dispatch", notification.DispatchSchedule, dispatcher)
	s.register("stock_reconcile", cfg.ReconcileSchedule, reconciler)
	return s
}

func (s *Scheduler) register(name, spec string, job Job) {
	if spec == "" || job == nil {
		return
	}
	if _, err := s.cron.AddJob(spec, job); err != nil {
		slog.Error("Failed to register job", slog.String("job", name), slog.String("schedule", spec), slog.Any("error", err))
		return
	}
	slog.Info("Registered job", slog.String("job", name), slog.String("schedule", spec))
}

func (s *Scheduler) Start() {
	slog.Info("Starting scheduler")
	s.cron.Start()
}

// Stop waits for running jobs to finish or ctx to end, whichever comes first.
func (s *Scheduler) Stop(ctx context.Context) error {
	slog.Info("Stopping scheduler")
	done := s.cron.Stop()
	select {
	case <-done.Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Scheduler) Entries() int {
	return len(s.cron.Entries())
}
