package components

import (
	"context"
	"io"
	"log/slog"

	"rentx-api/internal/infra/eventbus"
	"rentx-api/internal/infra/notifier"
	"rentx-api/internal/infra/scheduler"
	"rentx-api/internal/pkg/clock"
	"rentx-api/internal/pkg/config"
	"rentx-api/internal/usecase/jobs"
	"rentx-api/internal/usecase/shared"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(
		fx.Annotate(
			notifier.NewRenderer,
			fx.As(new(jobs.TemplateRenderer)),
		),
		NewMailer,
		NewEventPublisher,
		NewOutboxDispatcher,
		NewStockReconciler,
		NewScheduler,
	),
	fx.Invoke(startScheduler),
)

func NewMailer(cfg config.Config) (jobs.Mailer, error) {
	return notifier.NewMailer(cfg.Mail, cfg.Breaker)
}

func NewEventPublisher(lc fx.Lifecycle, cfg config.Config) jobs.EventPublisher {
	pub := eventbus.NewPublisher(cfg.Kafka, cfg.Breaker)
	if c, ok := pub.(io.Closer); ok {
		lc.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				return c.Close()
			},
		})
	}
	return pub
}

func NewOutboxDispatcher(
	store jobs.OutboxStore,
	mailer jobs.Mailer,
	renderer jobs.TemplateRenderer,
	publisher jobs.EventPublisher,
	clk clock.Clock,
	cfg config.Config,
) *jobs.OutboxDispatcher {
	return jobs.NewOutboxDispatcher(store, mailer, renderer, publisher, clk, jobs.DispatcherConfig{
		BatchSize:   cfg.Notification.BatchSize,
		MaxAttempts: cfg.Notification.MaxAttempts,
		SendTimeout: cfg.Notification.SendTimeout,
		RetryBase:   cfg.Notification.RetryBase,
	})
}

func NewStockReconciler(store jobs.StockStore, uow shared.UnitOfWork, cfg config.Config) *jobs.StockReconciler {
	return jobs.NewStockReconciler(store, uow, cfg.Scheduler.ReconcileRepair)
}

func NewScheduler(cfg config.Config, dispatcher *jobs.OutboxDispatcher, reconciler *jobs.StockReconciler) *scheduler.Scheduler {
	return scheduler.NewScheduler(cfg.Notification, cfg.Scheduler, dispatcher, reconciler)
}

func startScheduler(lc fx.Lifecycle, cfg config.Config, s *scheduler.Scheduler, logger *slog.Logger) {
	if !cfg.Scheduler.Enabled {
		logger.Info("Scheduler disabled, outbox is not dispatched by this instance")
		return
	}
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			s.Start()
			return nil
		},
		OnStop: s.Stop,
	})
}
