package jobs

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"rentx-api/internal/pkg/clock"
	"rentx-api/internal/pkg/errs"
	"rentx-api/internal/usecase/shared"
)

var errUnknownTopic = errs.New("unknown outbox topic")

type DispatcherConfig struct {
	BatchSize   int
	MaxAttempts int
	SendTimeout time.Duration
	RetryBase   time.Duration
	// Lease should exceed BatchSize*SendTimeout so a slow batch is not reclaimed.
	Lease time.Duration
}

type DispatchStats struct {
	Claimed   int
	Delivered int
	Retried   int
	Failed    int
}

// OutboxDispatcher delivers outbox messages: emails go through the renderer
// and mailer, lifecycle events through the event publisher.
type OutboxDispatcher struct {
	store     OutboxStore
	mailer    Mailer
	renderer  TemplateRenderer
	publisher EventPublisher
	clock     clock.Clock
	cfg       DispatcherConfig
	logger    *slog.Logger
}

func NewOutboxDispatcher(
	store OutboxStore,
	mailer Mailer,
	renderer TemplateRenderer,
	publisher EventPublisher,
	clk clock.Clock,
	cfg DispatcherConfig,
) *OutboxDispatcher {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 50
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 5
	}
	if cfg.SendTimeout <= 0 {
		cfg.SendTimeout = 10 * time.Second
	}
	if cfg.RetryBase <= 0 {
		cfg.RetryBase = 30 * time.Second
	}
	if cfg.Lease <= 0 {
		cfg.Lease = time.Duration(cfg.BatchSize+1) * cfg.SendTimeout
	}
	return &OutboxDispatcher{
		store:     store,
		mailer:    mailer,
		renderer:  renderer,
		publisher: publisher,
		clock:     clk,
		cfg:       cfg,
		logger:    slog.Default().With(slog.String("component", "outbox_dispatcher")),
	}
}

func (d *OutboxDispatcher) RunOnce(ctx context.Context) (DispatchStats, error) {
	var stats DispatchStats

	msgs, err := d.store.ClaimDue(ctx, d.clock.Now(), d.cfg.BatchSize, d.cfg.Lease)
	if err != nil {
		return stats, errs.Wrap(err, "claim outbox messages")
	}
	stats.Claimed = len(msgs)

	for _, msg := range msgs {
		if ctx.Err() != nil {
			return stats, ctx.Err()
		}
		sendErr := d.deliver(ctx, msg)
		if sendErr == nil {
			if err := d.store.MarkDelivered(ctx, msg.ID, d.clock.Now()); err != nil {
				return stats, errs.Wrap(err, "mark outbox message delivered")
			}
			stats.Delivered++
			continue
		}

		log := d.logger.With(
			slog.String("message_id", msg.ID.String()),
			slog.String("topic", msg.Topic),
			slog.Int("attempts", msg.Attempts),
			slog.Any("error", sendErr))

		if msg.Attempts >= d.cfg.MaxAttempts || errs.Is(sendErr, errUnknownTopic) {
			log.Error("outbox message failed permanently")
			if err := d.store.MarkFailed(ctx, msg.ID, sendErr.Error()); err != nil {
				return stats, errs.Wrap(err, "mark outbox message failed")
			}
			stats.Failed++
			continue
		}

		log.Warn("outbox delivery failed, will retry")
		next := d.clock.Now().Add(d.backoff(msg.Attempts))
		if err := d.store.MarkRetry(ctx, msg.ID, next, sendErr.Error()); err != nil {
			return stats, errs.Wrap(err, "reschedule outbox message")
		}
		stats.Retried++
	}

	if stats.Claimed > 0 {
		d.logger.Info("outbox batch dispatched",
			slog.Int("claimed", stats.Claimed),
			slog.Int("delivered", stats.Delivered),
			slog.Int("retried", stats.Retried),
			slog.Int("failed", stats.Failed))
	}
	return stats, nil
}

// Run is the cron entry point.
func (d *OutboxDispatcher) Run() {
	if _, err := d.RunOnce(context.Background()); err != nil {
		d.logger.Error("outbox dispatch failed", slog.Any("error", err))
	}
}

func (d *OutboxDispatcher) deliver(ctx context.Context, msg shared.OutboxMessage) error {
	ctx, cancel := context.WithTimeout(ctx, d.cfg.SendTimeout)
	defer cancel()

	switch msg.Topic {
	case shared.TopicEmail:
		var job shared.EmailJob
		if err := json.Unmarshal(msg.Payload, &job); err != nil {
			return errs.Mark(errs.Wrap(err, "decode email job"), errUnknownTopic)
		}
		email, err := d.renderer.Render(job.Template, job.Data)
		if err != nil {
			return errs.Mark(err, errUnknownTopic)
		}
		email.To = job.To
		return d.mailer.Send(ctx, email)
	case shared.TopicRentRequestEvents:
		return d.publisher.Publish(ctx, msg.Key, msg.Payload)
	default:
		return errUnknownTopic
	}
}

// backoff doubles RetryBase per attempt, capped at one hour.
func (d *OutboxDispatcher) backoff(attempts int) time.Duration {
	delay := d.cfg.RetryBase
	for i := 1; i < attempts && delay < time.Hour; i++ {
		delay *= 2
	}
	return min(delay, time.Hour)
}
