package notifier

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"rentx-api/internal/infra/db"
	"rentx-api/internal/infra/repository"
	"rentx-api/internal/pkg/clock"
	"rentx-api/internal/usecase/shared"

	"github.com/google/uuid"
)

// OutboxSink queues emails as outbox rows outside any business transaction.
// Enqueue failures are logged and dropped.
type OutboxSink struct {
	outbox  *repository.OutboxRepository
	clock   clock.Clock
	timeout time.Duration
	logger  *slog.Logger
}

func NewOutboxSink(conn db.DBTX, clk clock.Clock, timeout time.Duration) *OutboxSink {
	if timeout <= 0 {
		timeout = 2 * time.Second
	}
	return &OutboxSink{
		outbox:  repository.NewOutboxRepository(conn),
		clock:   clk,
		timeout: timeout,
		logger:  slog.Default().With(slog.String("component", "notification_sink")),
	}
}

func (s *OutboxSink) Notify(ctx context.Context, recipientEmail string, kind shared.TemplateKind, payload map[string]any) {
	log := s.logger.With(slog.String("template", string(kind)), slog.String("to", recipientEmail))

	body, err := json.Marshal(shared.EmailJob{To: recipientEmail, Template: kind, Data: payload})
	if err != nil {
		log.Error("failed to encode email job", slog.Any("error", err))
		return
	}

	// The caller's request may already be finishing; keep its values but not its deadline.
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.timeout)
	defer cancel()

	err = s.outbox.Enqueue(ctx, shared.OutboxMessage{
		ID:        uuid.New(),
		Topic:     shared.TopicEmail,
		Key:       recipientEmail,
		Payload:   body,
		CreatedAt: s.clock.Now(),
	})
	if err != nil {
		log.Error("failed to queue email notification", slog.Any("error", err))
	}
}
