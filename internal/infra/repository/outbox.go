package repository

import (
	"context"
	"time"

	"rentx-api/internal/infra"
	"rentx-api/internal/infra/db"
	"rentx-api/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const enqueueOutboxSQL = `
INSERT INTO outbox_messages (id, topic, message_key, payload, status, next_attempt_at, created_at)
VALUES ($1, $2, $3, $4, 'pending', $5, $5)`

// Claiming pushes next_attempt_at forward by the lease so a crashed worker's
// rows become claimable again once the lease runs out.
const claimOutboxSQL = `
UPDATE outbox_messages o
SET status = 'processing', attempts = o.attempts + 1, next_attempt_at = $2
WHERE o.id IN (
    SELECT id FROM outbox_messages
    WHERE status IN ('pending', 'processing') AND next_attempt_at <= $1
    ORDER BY next_attempt_at, created_at
    LIMIT $3
    FOR UPDATE SKIP LOCKED
)
RETURNING o.id, o.topic, o.message_key, o.payload, o.attempts, o.created_at`

const markOutboxDeliveredSQL = `
UPDATE outbox_messages SET status = 'delivered', delivered_at = $2, last_error = NULL WHERE id = $1`

const markOutboxRetrySQL = `
UPDATE outbox_messages SET status = 'pending', next_attempt_at = $2, last_error = $3 WHERE id = $1`

const markOutboxFailedSQL = `
UPDATE outbox_messages SET status = 'failed', last_error = $2 WHERE id = $1`

type OutboxRepository struct {
	db db.DBTX
}

func NewOutboxRepository(db db.DBTX) *OutboxRepository {
	return &OutboxRepository{db: db}
}

func (r *OutboxRepository) Enqueue(ctx context.Context, msg shared.OutboxMessage) error {
	if msg.ID == uuid.Nil {
		msg.ID = uuid.New()
	}
	createdAt := msg.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	_, err := r.db.Exec(ctx, enqueueOutboxSQL, msg.ID, msg.Topic, msg.Key, []byte(msg.Payload), createdAt)
	if err != nil {
		return infra.WrapRepoErr("failed to enqueue outbox message", err)
	}
	return nil
}

func (r *OutboxRepository) ClaimDue(ctx context.Context, now time.Time, limit int, lease time.Duration) ([]shared.OutboxMessage, error) {
	rows, err := r.db.Query(ctx, claimOutboxSQL, now, now.Add(lease), limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to claim outbox messages", err)
	}

	msgs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (shared.OutboxMessage, error) {
		var (
			m       shared.OutboxMessage
			payload []byte
		)
		err := row.Scan(&m.ID, &m.Topic, &m.Key, &payload, &m.Attempts, &m.CreatedAt)
		m.Payload = payload
		return m, err
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan outbox messages", err)
	}
	return msgs, nil
}

func (r *OutboxRepository) MarkDelivered(ctx context.Context, id uuid.UUID, at time.Time) error {
	if _, err := r.db.Exec(ctx, markOutboxDeliveredSQL, id, at); err != nil {
		return infra.WrapRepoErr("failed to mark outbox message delivered", err)
	}
	return nil
}

func (r *OutboxRepository) MarkRetry(ctx context.Context, id uuid.UUID, nextAttemptAt time.Time, lastErr string) error {
	if _, err := r.db.Exec(ctx, markOutboxRetrySQL, id, nextAttemptAt, lastErr); err != nil {
		return infra.WrapRepoErr("failed to reschedule outbox message", err)
	}
	return nil
}

func (r *OutboxRepository) MarkFailed(ctx context.Context, id uuid.UUID, lastErr string) error {
	if _, err := r.db.Exec(ctx, markOutboxFailedSQL, id, lastErr); err != nil {
		return infra.WrapRepoErr("failed to mark outbox message failed", err)
	}
	return nil
}
