package jobs

import (
	"context"
	"time"

	"rentx-api/internal/usecase/shared"

	"github.com/google/uuid"
)

// Email is a rendered message ready for a Mailer.
type Email struct {
	To       string
	Subject  string
	HTMLBody string
	TextBody string
}

type Mailer interface {
	Send(ctx context.Context, email Email) error
}

type TemplateRenderer interface {
	Render(kind shared.TemplateKind, data map[string]any) (Email, error)
}

type EventPublisher interface {
	Publish(ctx context.Context, key string, payload []byte) error
}

type OutboxStore interface {
	// ClaimDue hands out at most limit due messages and hides them from other
	// claimers for lease.
	ClaimDue(ctx context.Context, now time.Time, limit int, lease time.Duration) ([]shared.OutboxMessage, error)
	MarkDelivered(ctx context.Context, id uuid.UUID, at time.Time) error
	MarkRetry(ctx context.Context, id uuid.UUID, nextAttemptAt time.Time, lastErr string) error
	MarkFailed(ctx context.Context, id uuid.UUID, lastErr string) error
}

// StockDrift is a product whose remaining counter disagrees with its active
// rent requests.
type StockDrift struct {
	ProductID         uuid.UUID
	Quantity          int
	RemainingQuantity int
	ExpectedRemaining int
}

type StockStore interface {
	ListStockDrift(ctx context.Context) ([]StockDrift, error)
}
