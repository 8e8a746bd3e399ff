package shared

import (
	"context"
	"time"

	"rentx-api/internal/domain/product"
	"rentx-api/internal/domain/rentrequest"
	"rentx-api/internal/domain/user"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic.
	// fn may run more than once and must not have side effects outside tx.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

// Repositories handed out by Tx are bound to the transaction.
type Tx interface {
	Products() CatalogAccessor
	RentRequests() RentRequestRepository
	Outbox() OutboxRepository
}

// CatalogAccessor is the product-catalog collaborator.
type CatalogAccessor interface {
	Get(ctx context.Context, id uuid.UUID) (*product.Product, error)
	// GetForUpdate locks the product row until the transaction ends.
	GetForUpdate(ctx context.Context, id uuid.UUID) (*product.Product, error)
	// AdjustRemaining adds delta to the remaining counter and returns the new
	// value. A result below zero is rejected; releases are capped at quantity.
	AdjustRemaining(ctx context.Context, id uuid.UUID, delta int) (int, error)
	UpdateStock(ctx context.Context, p *product.Product) error
	// RecountRemaining rewrites the counter from the active rent requests.
	// The caller must already hold the row lock from GetForUpdate.
	RecountRemaining(ctx context.Context, id uuid.UUID) (int, error)
}

type RentRequestRepository interface {
	Create(ctx context.Context, r *rentrequest.RentRequest) error
	GetForUpdate(ctx context.Context, id uuid.UUID) (*rentrequest.RentRequest, error)
	UpdateStatus(ctx context.Context, r *rentrequest.RentRequest) error
	// ActiveOverlapping lists active requests on productID whose window
	// overlaps w with inclusive bounds.
	ActiveOverlapping(ctx context.Context, productID uuid.UUID, w rentrequest.Window) ([]rentrequest.Reservation, error)
}

type OutboxRepository interface {
	Enqueue(ctx context.Context, msg OutboxMessage) error
}

// IdentityAccessor is the user-identity collaborator.
type IdentityAccessor interface {
	GetUser(ctx context.Context, id uuid.UUID) (*user.User, error)
}

// NotificationSink queues a templated email. It never reports failure to the
// caller; implementations log and drop.
type NotificationSink interface {
	Notify(ctx context.Context, recipientEmail string, kind TemplateKind, payload map[string]any)
}

type EarningsInvalidator interface {
	InvalidateSeller(ctx context.Context, sellerID uuid.UUID, at time.Time)
}
