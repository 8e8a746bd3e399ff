package components

import (
	"context"
	"time"

	"rentx-api/internal/infra/cache"
	"rentx-api/internal/infra/db"
	"rentx-api/internal/infra/notifier"
	"rentx-api/internal/infra/readstore"
	"rentx-api/internal/infra/repository"
	"rentx-api/internal/infra/uow"
	"rentx-api/internal/pkg/clock"
	"rentx-api/internal/pkg/config"
	"rentx-api/internal/usecase/jobs"
	"rentx-api/internal/usecase/queries"
	"rentx-api/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
	cacheModule,
)

var baseOption = fx.Provide(
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// RentRequest
		fx.Annotate(
			readstore.NewRentRequestReadStore,
			fx.As(new(queries.RentRequestReadStore)),
		),
		// Earnings
		fx.Annotate(
			readstore.NewEarningsReadStore,
			fx.As(new(queries.EarningsReadStore)),
		),
		// AdminRental
		fx.Annotate(
			readstore.NewAdminRentalReadStore,
			fx.As(new(queries.AdminRentalReadStore)),
		),
		// User
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(shared.IdentityAccessor)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		// UnitOfWork
		uow.NewPostgresUoW,
		// Outbox claims run outside the request transaction.
		fx.Annotate(
			repository.NewOutboxRepository,
			fx.As(new(jobs.OutboxStore)),
		),
		fx.Annotate(
			repository.NewProductRepository,
			fx.As(new(jobs.StockStore)),
		),
		fx.Annotate(
			NewOutboxSink,
			fx.As(new(shared.NotificationSink)),
		),
	),
)

var cacheModule = fx.Module("persistence/cache",
	fx.Provide(
		NewEarningsCache,
		func(c EarningsCache) queries.EarningsCache { return c },
		func(c EarningsCache) shared.EarningsInvalidator { return c },
	),
)

// EarningsCache serves reads and is invalidated by completions.
type EarningsCache interface {
	Get(ctx context.Context, sellerID uuid.UUID, period string) (*queries.SellerEarnings, error)
	Set(ctx context.Context, e *queries.SellerEarnings) error
	InvalidateSeller(ctx context.Context, sellerID uuid.UUID, at time.Time)
}

func NewEarningsCache(client *redis.Client, cfg config.Config) EarningsCache {
	if client == nil {
		return cache.NopEarningsCache{}
	}
	return cache.NewRedisEarningsCache(client, cfg.Redis.EarningsTTL)
}

func NewOutboxSink(conn db.DBTX, clk clock.Clock, cfg config.Config) *notifier.OutboxSink {
	return notifier.NewOutboxSink(conn, clk, cfg.Notification.EnqueueTimeout)
}

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
