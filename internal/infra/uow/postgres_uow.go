package uow

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"rentx-api/internal/infra/repository"
	"rentx-api/internal/pkg/errs"
	"rentx-api/internal/usecase/shared"

	"github.com/cenkalti/backoff/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"

	maxAttempts = 4
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool    *pgxpool.Pool
	tracer  trace.Tracer
	backoff func() backoff.BackOff
}

func NewPostgresUoW(pool *pgxpool.Pool) shared.UnitOfWork {
	return &PostgresUoW{
		pool:    pool,
		tracer:  otel.Tracer("rentx-api/infra/uow"),
		backoff: newBackOff,
	}
}

func newBackOff() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 100 * time.Millisecond
	b.RandomizationFactor = 0.2
	b.MaxInterval = time.Second
	return b
}

// Within runs fn in a READ COMMITTED transaction; the product row lock taken
// by GetForUpdate serialises reservations per product. Serialization failures
// and deadlocks are retried with a fresh transaction.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) (err error) {
	ctx, span := u.tracer.Start(ctx, "uow.Within")
	attempts := 0
	defer func() {
		span.SetAttributes(attribute.Int("db.tx.attempts", attempts))
		if err != nil {
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	_, err = backoff.Retry(ctx, func() (struct{}, error) {
		attempts++
		err := u.runOnce(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
		if err != nil && !isRetryableError(err) {
			return struct{}{}, backoff.Permanent(err)
		}
		return struct{}{}, err
	},
		backoff.WithBackOff(u.backoff()),
		backoff.WithMaxTries(maxAttempts),
		backoff.WithNotify(func(err error, wait time.Duration) {
			slog.Warn("retrying transaction due to retryable error",
				"attempt", attempts,
				"wait_ms", wait.Milliseconds(),
				"error", err.Error())
		}),
	)

	if err != nil && isRetryableError(err) {
		slog.Error("transaction failed after max retries", "attempts", attempts, "error", err.Error())
		return errs.Mark(err, errMaxRetriesExceeded)
	}
	return err
}

// runOnce owns one transaction so its rollback is not deferred across retries.
func (u *PostgresUoW) runOnce(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, options)
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}

	err = fn(ctx, &pgTx{dbtx: pgxTx})
	if err == nil {
		if err = pgxTx.Commit(ctx); err == nil {
			return nil
		}
		err = errs.Mark(err, errTransactionCommit)
	}

	if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
		slog.Warn("rollback failed", "error", rollbackErr.Error())
	}
	return err
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

// pgTx hands out repositories bound to one transaction, created on first use.
type pgTx struct {
	dbtx pgx.Tx

	productRepo     *repository.ProductRepository
	rentRequestRepo *repository.RentRequestRepository
	outboxRepo      *repository.OutboxRepository
}

func (t *pgTx) Products() shared.CatalogAccessor {
	if t.productRepo == nil {
		t.productRepo = repository.NewProductRepository(t.dbtx)
	}
	return t.productRepo
}

func (t *pgTx) RentRequests() shared.RentRequestRepository {
	if t.rentRequestRepo == nil {
		t.rentRequestRepo = repository.NewRentRequestRepository(t.dbtx)
	}
	return t.rentRequestRepo
}

func (t *pgTx) Outbox() shared.OutboxRepository {
	if t.outboxRepo == nil {
		t.outboxRepo = repository.NewOutboxRepository(t.dbtx)
	}
	return t.outboxRepo
}
