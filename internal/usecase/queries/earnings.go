package queries

//go:generate mockgen -source=earnings.go -destination=../../../tests/mock/queries/earnings.go -package=mock_queries

import (
	"context"
	"log/slog"
	"time"

	"rentx-api/internal/pkg/clock"
	"rentx-api/internal/pkg/errs"

	"github.com/google/uuid"
)

const periodLayout = "2006-01"

// EarningsPeriod bounds the current UTC month and year.
type EarningsPeriod struct {
	MonthStart time.Time
	YearStart  time.Time
}

func NewEarningsPeriod(now time.Time) EarningsPeriod {
	now = now.UTC()
	return EarningsPeriod{
		MonthStart: time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC),
		YearStart:  time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, time.UTC),
	}
}

// Key identifies the period in cache keys, e.g. "2030-03".
func (p EarningsPeriod) Key() string {
	return p.MonthStart.Format(periodLayout)
}

type EarningsReadStore interface {
	SellerEarnings(ctx context.Context, sellerID uuid.UUID, period EarningsPeriod) (*SellerEarnings, error)
}

// EarningsCache misses are reported as (nil, nil).
type EarningsCache interface {
	Get(ctx context.Context, sellerID uuid.UUID, period string) (*SellerEarnings, error)
	Set(ctx context.Context, e *SellerEarnings) error
}

type EarningsQueries interface {
	GetSellerEarnings(ctx context.Context, sellerID uuid.UUID) (*SellerEarnings, error)
}

type earningsQueriesImpl struct {
	store EarningsReadStore
	cache EarningsCache
	clock clock.Clock
}

func NewEarningsQueries(store EarningsReadStore, cache EarningsCache, clk clock.Clock) EarningsQueries {
	return &earningsQueriesImpl{store: store, cache: cache, clock: clk}
}

// GetSellerEarnings serves from cache when possible. Cache errors degrade to a
// direct read.
func (q *earningsQueriesImpl) GetSellerEarnings(ctx context.Context, sellerID uuid.UUID) (*SellerEarnings, error) {
	period := NewEarningsPeriod(q.clock.Now())

	cached, err := q.cache.Get(ctx, sellerID, period.Key())
	if err != nil {
		slog.Warn("earnings cache read failed",
			slog.String("seller_id", sellerID.String()),
			slog.Any("error", err))
	}
	if cached != nil {
		return cached, nil
	}

	e, err := q.store.SellerEarnings(ctx, sellerID, period)
	if err != nil {
		return nil, errs.Internal(err)
	}
	e.SellerID = sellerID
	e.Period = period.Key()

	if err := q.cache.Set(ctx, e); err != nil {
		slog.Warn("earnings cache write failed",
			slog.String("seller_id", sellerID.String()),
			slog.Any("error", err))
	}
	return e, nil
}
