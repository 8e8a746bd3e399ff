package readstore

import (
	"context"

	"rentx-api/internal/infra"
	"rentx-api/internal/infra/db"
	"rentx-api/internal/usecase/queries"

	"github.com/google/uuid"
)

const sellerEarningsSQL = `
SELECT COALESCE(SUM(total_amount), 0)::bigint,
       COALESCE(SUM(total_amount) FILTER (WHERE completed_at >= $2), 0)::bigint,
       COALESCE(SUM(total_amount) FILTER (WHERE completed_at >= $3), 0)::bigint,
       COUNT(*)::int
FROM rent_requests
WHERE seller_id = $1 AND status = 'COMPLETED'`

type EarningsReadStore struct {
	db db.DBTX
}

func NewEarningsReadStore(db db.DBTX) *EarningsReadStore {
	return &EarningsReadStore{db: db}
}

func (r *EarningsReadStore) SellerEarnings(ctx context.Context, sellerID uuid.UUID, period queries.EarningsPeriod) (*queries.SellerEarnings, error) {
	var e queries.SellerEarnings
	err := r.db.QueryRow(ctx, sellerEarningsSQL, sellerID, period.MonthStart, period.YearStart).
		Scan(&e.TotalIncome, &e.MonthlyIncome, &e.YearlyIncome, &e.TotalRentals)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to aggregate seller earnings", err)
	}
	return &e, nil
}
