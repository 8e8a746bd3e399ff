package readstore

import (
	"context"

	"rentx-api/internal/infra"
	"rentx-api/internal/infra/db"
	"rentx-api/internal/pkg/pgconv"
	"rentx-api/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

// Window filter uses the same inclusive overlap as the reservation checks.
const listAdminRentalsSQL = `
SELECT r.id, b.email, r.product_id, p.name, s.email, r.price_per_day, r.quantity,
       r.total_days, r.total_amount, r.status, r.start_date, r.end_date, r.created_at
FROM rent_requests r
JOIN products p ON p.id = r.product_id
JOIN users b ON b.id = r.buyer_id
JOIN users s ON s.id = r.seller_id
WHERE ($1::text[] IS NULL OR r.status = ANY($1::text[]))
  AND ($2::date IS NULL OR (r.start_date <= $3::date AND r.end_date >= $2::date))
  AND ($4::uuid IS NULL OR r.seller_id = $4::uuid)
  AND ($5::uuid IS NULL OR r.buyer_id = $5::uuid)
  AND ($6::uuid IS NULL OR r.product_id = $6::uuid)
ORDER BY r.created_at DESC, r.id DESC`

type AdminRentalReadStore struct {
	db db.DBTX
}

func NewAdminRentalReadStore(db db.DBTX) *AdminRentalReadStore {
	return &AdminRentalReadStore{db: db}
}

func (r *AdminRentalReadStore) ListRentals(ctx context.Context, filter queries.AdminRentalFilter) ([]*queries.AdminRentalRow, error) {
	var windowStart, windowEnd pgtype.Date
	if filter.Window != nil {
		windowStart = pgconv.DateToPgtype(filter.Window.Start())
		windowEnd = pgconv.DateToPgtype(filter.Window.End())
	}

	rows, err := r.db.Query(ctx, listAdminRentalsSQL,
		statusArgs(filter.Statuses), windowStart, windowEnd,
		pgconv.UUIDPtrToPgtype(filter.SellerID),
		pgconv.UUIDPtrToPgtype(filter.BuyerID),
		pgconv.UUIDPtrToPgtype(filter.ProductID),
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list admin rentals", err)
	}

	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*queries.AdminRentalRow, error) {
		var (
			a          queries.AdminRentalRow
			start, end pgtype.Date
		)
		if err := row.Scan(&a.ID, &a.CustomerEmail, &a.ProductID, &a.ProductName, &a.SellerEmail,
			&a.PricePerDay, &a.Quantity, &a.TotalDays, &a.TotalPrice, &a.Status,
			&start, &end, &a.RequestedAt); err != nil {
			return nil, err
		}
		a.StartDate = pgconv.DateFromPgtype(start)
		a.EndDate = pgconv.DateFromPgtype(end)
		a.RequestedAt = a.RequestedAt.UTC()
		return &a, nil
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan admin rentals", err)
	}
	return out, nil
}
