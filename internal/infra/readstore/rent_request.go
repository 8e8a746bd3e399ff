package readstore

import (
	"context"

	"rentx-api/internal/domain/rentrequest"
	"rentx-api/internal/infra"
	"rentx-api/internal/infra/db"
	"rentx-api/internal/pkg/pgconv"
	"rentx-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const rentRequestViewSelect = `
SELECT r.id, r.product_id, p.name, r.buyer_id, b.email, r.seller_id, s.email,
       r.quantity, r.start_date, r.end_date, r.total_days, r.price_per_day, r.total_amount,
       r.status, r.rejection_reason, r.accepted_at, r.collected_at, r.completed_at,
       r.created_at, r.updated_at
FROM rent_requests r
JOIN products p ON p.id = r.product_id
JOIN users b ON b.id = r.buyer_id
JOIN users s ON s.id = r.seller_id`

const findRentRequestViewSQL = rentRequestViewSelect + `
WHERE r.id = $1`

// $2 NULL lists every status; $3 NULL is the first page.
const listPartyFilter = `
  AND ($2::text[] IS NULL OR r.status = ANY($2::text[]))
  AND ($3::timestamptz IS NULL OR (r.created_at, r.id) < ($3::timestamptz, $4::uuid))
ORDER BY r.created_at DESC, r.id DESC
LIMIT $5`

const listByBuyerSQL = rentRequestViewSelect + `
WHERE r.buyer_id = $1` + listPartyFilter

const listBySellerSQL = rentRequestViewSelect + `
WHERE r.seller_id = $1` + listPartyFilter

type RentRequestReadStore struct {
	db db.DBTX
}

func NewRentRequestReadStore(db db.DBTX) *RentRequestReadStore {
	return &RentRequestReadStore{db: db}
}

func (r *RentRequestReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.RentRequestView, error) {
	v, err := scanRentRequestView(r.db.QueryRow(ctx, findRentRequestViewSQL, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("rent request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get rent request view by id", err)
	}
	return v, nil
}

func (r *RentRequestReadStore) ListByBuyer(ctx context.Context, buyerID uuid.UUID, filter queries.RentRequestFilter) ([]*queries.RentRequestView, error) {
	return r.list(ctx, listByBuyerSQL, buyerID, filter)
}

func (r *RentRequestReadStore) ListBySeller(ctx context.Context, sellerID uuid.UUID, filter queries.RentRequestFilter) ([]*queries.RentRequestView, error) {
	return r.list(ctx, listBySellerSQL, sellerID, filter)
}

func (r *RentRequestReadStore) list(ctx context.Context, query string, partyID uuid.UUID, filter queries.RentRequestFilter) ([]*queries.RentRequestView, error) {
	var (
		afterAt pgtype.Timestamptz
		afterID pgtype.UUID
	)
	if filter.After != nil {
		afterAt = pgtype.Timestamptz{Time: filter.After.CreatedAt, Valid: true}
		afterID = pgtype.UUID{Bytes: filter.After.ID, Valid: true}
	}

	rows, err := r.db.Query(ctx, query, partyID, statusArgs(filter.Statuses), afterAt, afterID, filter.Limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rent requests", err)
	}
	views, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*queries.RentRequestView, error) {
		return scanRentRequestView(row)
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan rent requests", err)
	}
	return views, nil
}

// statusArgs returns nil for an empty filter so the query sees NULL.
func statusArgs(statuses []rentrequest.Status) []string {
	if len(statuses) == 0 {
		return nil
	}
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = s.String()
	}
	return out
}

func scanRentRequestView(row pgx.Row) (*queries.RentRequestView, error) {
	var (
		v                                    queries.RentRequestView
		start, end                           pgtype.Date
		rejectionReason                      pgtype.Text
		acceptedAt, collectedAt, completedAt pgtype.Timestamptz
	)
	if err := row.Scan(&v.ID, &v.ProductID, &v.ProductName, &v.BuyerID, &v.BuyerEmail, &v.SellerID, &v.SellerEmail,
		&v.Quantity, &start, &end, &v.TotalDays, &v.PricePerDay, &v.TotalAmount,
		&v.Status, &rejectionReason, &acceptedAt, &collectedAt, &completedAt,
		&v.CreatedAt, &v.UpdatedAt); err != nil {
		return nil, err
	}
	v.StartDate = pgconv.DateFromPgtype(start)
	v.EndDate = pgconv.DateFromPgtype(end)
	v.RejectionReason = pgconv.StringPtrFromPgtype(rejectionReason)
	v.AcceptedAt = pgconv.TimePtrFromPgtype(acceptedAt)
	v.CollectedAt = pgconv.TimePtrFromPgtype(collectedAt)
	v.CompletedAt = pgconv.TimePtrFromPgtype(completedAt)
	v.CreatedAt = v.CreatedAt.UTC()
	v.UpdatedAt = v.UpdatedAt.UTC()
	return &v, nil
}
