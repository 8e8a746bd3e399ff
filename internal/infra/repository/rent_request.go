package repository

import (
	"context"

	"rentx-api/internal/domain/rentrequest"
	"rentx-api/internal/infra"
	"rentx-api/internal/infra/db"
	"rentx-api/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const rentRequestColumns = `id, product_id, buyer_id, seller_id, quantity, start_date, end_date,
total_days, price_per_day, total_amount, status, rejection_reason,
accepted_at, collected_at, completed_at, created_at, updated_at`

const createRentRequestSQL = `
INSERT INTO rent_requests (` + rentRequestColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`

const getRentRequestForUpdateSQL = `SELECT ` + rentRequestColumns + ` FROM rent_requests WHERE id = $1 FOR UPDATE`

// The status guard makes a concurrent second transition a no-op.
const updateRentRequestStatusSQL = `
UPDATE rent_requests
SET status = $2, rejection_reason = $3, accepted_at = $4, collected_at = $5, completed_at = $6, updated_at = $7
WHERE id = $1 AND status = $8`

// Inclusive overlap: start_date <= window end AND end_date >= window start.
const activeOverlappingSQL = `
SELECT id, product_id, buyer_id, start_date, end_date, quantity, status
FROM rent_requests
WHERE product_id = $1
  AND status IN ('PENDING', 'ACCEPTED', 'COLLECTED')
  AND start_date <= $3
  AND end_date >= $2
ORDER BY start_date, created_at`

type RentRequestRepository struct {
	db db.DBTX
}

func NewRentRequestRepository(db db.DBTX) *RentRequestRepository {
	return &RentRequestRepository{db: db}
}

func (r *RentRequestRepository) Create(ctx context.Context, rr *rentrequest.RentRequest) error {
	_, err := r.db.Exec(ctx, createRentRequestSQL,
		rr.ID(), rr.ProductID(), rr.BuyerID(), rr.SellerID(), rr.Quantity(),
		pgconv.DateToPgtype(rr.StartDate()), pgconv.DateToPgtype(rr.EndDate()),
		rr.TotalDays(), rr.PricePerDay(), rr.TotalAmount(), rr.Status().String(),
		pgconv.StringPtrToPgtype(rr.RejectionReason()),
		pgconv.TimePtrToPgtype(rr.AcceptedAt()),
		pgconv.TimePtrToPgtype(rr.CollectedAt()),
		pgconv.TimePtrToPgtype(rr.CompletedAt()),
		rr.CreatedAt(), rr.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create rent request", err)
	}
	return nil
}

func (r *RentRequestRepository) GetForUpdate(ctx context.Context, id uuid.UUID) (*rentrequest.RentRequest, error) {
	rr, err := scanRentRequest(r.db.QueryRow(ctx, getRentRequestForUpdateSQL, id))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get rent request", err)
	}
	return rr, nil
}

// UpdateStatus persists a transition from the status the request had when it
// was loaded, i.e. the only source status its transition table allows.
func (r *RentRequestRepository) UpdateStatus(ctx context.Context, rr *rentrequest.RentRequest) error {
	from := previousStatus(rr.Status())
	tag, err := r.db.Exec(ctx, updateRentRequestStatusSQL,
		rr.ID(), rr.Status().String(),
		pgconv.StringPtrToPgtype(rr.RejectionReason()),
		pgconv.TimePtrToPgtype(rr.AcceptedAt()),
		pgconv.TimePtrToPgtype(rr.CollectedAt()),
		pgconv.TimePtrToPgtype(rr.CompletedAt()),
		rr.UpdatedAt(), from.String(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update rent request status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("rent request status changed concurrently", nil, infra.KindConflict)
	}
	return nil
}

func (r *RentRequestRepository) ActiveOverlapping(ctx context.Context, productID uuid.UUID, w rentrequest.Window) ([]rentrequest.Reservation, error) {
	rows, err := r.db.Query(ctx, activeOverlappingSQL,
		productID, pgconv.DateToPgtype(w.Start()), pgconv.DateToPgtype(w.End()))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list overlapping rent requests", err)
	}

	reservations, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (rentrequest.Reservation, error) {
		var (
			res        rentrequest.Reservation
			start, end pgtype.Date
			status     string
		)
		if err := row.Scan(&res.RequestID, &res.ProductID, &res.BuyerID, &start, &end, &res.Quantity, &status); err != nil {
			return res, err
		}
		w, err := rentrequest.NewWindow(pgconv.DateFromPgtype(start), pgconv.DateFromPgtype(end))
		if err != nil {
			return res, err
		}
		res.Window = w
		res.Status = rentrequest.Status(status)
		return res, nil
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan overlapping rent requests", err)
	}
	return reservations, nil
}

func previousStatus(s rentrequest.Status) rentrequest.Status {
	switch s {
	case rentrequest.StatusAccepted, rentrequest.StatusRejected:
		return rentrequest.StatusPending
	case rentrequest.StatusCollected:
		return rentrequest.StatusAccepted
	case rentrequest.StatusCompleted:
		return rentrequest.StatusCollected
	default:
		return s
	}
}

func scanRentRequest(row pgx.Row) (*rentrequest.RentRequest, error) {
	var (
		id, productID, buyerID, sellerID     uuid.UUID
		quantity, totalDays                  int
		start, end                           pgtype.Date
		pricePerDay, totalAmount             int64
		status                               string
		rejectionReason                      pgtype.Text
		acceptedAt, collectedAt, completedAt pgtype.Timestamptz
		createdAt, updatedAt                 pgtype.Timestamptz
	)
	if err := row.Scan(&id, &productID, &buyerID, &sellerID, &quantity, &start, &end,
		&totalDays, &pricePerDay, &totalAmount, &status, &rejectionReason,
		&acceptedAt, &collectedAt, &completedAt, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	w, err := rentrequest.NewWindow(pgconv.DateFromPgtype(start), pgconv.DateFromPgtype(end))
	if err != nil {
		return nil, err
	}

	return rentrequest.Reconstruct(
		id, productID, buyerID, sellerID,
		quantity, w, totalDays, pricePerDay, totalAmount,
		rentrequest.Status(status),
		pgconv.StringPtrFromPgtype(rejectionReason),
		pgconv.TimePtrFromPgtype(acceptedAt),
		pgconv.TimePtrFromPgtype(collectedAt),
		pgconv.TimePtrFromPgtype(completedAt),
		createdAt.Time.UTC(), updatedAt.Time.UTC(),
	), nil
}
