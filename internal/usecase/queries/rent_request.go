package queries

//go:generate mockgen -source=rent_request.go -destination=../../../tests/mock/queries/rent_request.go -package=mock_queries

import (
	"context"

	"rentx-api/internal/domain/rentrequest"
	"rentx-api/internal/infra"
	"rentx-api/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrRentRequestNotFound = errs.Newf(errs.KindNotFound, "Rent request not found")
	ErrRentRequestAccess   = errs.Newf(errs.KindForbidden, "Not authorized")
)

// RentRequestFilter narrows a party's listing. Statuses nil means all.
type RentRequestFilter struct {
	Statuses []rentrequest.Status
	After    *Keyset
	Limit    int32
}

type RentRequestReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*RentRequestView, error)
	ListByBuyer(ctx context.Context, buyerID uuid.UUID, filter RentRequestFilter) ([]*RentRequestView, error)
	ListBySeller(ctx context.Context, sellerID uuid.UUID, filter RentRequestFilter) ([]*RentRequestView, error)
}

type RentRequestQueries interface {
	// GetByID is visible to the buyer and the seller of the request only.
	GetByID(ctx context.Context, id, userID uuid.UUID) (*RentRequestView, error)
	ListByBuyer(ctx context.Context, buyerID uuid.UUID, group rentrequest.StatusGroup, cursor *Cursor, limit int) ([]*RentRequestView, *Cursor, error)
	ListBySeller(ctx context.Context, sellerID uuid.UUID, group rentrequest.StatusGroup, cursor *Cursor, limit int) ([]*RentRequestView, *Cursor, error)
}

type rentRequestQueriesImpl struct {
	store RentRequestReadStore
}

func NewRentRequestQueries(store RentRequestReadStore) RentRequestQueries {
	return &rentRequestQueriesImpl{store: store}
}

func (q *rentRequestQueriesImpl) GetByID(ctx context.Context, id, userID uuid.UUID) (*RentRequestView, error) {
	rv, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRentRequestNotFound
		}
		return nil, errs.Internal(err)
	}
	if rv.BuyerID != userID && rv.SellerID != userID {
		return nil, ErrRentRequestAccess
	}
	return rv, nil
}

func (q *rentRequestQueriesImpl) ListByBuyer(ctx context.Context, buyerID uuid.UUID, group rentrequest.StatusGroup, cursor *Cursor, limit int) ([]*RentRequestView, *Cursor, error) {
	return q.list(ctx, buyerID, group, cursor, limit, q.store.ListByBuyer)
}

func (q *rentRequestQueriesImpl) ListBySeller(ctx context.Context, sellerID uuid.UUID, group rentrequest.StatusGroup, cursor *Cursor, limit int) ([]*RentRequestView, *Cursor, error) {
	return q.list(ctx, sellerID, group, cursor, limit, q.store.ListBySeller)
}

type partyLister func(ctx context.Context, partyID uuid.UUID, filter RentRequestFilter) ([]*RentRequestView, error)

func (q *rentRequestQueriesImpl) list(ctx context.Context, partyID uuid.UUID, group rentrequest.StatusGroup, cursor *Cursor, limit int, find partyLister) ([]*RentRequestView, *Cursor, error) {
	after, err := decodeKeyset(cursor)
	if err != nil {
		return nil, nil, err
	}
	limit = ValidateLimit(limit)

	rows, err := find(ctx, partyID, RentRequestFilter{
		Statuses: group.Statuses(),
		After:    after,
		Limit:    int32(limit + 1),
	})
	if err != nil {
		return nil, nil, errs.Internal(err)
	}

	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
		rows = rows[:limit]
	}
	return rows, next, nil
}
