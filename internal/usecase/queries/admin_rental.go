package queries

//go:generate mockgen -source=admin_rental.go -destination=../../../tests/mock/queries/admin_rental.go -package=mock_queries

import (
	"context"
	"time"

	"rentx-api/internal/domain/rentrequest"
	"rentx-api/internal/pkg/errs"

	"github.com/google/uuid"
)

// AdminRentalParams is the raw admin listing input. Either both StartDate and
// EndDate are set, or Month and Year together, or neither.
type AdminRentalParams struct {
	StatusGroup string
	Status      string
	StartDate   *time.Time
	EndDate     *time.Time
	Month       *int
	Year        *int
	SellerID    *uuid.UUID
	BuyerID     *uuid.UUID
	ProductID   *uuid.UUID
}

// AdminRentalFilter is the validated form handed to the read store. A nil
// Window lists every date.
type AdminRentalFilter struct {
	Statuses  []rentrequest.Status
	Window    *rentrequest.Window
	SellerID  *uuid.UUID
	BuyerID   *uuid.UUID
	ProductID *uuid.UUID
}

type AdminRentalReadStore interface {
	ListRentals(ctx context.Context, filter AdminRentalFilter) ([]*AdminRentalRow, error)
}

type AdminRentalQueries interface {
	ListRentals(ctx context.Context, params AdminRentalParams) (*AdminRentals, error)
}

type adminRentalQueriesImpl struct {
	store AdminRentalReadStore
}

func NewAdminRentalQueries(store AdminRentalReadStore) AdminRentalQueries {
	return &adminRentalQueriesImpl{store: store}
}

func (q *adminRentalQueriesImpl) ListRentals(ctx context.Context, params AdminRentalParams) (*AdminRentals, error) {
	filter, err := params.toFilter()
	if err != nil {
		return nil, err
	}

	rows, err := q.store.ListRentals(ctx, filter)
	if err != nil {
		return nil, errs.Internal(err)
	}
	if rows == nil {
		rows = []*AdminRentalRow{}
	}
	return &AdminRentals{Rentals: rows, Summary: Summarize(rows)}, nil
}

// Summarize counts rows by status group; revenue only includes COMPLETED rows.
func Summarize(rows []*AdminRentalRow) AdminRentalSummary {
	s := AdminRentalSummary{TotalRentals: len(rows)}
	for _, r := range rows {
		status := rentrequest.Status(r.Status)
		switch {
		case status.IsActive():
			s.OngoingCount++
		case status == rentrequest.StatusCompleted:
			s.CompletedCount++
			s.TotalRevenue += r.TotalPrice
		}
	}
	return s
}

func (p AdminRentalParams) toFilter() (AdminRentalFilter, error) {
	f := AdminRentalFilter{SellerID: p.SellerID, BuyerID: p.BuyerID, ProductID: p.ProductID}

	switch {
	case p.StatusGroup != "":
		g, err := rentrequest.ParseStatusGroup(p.StatusGroup)
		if err != nil {
			return f, err
		}
		f.Statuses = g.Statuses()
	case p.Status != "":
		s, err := rentrequest.ParseStatus(p.Status)
		if err != nil {
			return f, err
		}
		f.Statuses = []rentrequest.Status{s}
	}

	switch {
	case p.StartDate != nil || p.EndDate != nil:
		if p.StartDate == nil || p.EndDate == nil {
			return f, errs.Newf(errs.KindValidation, "Both startDate and endDate are required")
		}
		w, err := rentrequest.NewWindow(*p.StartDate, *p.EndDate)
		if err != nil {
			return f, err
		}
		f.Window = &w
	case p.Month != nil || p.Year != nil:
		if p.Month == nil || p.Year == nil {
			return f, errs.Newf(errs.KindValidation, "Both month and year are required")
		}
		if *p.Month < 1 || *p.Month > 12 {
			return f, errs.Newf(errs.KindValidation, "Month must be between 1 and 12")
		}
		first := time.Date(*p.Year, time.Month(*p.Month), 1, 0, 0, 0, 0, time.UTC)
		w, err := rentrequest.NewWindow(first, first.AddDate(0, 1, -1))
		if err != nil {
			return f, err
		}
		f.Window = &w
	}

	return f, nil
}
