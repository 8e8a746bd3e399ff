package request

import (
	"strings"
	"time"

	"rentx-api/internal/pkg/errs"
	"rentx-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type AdminRentalsQuery struct {
	StatusGroup string `form:"statusGroup"`
	Status      string `form:"status"`
	StartDate   string `form:"startDate"`
	EndDate     string `form:"endDate"`
	Month       *int   `form:"month"`
	Year        *int   `form:"year"`
	SellerID    string `form:"sellerId"`
	BuyerID     string `form:"buyerId"`
	ProductID   string `form:"productId"`
}

func (q AdminRentalsQuery) ToParams() (queries.AdminRentalParams, error) {
	params := queries.AdminRentalParams{
		StatusGroup: strings.TrimSpace(q.StatusGroup),
		Status:      strings.ToUpper(strings.TrimSpace(q.Status)),
		Month:       q.Month,
		Year:        q.Year,
	}

	var err error
	if params.StartDate, err = optionalDate(q.StartDate); err != nil {
		return params, err
	}
	if params.EndDate, err = optionalDate(q.EndDate); err != nil {
		return params, err
	}
	if params.SellerID, err = optionalUUID("sellerId", q.SellerID); err != nil {
		return params, err
	}
	if params.BuyerID, err = optionalUUID("buyerId", q.BuyerID); err != nil {
		return params, err
	}
	if params.ProductID, err = optionalUUID("productId", q.ProductID); err != nil {
		return params, err
	}
	return params, nil
}

func optionalDate(s string) (*time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	t, err := ParseDate(s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func optionalUUID(name, s string) (*uuid.UUID, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	id, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil {
		return nil, errs.Newf(errs.KindValidation, "Invalid %s", name)
	}
	return &id, nil
}
