package response

import (
	"rentx-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type EarningsResponse struct {
	SellerID      uuid.UUID `json:"sellerId"`
	TotalIncome   int64     `json:"totalIncome"`
	MonthlyIncome int64     `json:"monthlyIncome"`
	YearlyIncome  int64     `json:"yearlyIncome"`
	TotalRentals  int       `json:"totalRentals"`
	Period        string    `json:"period"`
}

func FromSellerEarnings(e *queries.SellerEarnings) (*EarningsResponse, error) {
	var res EarningsResponse
	if err := copier.Copy(&res, e); err != nil {
		return nil, err
	}
	return &res, nil
}
