package response

import (
	"time"

	"rentx-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type AdminRentalResponse struct {
	ID            uuid.UUID `json:"id"`
	CustomerEmail string    `json:"customerEmail"`
	ProductID     uuid.UUID `json:"productId"`
	ProductName   string    `json:"productName"`
	SellerEmail   string    `json:"sellerEmail"`
	PricePerDay   int64     `json:"pricePerDay"`
	Quantity      int       `json:"quantity"`
	TotalDays     int       `json:"totalDays"`
	TotalPrice    int64     `json:"totalPrice"`
	Status        string    `json:"status"`
	StartDate     string    `json:"startDate"`
	EndDate       string    `json:"endDate"`
	RequestedAt   time.Time `json:"requestedAt"`
}

type AdminRentalSummaryResponse struct {
	TotalRentals   int   `json:"totalRentals"`
	OngoingCount   int   `json:"ongoingCount"`
	CompletedCount int   `json:"completedCount"`
	TotalRevenue   int64 `json:"totalRevenue"`
}

type AdminRentalsResponse struct {
	Rentals []*AdminRentalResponse     `json:"rentals"`
	Summary AdminRentalSummaryResponse `json:"summary"`
}

func FromAdminRentals(r *queries.AdminRentals) (*AdminRentalsResponse, error) {
	res := &AdminRentalsResponse{Rentals: make([]*AdminRentalResponse, 0, len(r.Rentals))}
	if err := copier.CopyWithOption(&res.Rentals, r.Rentals, dateOptions); err != nil {
		return nil, err
	}
	if res.Rentals == nil {
		res.Rentals = []*AdminRentalResponse{}
	}
	if err := copier.Copy(&res.Summary, &r.Summary); err != nil {
		return nil, err
	}
	return res, nil
}
