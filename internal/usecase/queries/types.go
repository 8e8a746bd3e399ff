package queries

import (
	"time"

	"github.com/google/uuid"
)

// RentRequestView is a rent request joined with its product and both parties.
type RentRequestView struct {
	ID              uuid.UUID  `json:"id"`
	ProductID       uuid.UUID  `json:"productId"`
	ProductName     string     `json:"productName"`
	BuyerID         uuid.UUID  `json:"buyerId"`
	BuyerEmail      string     `json:"buyerEmail"`
	SellerID        uuid.UUID  `json:"sellerId"`
	SellerEmail     string     `json:"sellerEmail"`
	Quantity        int        `json:"quantity"`
	StartDate       time.Time  `json:"startDate"`
	EndDate         time.Time  `json:"endDate"`
	TotalDays       int        `json:"totalDays"`
	PricePerDay     int64      `json:"pricePerDay"`
	TotalAmount     int64      `json:"totalAmount"`
	Status          string     `json:"status"`
	RejectionReason *string    `json:"rejectionReason,omitempty"`
	AcceptedAt      *time.Time `json:"acceptedAt,omitempty"`
	CollectedAt     *time.Time `json:"collectedAt,omitempty"`
	CompletedAt     *time.Time `json:"completedAt,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

// SellerEarnings covers COMPLETED requests only. Amounts are in minor units.
type SellerEarnings struct {
	SellerID      uuid.UUID `json:"sellerId"`
	TotalIncome   int64     `json:"totalIncome"`
	MonthlyIncome int64     `json:"monthlyIncome"`
	YearlyIncome  int64     `json:"yearlyIncome"`
	TotalRentals  int       `json:"totalRentals"`
	Period        string    `json:"period"`
}

type AdminRentalRow struct {
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
	StartDate     time.Time `json:"startDate"`
	EndDate       time.Time `json:"endDate"`
	RequestedAt   time.Time `json:"requestedAt"`
}

type AdminRentalSummary struct {
	TotalRentals   int   `json:"totalRentals"`
	OngoingCount   int   `json:"ongoingCount"`
	CompletedCount int   `json:"completedCount"`
	TotalRevenue   int64 `json:"totalRevenue"`
}

type AdminRentals struct {
	Rentals []*AdminRentalRow  `json:"rentals"`
	Summary AdminRentalSummary `json:"summary"`
}
