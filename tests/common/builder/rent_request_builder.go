//go:build unit || e2e

package builder

import (
	"time"

	"rentx-api/internal/domain/product"
	"rentx-api/internal/domain/rentrequest"
	reqdto "rentx-api/internal/handler/dto/request"
	"rentx-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type RentRequestBuilder struct {
	ID          uuid.UUID
	ProductID   uuid.UUID
	ProductName string
	BuyerID     uuid.UUID
	BuyerEmail  string
	SellerID    uuid.UUID
	SellerEmail string
	Quantity    int
	StartDate   time.Time
	EndDate     time.Time
	PricePerDay int64
	Status      rentrequest.Status
	CreatedAt   time.Time
}

func NewRentRequestBuilder() *RentRequestBuilder {
	start := time.Date(2030, time.March, 10, 0, 0, 0, 0, time.UTC)
	return &RentRequestBuilder{
		ID:          uuid.New(),
		ProductID:   uuid.New(),
		ProductName: "Camping Tent",
		BuyerID:     uuid.New(),
		BuyerEmail:  "buyer@example.com",
		SellerID:    uuid.New(),
		SellerEmail: "seller@example.com",
		Quantity:    2,
		StartDate:   start,
		EndDate:     start.AddDate(0, 0, 2),
		PricePerDay: 1500,
		Status:      rentrequest.StatusPending,
		CreatedAt:   time.Date(2030, time.March, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (b *RentRequestBuilder) With(mutate func(*RentRequestBuilder)) *RentRequestBuilder {
	mutate(b)
	return b
}

func (b *RentRequestBuilder) WithStatus(s rentrequest.Status) *RentRequestBuilder {
	b.Status = s
	return b
}

func (b *RentRequestBuilder) WithWindow(start, end time.Time) *RentRequestBuilder {
	b.StartDate, b.EndDate = start, end
	return b
}

func (b *RentRequestBuilder) totalDays() int {
	return int(b.EndDate.Sub(b.StartDate).Hours()/24) + 1
}

// Build methods
func (b *RentRequestBuilder) BuildCreateRequestDTO() reqdto.CreateRentRequestRequest {
	return reqdto.CreateRentRequestRequest{
		ProductID: b.ProductID,
		Quantity:  b.Quantity,
		StartDate: b.StartDate.Format(rentrequest.DateLayout),
		EndDate:   b.EndDate.Format(rentrequest.DateLayout),
	}
}

func (b *RentRequestBuilder) BuildView() *queries.RentRequestView {
	days := b.totalDays()
	return &queries.RentRequestView{
		ID:          b.ID,
		ProductID:   b.ProductID,
		ProductName: b.ProductName,
		BuyerID:     b.BuyerID,
		BuyerEmail:  b.BuyerEmail,
		SellerID:    b.SellerID,
		SellerEmail: b.SellerEmail,
		Quantity:    b.Quantity,
		StartDate:   b.StartDate,
		EndDate:     b.EndDate,
		TotalDays:   days,
		PricePerDay: b.PricePerDay,
		TotalAmount: int64(days) * b.PricePerDay * int64(b.Quantity),
		Status:      b.Status.String(),
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.CreatedAt,
	}
}

func (b *RentRequestBuilder) BuildAdminRow() *queries.AdminRentalRow {
	days := b.totalDays()
	return &queries.AdminRentalRow{
		ID:            b.ID,
		CustomerEmail: b.BuyerEmail,
		ProductID:     b.ProductID,
		ProductName:   b.ProductName,
		SellerEmail:   b.SellerEmail,
		PricePerDay:   b.PricePerDay,
		Quantity:      b.Quantity,
		TotalDays:     days,
		TotalPrice:    int64(days) * b.PricePerDay * int64(b.Quantity),
		Status:        b.Status.String(),
		StartDate:     b.StartDate,
		EndDate:       b.EndDate,
		RequestedAt:   b.CreatedAt,
	}
}

// BuildProduct returns the product the request is made against.
func (b *RentRequestBuilder) BuildProduct(quantity int) *product.Product {
	now := b.CreatedAt
	return product.Reconstruct(b.ProductID, b.SellerID, b.ProductName, b.PricePerDay,
		quantity, quantity, true, now, now)
}

func (b *RentRequestBuilder) BuildDomain() *rentrequest.RentRequest {
	w, err := rentrequest.NewWindow(b.StartDate, b.EndDate)
	if err != nil {
		panic(err)
	}
	days := b.totalDays()
	return rentrequest.Reconstruct(
		b.ID, b.ProductID, b.BuyerID, b.SellerID,
		b.Quantity, w, days, b.PricePerDay, int64(days)*b.PricePerDay*int64(b.Quantity),
		b.Status, nil, nil, nil, nil,
		b.CreatedAt, b.CreatedAt,
	)
}
