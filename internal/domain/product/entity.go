package product

import (
	"time"

	"rentx-api/internal/domain/rentrequest"
	"rentx-api/internal/pkg/errs"

	"github.com/google/uuid"
)

type Product struct {
	id                uuid.UUID
	sellerID          uuid.UUID
	name              string
	pricePerDay       int64
	quantity          int
	remainingQuantity int
	isAvailable       bool
	createdAt         time.Time
	updatedAt         time.Time
}

func Reconstruct(
	id, sellerID uuid.UUID,
	name string,
	pricePerDay int64,
	quantity, remainingQuantity int,
	isAvailable bool,
	createdAt, updatedAt time.Time,
) *Product {
	return &Product{
		id:                id,
		sellerID:          sellerID,
		name:              name,
		pricePerDay:       pricePerDay,
		quantity:          quantity,
		remainingQuantity: remainingQuantity,
		isAvailable:       isAvailable,
		createdAt:         createdAt,
		updatedAt:         updatedAt,
	}
}

func (p *Product) IsOwnedBy(sellerID uuid.UUID) bool {
	return p.sellerID == sellerID
}

func (p *Product) Spec() rentrequest.ProductSpec {
	return rentrequest.ProductSpec{
		ID:                p.id,
		SellerID:          p.sellerID,
		PricePerDay:       p.pricePerDay,
		Quantity:          p.quantity,
		RemainingQuantity: p.remainingQuantity,
		IsAvailable:       p.isAvailable,
	}
}

// ChangeQuantity applies the difference in total quantity to the remaining
// counter, clamped to [0, quantity].
func (p *Product) ChangeQuantity(quantity int) error {
	if quantity < 0 {
		return errs.Newf(errs.KindValidation, "Quantity must not be negative")
	}
	remaining := p.remainingQuantity + (quantity - p.quantity)
	p.quantity = quantity
	p.remainingQuantity = min(max(remaining, 0), quantity)
	return nil
}

func (p *Product) SetAvailability(available bool) {
	p.isAvailable = available
}

// Reserved is the quantity currently held by in-flight requests.
func (p *Product) Reserved() int {
	return p.quantity - p.remainingQuantity
}

func (p *Product) ID() uuid.UUID          { return p.id }
func (p *Product) SellerID() uuid.UUID    { return p.sellerID }
func (p *Product) Name() string           { return p.name }
func (p *Product) PricePerDay() int64     { return p.pricePerDay }
func (p *Product) Quantity() int          { return p.quantity }
func (p *Product) RemainingQuantity() int { return p.remainingQuantity }
func (p *Product) IsAvailable() bool      { return p.isAvailable }
func (p *Product) CreatedAt() time.Time   { return p.createdAt }
func (p *Product) UpdatedAt() time.Time   { return p.updatedAt }
