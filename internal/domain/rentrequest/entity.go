package rentrequest

import (
	"strings"
	"time"

	"rentx-api/internal/pkg/errs"

	"github.com/google/uuid"
)

const MaxRejectionReasonLength = 500

// ProductSpec is the catalog state a reservation is checked against.
type ProductSpec struct {
	ID                uuid.UUID
	SellerID          uuid.UUID
	PricePerDay       int64
	Quantity          int
	RemainingQuantity int
	IsAvailable       bool
}

type RentRequest struct {
	id              uuid.UUID
	productID       uuid.UUID
	buyerID         uuid.UUID
	sellerID        uuid.UUID
	quantity        int
	window          Window
	totalDays       int
	pricePerDay     int64
	totalAmount     int64
	status          Status
	rejectionReason *string
	acceptedAt      *time.Time
	collectedAt     *time.Time
	completedAt     *time.Time
	createdAt       time.Time
	updatedAt       time.Time
}

func ValidateQuantity(quantity int) error {
	if quantity < 1 {
		return errs.Newf(errs.KindValidation, "Quantity must be at least 1")
	}
	return nil
}

// NewRentRequest runs the ownership, availability and stock checks against the
// product and the active reservations overlapping w, then prices the request.
// The window is expected to come from NewFutureWindow.
func NewRentRequest(
	p ProductSpec,
	buyerID uuid.UUID,
	quantity int,
	w Window,
	active []Reservation,
	now time.Time,
) (*RentRequest, error) {
	if err := ValidateQuantity(quantity); err != nil {
		return nil, err
	}
	if p.SellerID == buyerID {
		return nil, errs.Newf(errs.KindForbidden, "You cannot rent your own product")
	}
	if !p.IsAvailable {
		return nil, errs.Newf(errs.KindUnavailable, "Product is not available")
	}
	if quantity > p.RemainingQuantity {
		return nil, errs.Newf(errs.KindInsufficientStock, "Only %d items available", p.RemainingQuantity)
	}
	if dup, ok := FindBuyerOverlap(active, p.ID, buyerID, w); ok {
		return nil, errs.Newf(errs.KindDuplicateOverlap,
			"You already have an active rent request for this product from %s", dup.Window.String())
	}
	available := p.Quantity - SumReserved(active, p.ID, w, ActiveStatuses)
	if available < quantity {
		return nil, errs.Newf(errs.KindInsufficientStockForWindow,
			"Only %d items available for the selected dates", max(available, 0))
	}

	days := TotalDays(w)
	return &RentRequest{
		id:          uuid.New(),
		productID:   p.ID,
		buyerID:     buyerID,
		sellerID:    p.SellerID,
		quantity:    quantity,
		window:      w,
		totalDays:   days,
		pricePerDay: p.PricePerDay,
		totalAmount: TotalAmount(days, p.PricePerDay, quantity),
		status:      StatusPending,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func Reconstruct(
	id, productID, buyerID, sellerID uuid.UUID,
	quantity int,
	window Window,
	totalDays int,
	pricePerDay, totalAmount int64,
	status Status,
	rejectionReason *string,
	acceptedAt, collectedAt, completedAt *time.Time,
	createdAt, updatedAt time.Time,
) *RentRequest {
	return &RentRequest{
		id:              id,
		productID:       productID,
		buyerID:         buyerID,
		sellerID:        sellerID,
		quantity:        quantity,
		window:          window,
		totalDays:       totalDays,
		pricePerDay:     pricePerDay,
		totalAmount:     totalAmount,
		status:          status,
		rejectionReason: rejectionReason,
		acceptedAt:      acceptedAt,
		collectedAt:     collectedAt,
		completedAt:     completedAt,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

func (r *RentRequest) IsSeller(userID uuid.UUID) bool { return r.sellerID == userID }
func (r *RentRequest) IsBuyer(userID uuid.UUID) bool  { return r.buyerID == userID }

func (r *RentRequest) CanView(userID uuid.UUID) bool {
	return r.IsBuyer(userID) || r.IsSeller(userID)
}

// Decide moves a PENDING request to ACCEPTED or REJECTED.
func (r *RentRequest) Decide(d Decision, reason string, now time.Time) error {
	if r.status != StatusPending {
		return errs.Newf(errs.KindInvalidTransition, "Request is already %s", strings.ToLower(r.status.String()))
	}

	switch d {
	case DecisionAccept:
		r.acceptedAt = &now
	case DecisionReject:
		reason = strings.TrimSpace(reason)
		if reason == "" {
			return errs.Newf(errs.KindValidation, "Rejection reason is required")
		}
		if len(reason) > MaxRejectionReasonLength {
			return errs.Newf(errs.KindValidation, "Rejection reason must be at most %d characters", MaxRejectionReasonLength)
		}
		r.rejectionReason = &reason
	default:
		return errs.Newf(errs.KindValidation, "Action must be ACCEPTED or REJECTED")
	}

	return r.moveTo(d.Status(), now)
}

// Advance handles the fulfilment steps ACCEPTED -> COLLECTED -> COMPLETED,
// gated on the UTC calendar date of now.
func (r *RentRequest) Advance(to Status, now time.Time) error {
	if (to != StatusCollected && to != StatusCompleted) || !CanTransition(r.status, to) {
		return errs.Newf(errs.KindInvalidTransition, "Cannot change status from %s to %s", r.status, to)
	}

	today := DateOf(now)
	switch to {
	case StatusCollected:
		if today.Before(r.window.Start()) {
			return errs.Newf(errs.KindPrematureTransition,
				"Cannot mark as collected before the start date (%s)", r.window.Start().Format(DateLayout))
		}
		r.collectedAt = &now
	case StatusCompleted:
		if today.Before(r.window.End()) {
			return errs.Newf(errs.KindPrematureTransition,
				"Cannot mark as completed before the end date (%s)", r.window.End().Format(DateLayout))
		}
		r.completedAt = &now
	}

	return r.moveTo(to, now)
}

func (r *RentRequest) moveTo(to Status, now time.Time) error {
	if !CanTransition(r.status, to) {
		return errs.Newf(errs.KindInvalidTransition, "Cannot change status from %s to %s", r.status, to)
	}
	r.status = to
	r.updatedAt = now
	return nil
}

// ReleasedQuantity is the stock handed back by the status just entered.
func (r *RentRequest) ReleasedQuantity() int {
	if r.status.ReleasesStock() {
		return r.quantity
	}
	return 0
}

func (r *RentRequest) Reservation() Reservation {
	return Reservation{
		RequestID: r.id,
		ProductID: r.productID,
		BuyerID:   r.buyerID,
		Window:    r.window,
		Quantity:  r.quantity,
		Status:    r.status,
	}
}

func (r *RentRequest) ID() uuid.UUID              { return r.id }
func (r *RentRequest) ProductID() uuid.UUID       { return r.productID }
func (r *RentRequest) BuyerID() uuid.UUID         { return r.buyerID }
func (r *RentRequest) SellerID() uuid.UUID        { return r.sellerID }
func (r *RentRequest) Quantity() int              { return r.quantity }
func (r *RentRequest) Window() Window             { return r.window }
func (r *RentRequest) StartDate() time.Time       { return r.window.Start() }
func (r *RentRequest) EndDate() time.Time         { return r.window.End() }
func (r *RentRequest) TotalDays() int             { return r.totalDays }
func (r *RentRequest) PricePerDay() int64         { return r.pricePerDay }
func (r *RentRequest) TotalAmount() int64         { return r.totalAmount }
func (r *RentRequest) Status() Status             { return r.status }
func (r *RentRequest) RejectionReason() *string   { return r.rejectionReason }
func (r *RentRequest) AcceptedAt() *time.Time     { return r.acceptedAt }
func (r *RentRequest) CollectedAt() *time.Time    { return r.collectedAt }
func (r *RentRequest) CompletedAt() *time.Time    { return r.completedAt }
func (r *RentRequest) CreatedAt() time.Time       { return r.createdAt }
func (r *RentRequest) UpdatedAt() time.Time       { return r.updatedAt }
