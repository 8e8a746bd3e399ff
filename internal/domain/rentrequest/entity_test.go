//go:build unit

package rentrequest_test

import (
	"testing"
	"time"

	"rentx-api/internal/domain/rentrequest"
	"rentx-api/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSpec() rentrequest.ProductSpec {
	return rentrequest.ProductSpec{
		ID:                uuid.New(),
		SellerID:          uuid.New(),
		PricePerDay:       1000,
		Quantity:          10,
		RemainingQuantity: 10,
		IsAvailable:       true,
	}
}

func TestNewRentRequest(t *testing.T) {
	now := dayN(1)
	buyer := uuid.New()

	t.Run("success: basic case", func(t *testing.T) {
		spec := newSpec()

		r, err := rentrequest.NewRentRequest(spec, buyer, 2, mustWindow(t, 10, 12), nil, now)

		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, r.ID())
		assert.Equal(t, rentrequest.StatusPending, r.Status())
		assert.Equal(t, spec.SellerID, r.SellerID())
		assert.Equal(t, 3, r.TotalDays())
		assert.Equal(t, int64(1000), r.PricePerDay())
		assert.Equal(t, int64(6000), r.TotalAmount())
		assert.Nil(t, r.AcceptedAt())
		assert.Nil(t, r.RejectionReason())
		assert.Equal(t, now, r.CreatedAt())
	})

	cases := []struct {
		name    string
		mutate  func(*rentrequest.ProductSpec)
		buyer   func(rentrequest.ProductSpec) uuid.UUID
		qty     int
		active  func(rentrequest.ProductSpec) []rentrequest.Reservation
		errIs   error
		message string
	}{
		{
			name:    "quantity zero",
			qty:     0,
			errIs:   errs.ErrValidation,
			message: "Quantity must be at least 1",
		},
		{
			name:    "error: cannot rent own product",
			buyer:   func(p rentrequest.ProductSpec) uuid.UUID { return p.SellerID },
			qty:     1,
			errIs:   errs.ErrForbidden,
			message: "You cannot rent your own product",
		},
		{
			name:    "unavailable product",
			mutate:  func(p *rentrequest.ProductSpec) { p.IsAvailable = false },
			qty:     1,
			errIs:   errs.ErrUnavailable,
			message: "Product is not available",
		},
		{
			name:    "exceeds remaining quantity",
			mutate:  func(p *rentrequest.ProductSpec) { p.RemainingQuantity = 3 },
			qty:     4,
			errIs:   errs.ErrInsufficientStock,
			message: "Only 3 items available",
		},
		{
			name: "error: same buyer overlapping request",
			qty:  1,
			active: func(p rentrequest.ProductSpec) []rentrequest.Reservation {
				return []rentrequest.Reservation{{
					ProductID: p.ID, BuyerID: buyer, Quantity: 1,
					Window: mustWindow(t, 12, 14), Status: rentrequest.StatusAccepted,
				}}
			},
			errIs:   errs.ErrDuplicateOverlap,
			message: "You already have an active rent request for this product from Tue Mar 12 2030 to Thu Mar 14 2030",
		},
		{
			name: "window stock exhausted",
			qty:  5,
			active: func(p rentrequest.ProductSpec) []rentrequest.Reservation {
				return []rentrequest.Reservation{{
					ProductID: p.ID, BuyerID: uuid.New(), Quantity: 6,
					Window: mustWindow(t, 11, 13), Status: rentrequest.StatusPending,
				}}
			},
			errIs:   errs.ErrInsufficientStockForWindow,
			message: "Only 4 items available for the selected dates",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			spec := newSpec()
			if c.mutate != nil {
				c.mutate(&spec)
			}
			b := buyer
			if c.buyer != nil {
				b = c.buyer(spec)
			}
			var active []rentrequest.Reservation
			if c.active != nil {
				active = c.active(spec)
			}

			r, err := rentrequest.NewRentRequest(spec, b, c.qty, mustWindow(t, 10, 12), active, now)

			require.Nil(t, r)
			require.ErrorIs(t, err, c.errIs)
			assert.Equal(t, c.message, err.Error())
		})
	}

	t.Run("duplicate check ignores finished requests", func(t *testing.T) {
		spec := newSpec()
		active := []rentrequest.Reservation{{
			ProductID: spec.ID, BuyerID: buyer, Quantity: 1,
			Window: mustWindow(t, 10, 12), Status: rentrequest.StatusCompleted,
		}}

		_, err := rentrequest.NewRentRequest(spec, buyer, 1, mustWindow(t, 10, 12), active, now)

		require.NoError(t, err)
	})
}

func newPending(t *testing.T) *rentrequest.RentRequest {
	t.Helper()
	r, err := rentrequest.NewRentRequest(newSpec(), uuid.New(), 2, mustWindow(t, 10, 12), nil, dayN(1))
	require.NoError(t, err)
	return r
}

func TestDecide(t *testing.T) {
	now := dayN(2)

	t.Run("accept sets acceptedAt", func(t *testing.T) {
		r := newPending(t)

		require.NoError(t, r.Decide(rentrequest.DecisionAccept, "", now))

		assert.Equal(t, rentrequest.StatusAccepted, r.Status())
		require.NotNil(t, r.AcceptedAt())
		assert.Equal(t, now, *r.AcceptedAt())
		assert.Zero(t, r.ReleasedQuantity())
	})

	t.Run("reject releases stock", func(t *testing.T) {
		r := newPending(t)

		require.NoError(t, r.Decide(rentrequest.DecisionReject, " damaged ", now))

		assert.Equal(t, rentrequest.StatusRejected, r.Status())
		require.NotNil(t, r.RejectionReason())
		assert.Equal(t, "damaged", *r.RejectionReason())
		assert.Nil(t, r.AcceptedAt())
		assert.Equal(t, 2, r.ReleasedQuantity())
	})

	t.Run("error: rejection without reason", func(t *testing.T) {
		r := newPending(t)

		err := r.Decide(rentrequest.DecisionReject, "  ", now)

		require.ErrorIs(t, err, errs.ErrValidation)
		assert.Equal(t, "Rejection reason is required", err.Error())
		assert.Equal(t, rentrequest.StatusPending, r.Status())
	})

	t.Run("second decision is an invalid transition", func(t *testing.T) {
		r := newPending(t)
		require.NoError(t, r.Decide(rentrequest.DecisionAccept, "", now))

		err := r.Decide(rentrequest.DecisionAccept, "", now)

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, "Request is already accepted", err.Error())
	})

	t.Run("rejected request cannot be accepted", func(t *testing.T) {
		r := newPending(t)
		require.NoError(t, r.Decide(rentrequest.DecisionReject, "damaged", now))

		err := r.Decide(rentrequest.DecisionAccept, "", now)

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, rentrequest.StatusRejected, r.Status())
	})
}

func TestAdvance(t *testing.T) {
	accepted := func(t *testing.T) *rentrequest.RentRequest {
		r := newPending(t)
		require.NoError(t, r.Decide(rentrequest.DecisionAccept, "", dayN(2)))
		return r
	}

	t.Run("error: collecting before start date", func(t *testing.T) {
		r := accepted(t)

		err := r.Advance(rentrequest.StatusCollected, dayN(9).Add(23*time.Hour))

		require.ErrorIs(t, err, errs.ErrPrematureTransition)
		assert.Equal(t, rentrequest.StatusAccepted, r.Status())
		assert.Nil(t, r.CollectedAt())
	})

	t.Run("collected on start date regardless of time of day", func(t *testing.T) {
		r := accepted(t)
		now := dayN(10).Add(time.Minute)

		require.NoError(t, r.Advance(rentrequest.StatusCollected, now))

		assert.Equal(t, rentrequest.StatusCollected, r.Status())
		assert.Equal(t, now, *r.CollectedAt())
		assert.Zero(t, r.ReleasedQuantity())
	})

	t.Run("completed before end date is premature", func(t *testing.T) {
		r := accepted(t)
		require.NoError(t, r.Advance(rentrequest.StatusCollected, dayN(10)))

		err := r.Advance(rentrequest.StatusCompleted, dayN(11))

		require.ErrorIs(t, err, errs.ErrPrematureTransition)
	})

	t.Run("completed releases stock", func(t *testing.T) {
		r := accepted(t)
		require.NoError(t, r.Advance(rentrequest.StatusCollected, dayN(10)))

		require.NoError(t, r.Advance(rentrequest.StatusCompleted, dayN(12)))

		assert.Equal(t, rentrequest.StatusCompleted, r.Status())
		assert.NotNil(t, r.CompletedAt())
		assert.Equal(t, 2, r.ReleasedQuantity())
	})

	t.Run("invalid transitions", func(t *testing.T) {
		cases := []struct {
			name string
			to   rentrequest.Status
		}{
			{name: "ACCEPTED -> COMPLETED", to: rentrequest.StatusCompleted},
			{name: "ACCEPTED -> ACCEPTED", to: rentrequest.StatusAccepted},
			{name: "ACCEPTED -> REJECTED", to: rentrequest.StatusRejected},
			{name: "ACCEPTED -> PENDING", to: rentrequest.StatusPending},
		}
		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				r := accepted(t)

				err := r.Advance(c.to, dayN(20))

				require.ErrorIs(t, err, errs.ErrInvalidTransition)
				assert.Equal(t, "Cannot change status from ACCEPTED to "+c.to.String(), err.Error())
			})
		}
	})

	t.Run("pending cannot skip to collected", func(t *testing.T) {
		r := newPending(t)

		err := r.Advance(rentrequest.StatusCollected, dayN(20))

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
	})
}

func TestTransitionTable(t *testing.T) {
	all := []rentrequest.Status{
		rentrequest.StatusPending, rentrequest.StatusAccepted, rentrequest.StatusRejected,
		rentrequest.StatusCollected, rentrequest.StatusCompleted,
	}
	allowed := map[rentrequest.Status][]rentrequest.Status{
		rentrequest.StatusPending:   {rentrequest.StatusAccepted, rentrequest.StatusRejected},
		rentrequest.StatusAccepted:  {rentrequest.StatusCollected},
		rentrequest.StatusCollected: {rentrequest.StatusCompleted},
	}

	for _, from := range all {
		for _, to := range all {
			want := false
			for _, s := range allowed[from] {
				if s == to {
					want = true
				}
			}
			assert.Equal(t, want, rentrequest.CanTransition(from, to), "%s -> %s", from, to)
		}
	}
	assert.Empty(t, rentrequest.StatusRejected.Next())
	assert.Empty(t, rentrequest.StatusCompleted.Next())
}

func TestParse(t *testing.T) {
	_, err := rentrequest.ParseDecision("COLLECTED")
	require.ErrorIs(t, err, errs.ErrValidation)

	g, err := rentrequest.ParseStatusGroup("ongoing")
	require.NoError(t, err)
	assert.Equal(t, rentrequest.ActiveStatuses, g.Statuses())

	_, err = rentrequest.ParseStatusGroup("archived")
	require.ErrorIs(t, err, errs.ErrValidation)

	_, err = rentrequest.ParseStatus("pending")
	require.ErrorIs(t, err, errs.ErrValidation)
}
