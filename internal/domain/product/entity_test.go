//go:build unit

package product_test

import (
	"testing"
	"time"

	"rentx-api/internal/domain/product"
	"rentx-api/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProduct(quantity, remaining int) *product.Product {
	now := time.Now()
	return product.Reconstruct(uuid.New(), uuid.New(), "Camping Tent", 1500, quantity, remaining, true, now, now)
}

func TestChangeQuantity(t *testing.T) {
	cases := []struct {
		name          string
		quantity      int
		remaining     int
		newQuantity   int
		wantRemaining int
	}{
		{name: "success: increase adds to remaining", quantity: 10, remaining: 4, newQuantity: 15, wantRemaining: 9},
		{name: "decrease keeps reservations", quantity: 10, remaining: 4, newQuantity: 8, wantRemaining: 2},
		{name: "decrease below reserved clamps to zero", quantity: 10, remaining: 4, newQuantity: 3, wantRemaining: 0},
		{name: "to zero", quantity: 10, remaining: 10, newQuantity: 0, wantRemaining: 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := newProduct(c.quantity, c.remaining)

			require.NoError(t, p.ChangeQuantity(c.newQuantity))

			assert.Equal(t, c.newQuantity, p.Quantity())
			assert.Equal(t, c.wantRemaining, p.RemainingQuantity())
			assert.GreaterOrEqual(t, p.RemainingQuantity(), 0)
			assert.LessOrEqual(t, p.RemainingQuantity(), p.Quantity())
		})
	}

	t.Run("negative quantity", func(t *testing.T) {
		p := newProduct(10, 4)

		err := p.ChangeQuantity(-1)

		require.ErrorIs(t, err, errs.ErrValidation)
		assert.Equal(t, 10, p.Quantity())
	})
}

func TestSpec(t *testing.T) {
	p := newProduct(10, 7)
	p.SetAvailability(false)

	spec := p.Spec()

	assert.Equal(t, p.ID(), spec.ID)
	assert.Equal(t, p.SellerID(), spec.SellerID)
	assert.Equal(t, int64(1500), spec.PricePerDay)
	assert.Equal(t, 7, spec.RemainingQuantity)
	assert.False(t, spec.IsAvailable)
	assert.Equal(t, 3, p.Reserved())
	assert.True(t, p.IsOwnedBy(p.SellerID()))
	assert.False(t, p.IsOwnedBy(uuid.New()))
}
