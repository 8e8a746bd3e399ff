//go:build unit

package commands_test

import (
	"context"
	"testing"

	"rentx-api/internal/pkg/clock"
	"rentx-api/internal/pkg/errs"
	"rentx-api/internal/usecase/commands"
	"rentx-api/tests/common/memstore"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductCommands_UpdateStock(t *testing.T) {
	ctx := context.Background()
	intPtr := func(v int) *int { return &v }
	boolPtr := func(v bool) *bool { return &v }

	setup := func(t *testing.T) (*memstore.Store, uuid.UUID, uuid.UUID) {
		t.Helper()
		store := memstore.New()
		sellerID := uuid.New()
		productID := store.AddProduct(sellerID, "Drill", 500, 10)
		rr := commands.NewRentRequestUseCase(store, store, &recordingSink{}, &recordingInvalidator{}, clock.NewMockClock(day(1)))
		_, err := rr.Create(ctx, commands.CreateRentRequestInput{
			ProductID: productID, Quantity: 6, StartDate: day(10), EndDate: day(11),
		}, uuid.New())
		require.NoError(t, err)
		return store, sellerID, productID
	}

	t.Run("success: raising quantity adds the difference to remaining", func(t *testing.T) {
		store, sellerID, productID := setup(t)
		got, err := commands.NewProductUseCase(store).UpdateStock(ctx, productID, sellerID, commands.UpdateStockInput{Quantity: intPtr(15)})
		require.NoError(t, err)
		assert.Equal(t, 15, got.Quantity)
		assert.Equal(t, 9, got.RemainingQuantity)
		assert.Equal(t, 9, store.Product(productID).RemainingQuantity())
	})

	t.Run("shrinking below reservations clamps remaining at zero", func(t *testing.T) {
		store, sellerID, productID := setup(t)
		got, err := commands.NewProductUseCase(store).UpdateStock(ctx, productID, sellerID, commands.UpdateStockInput{Quantity: intPtr(3)})
		require.NoError(t, err)
		assert.Equal(t, 3, got.Quantity)
		assert.Equal(t, 0, got.RemainingQuantity)
	})

	t.Run("availability toggle leaves counters alone", func(t *testing.T) {
		store, sellerID, productID := setup(t)
		got, err := commands.NewProductUseCase(store).UpdateStock(ctx, productID, sellerID, commands.UpdateStockInput{IsAvailable: boolPtr(false)})
		require.NoError(t, err)
		assert.False(t, got.IsAvailable)
		assert.Equal(t, 4, got.RemainingQuantity)
	})

	t.Run("error: non-owner is Forbidden", func(t *testing.T) {
		store, _, productID := setup(t)
		_, err := commands.NewProductUseCase(store).UpdateStock(ctx, productID, uuid.New(), commands.UpdateStockInput{Quantity: intPtr(1)})
		assert.Equal(t, errs.KindForbidden, errs.KindOf(err))
		assert.Equal(t, 10, store.Product(productID).Quantity())
	})

	t.Run("error: negative quantity", func(t *testing.T) {
		store, sellerID, productID := setup(t)
		_, err := commands.NewProductUseCase(store).UpdateStock(ctx, productID, sellerID, commands.UpdateStockInput{Quantity: intPtr(-1)})
		assert.Equal(t, errs.KindValidation, errs.KindOf(err))
	})

	t.Run("error: product not found", func(t *testing.T) {
		store, sellerID, _ := setup(t)
		_, err := commands.NewProductUseCase(store).UpdateStock(ctx, uuid.New(), sellerID, commands.UpdateStockInput{})
		assert.Equal(t, errs.KindNotFound, errs.KindOf(err))
		assert.Equal(t, "Product not found", errs.Message(err))
	})
}
