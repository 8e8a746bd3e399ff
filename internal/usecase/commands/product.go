package commands

//go:generate mockgen -source=product.go -destination=../../../tests/mock/commands/product.go -package=mock_commands

import (
	"context"

	"rentx-api/internal/infra"
	"rentx-api/internal/pkg/errs"
	"rentx-api/internal/pkg/ptr"
	"rentx-api/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrNotProductOwner = errs.Newf(errs.KindForbidden, "You can only update your own products")

// UpdateStockInput leaves a field unchanged when it is nil.
type UpdateStockInput struct {
	Quantity    *int
	IsAvailable *bool
}

type ProductStock struct {
	ProductID         uuid.UUID
	Quantity          int
	RemainingQuantity int
	IsAvailable       bool
}

type ProductCommands interface {
	UpdateStock(ctx context.Context, productID, sellerID uuid.UUID, in UpdateStockInput) (*ProductStock, error)
}

type productUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewProductUseCase(uow shared.UnitOfWork) ProductCommands {
	return &productUseCaseImpl{uow: uow}
}

func (uc *productUseCaseImpl) UpdateStock(ctx context.Context, productID, sellerID uuid.UUID, in UpdateStockInput) (*ProductStock, error) {
	var out ProductStock
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		p, err := tx.Products().GetForUpdate(ctx, productID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrProductNotFound
			}
			return err
		}
		if !p.IsOwnedBy(sellerID) {
			return ErrNotProductOwner
		}

		if in.Quantity != nil {
			if err := p.ChangeQuantity(*in.Quantity); err != nil {
				return err
			}
		}
		p.SetAvailability(ptr.Deref(in.IsAvailable, p.IsAvailable()))
		if err := tx.Products().UpdateStock(ctx, p); err != nil {
			return err
		}

		out = ProductStock{
			ProductID:         p.ID(),
			Quantity:          p.Quantity(),
			RemainingQuantity: p.RemainingQuantity(),
			IsAvailable:       p.IsAvailable(),
		}
		return nil
	})
	if err != nil {
		return nil, errs.Internal(err)
	}
	return &out, nil
}
