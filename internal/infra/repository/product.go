package repository

import (
	"context"
	"time"

	"rentx-api/internal/domain/product"
	"rentx-api/internal/infra"
	"rentx-api/internal/infra/db"
	"rentx-api/internal/pkg/pgconv"
	"rentx-api/internal/usecase/jobs"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const productColumns = `id, seller_id, name, price_per_day, quantity, remaining_quantity, is_available, created_at, updated_at`

const getProductSQL = `SELECT ` + productColumns + ` FROM products WHERE id = $1`

const getProductForUpdateSQL = getProductSQL + ` FOR UPDATE`

// Reservations must keep the counter non-negative; releases are capped at quantity.
const adjustRemainingSQL = `
UPDATE products
SET remaining_quantity = LEAST(quantity, remaining_quantity + $2),
    updated_at = now()
WHERE id = $1 AND remaining_quantity + $2 >= 0
RETURNING remaining_quantity`

const productExistsSQL = `SELECT EXISTS (SELECT 1 FROM products WHERE id = $1)`

const updateStockSQL = `
UPDATE products
SET quantity = $2, remaining_quantity = $3, is_available = $4, updated_at = $5
WHERE id = $1`

const listStockDriftSQL = `
SELECT p.id, p.quantity, p.remaining_quantity,
       GREATEST(0, p.quantity - COALESCE(SUM(r.quantity), 0))::int AS expected
FROM products p
LEFT JOIN rent_requests r
       ON r.product_id = p.id AND r.status IN ('PENDING', 'ACCEPTED', 'COLLECTED')
GROUP BY p.id
HAVING p.remaining_quantity <> GREATEST(0, p.quantity - COALESCE(SUM(r.quantity), 0))`

// Run after GetForUpdate in the same transaction: under READ COMMITTED this
// statement's snapshot then includes every request committed before the lock.
const recountRemainingSQL = `
UPDATE products p
SET remaining_quantity = GREATEST(0, p.quantity - COALESCE((
        SELECT SUM(r.quantity) FROM rent_requests r
        WHERE r.product_id = p.id AND r.status IN ('PENDING', 'ACCEPTED', 'COLLECTED')
    ), 0)),
    updated_at = now()
WHERE p.id = $1
RETURNING remaining_quantity`

type ProductRepository struct {
	db db.DBTX
}

func NewProductRepository(db db.DBTX) *ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) Get(ctx context.Context, id uuid.UUID) (*product.Product, error) {
	return r.get(ctx, getProductSQL, id)
}

func (r *ProductRepository) GetForUpdate(ctx context.Context, id uuid.UUID) (*product.Product, error) {
	return r.get(ctx, getProductForUpdateSQL, id)
}

func (r *ProductRepository) get(ctx context.Context, query string, id uuid.UUID) (*product.Product, error) {
	p, err := scanProduct(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get product", err)
	}
	return p, nil
}

func (r *ProductRepository) AdjustRemaining(ctx context.Context, id uuid.UUID, delta int) (int, error) {
	var remaining int
	err := r.db.QueryRow(ctx, adjustRemainingSQL, id, delta).Scan(&remaining)
	if err == nil {
		return remaining, nil
	}
	if !pgconv.IsNoRows(err) {
		return 0, infra.WrapRepoErr("failed to adjust remaining quantity", err)
	}

	var exists bool
	if err := r.db.QueryRow(ctx, productExistsSQL, id).Scan(&exists); err != nil {
		return 0, infra.WrapRepoErr("failed to check product", err)
	}
	if !exists {
		return 0, infra.WrapRepoErr("product not found", nil, infra.KindNotFound)
	}
	return 0, infra.WrapRepoErr("remaining quantity would go negative", nil, infra.KindConflict)
}

func (r *ProductRepository) UpdateStock(ctx context.Context, p *product.Product) error {
	tag, err := r.db.Exec(ctx, updateStockSQL,
		p.ID(), p.Quantity(), p.RemainingQuantity(), p.IsAvailable(), time.Now().UTC())
	if err != nil {
		return infra.WrapRepoErr("failed to update product stock", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("product not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ProductRepository) ListStockDrift(ctx context.Context) ([]jobs.StockDrift, error) {
	rows, err := r.db.Query(ctx, listStockDriftSQL)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list stock drift", err)
	}
	drifts, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (jobs.StockDrift, error) {
		var d jobs.StockDrift
		err := row.Scan(&d.ProductID, &d.Quantity, &d.RemainingQuantity, &d.ExpectedRemaining)
		return d, err
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan stock drift", err)
	}
	return drifts, nil
}

func (r *ProductRepository) RecountRemaining(ctx context.Context, id uuid.UUID) (int, error) {
	var remaining int
	if err := r.db.QueryRow(ctx, recountRemainingSQL, id).Scan(&remaining); err != nil {
		return 0, infra.WrapRepoErr("failed to recount remaining quantity", err)
	}
	return remaining, nil
}

func scanProduct(row pgx.Row) (*product.Product, error) {
	var (
		id, sellerID                uuid.UUID
		name                        string
		pricePerDay                 int64
		quantity, remainingQuantity int
		isAvailable                 bool
		createdAt, updatedAt        time.Time
	)
	if err := row.Scan(&id, &sellerID, &name, &pricePerDay, &quantity, &remainingQuantity,
		&isAvailable, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	return product.Reconstruct(id, sellerID, name, pricePerDay, quantity, remainingQuantity,
		isAvailable, createdAt, updatedAt), nil
}
