package jobs

import (
	"context"
	"log/slog"

	"rentx-api/internal/pkg/errs"
	"rentx-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type ReconcileReport struct {
	Drifted  []StockDrift
	Repaired int
}

// StockReconciler compares remaining counters with active reservations and
// optionally rewrites them.
type StockReconciler struct {
	store  StockStore
	uow    shared.UnitOfWork
	repair bool
	logger *slog.Logger
}

func NewStockReconciler(store StockStore, uow shared.UnitOfWork, repair bool) *StockReconciler {
	return &StockReconciler{
		store:  store,
		uow:    uow,
		repair: repair,
		logger: slog.Default().With(slog.String("component", "stock_reconciler")),
	}
}

func (r *StockReconciler) RunOnce(ctx context.Context) (ReconcileReport, error) {
	var report ReconcileReport

	drifts, err := r.store.ListStockDrift(ctx)
	if err != nil {
		return report, errs.Wrap(err, "list stock drift")
	}
	report.Drifted = drifts

	for _, d := range drifts {
		r.logger.Warn("stock drift detected",
			slog.String("product_id", d.ProductID.String()),
			slog.Int("quantity", d.Quantity),
			slog.Int("remaining_quantity", d.RemainingQuantity),
			slog.Int("expected_remaining", d.ExpectedRemaining))

		if !r.repair {
			continue
		}
		remaining, err := r.repairOne(ctx, d.ProductID)
		if err != nil {
			r.logger.Error("stock repair failed",
				slog.String("product_id", d.ProductID.String()),
				slog.Any("error", err))
			continue
		}
		r.logger.Info("stock repaired",
			slog.String("product_id", d.ProductID.String()),
			slog.Int("remaining_quantity", remaining))
		report.Repaired++
	}
	return report, nil
}

// repairOne takes the same product row lock as the reservation path, so a
// create that is in flight either commits before the recount or waits for it.
func (r *StockReconciler) repairOne(ctx context.Context, productID uuid.UUID) (int, error) {
	var remaining int
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Products().GetForUpdate(ctx, productID); err != nil {
			return err
		}
		n, err := tx.Products().RecountRemaining(ctx, productID)
		if err != nil {
			return err
		}
		remaining = n
		return nil
	})
	return remaining, err
}

func (r *StockReconciler) Run() {
	if _, err := r.RunOnce(context.Background()); err != nil {
		r.logger.Error("stock reconciliation failed", slog.Any("error", err))
	}
}
