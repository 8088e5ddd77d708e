package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/erginhw/pos-api/internal/application/inventory"
	"github.com/erginhw/pos-api/internal/application/sales"
	"github.com/erginhw/pos-api/internal/domain"
	"github.com/erginhw/pos-api/internal/domain/repository"
)

// Ensure TxRunner implements sales.TxRunner and inventory.RestockTxRunner.
var _ sales.TxRunner = (*TxRunner)(nil)
var _ inventory.RestockTxRunner = (*TxRunner)(nil)

// maxTxAttempts intentos totales ante fallos de serialización/deadlock.
const maxTxAttempts = 3

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
// Ante 40001/40P01 reintenta la unidad completa; agotados los intentos
// devuelve domain.ErrConflict.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunSale inicia una transacción con los repos que necesita el registro de ventas.
func (r *TxRunner) RunSale(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	saleRepo repository.SaleRepository,
) error) error {
	return r.runWithRetry(ctx, func(ctx context.Context) error {
		return r.runOnce(ctx, func(q Querier) error {
			return fn(NewProductRepository(q), NewSaleRepository(q))
		})
	})
}

// RunRestock inicia una transacción con los repos del reabastecimiento.
func (r *TxRunner) RunRestock(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	restockRepo repository.RestockRepository,
) error) error {
	return r.runWithRetry(ctx, func(ctx context.Context) error {
		return r.runOnce(ctx, func(q Querier) error {
			return fn(NewProductRepository(q), NewRestockRepository(q))
		})
	})
}

// runOnce abre la transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *TxRunner) runOnce(ctx context.Context, fn func(q Querier) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// runWithRetry reintenta fn mientras el fallo sea de serialización/deadlock.
func (r *TxRunner) runWithRetry(ctx context.Context, fn func(ctx context.Context) error) error {
	var err error
	for attempt := 1; attempt <= maxTxAttempts; attempt++ {
		err = fn(ctx)
		if err == nil || !isRetryableTxError(err) {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
	}
	return fmt.Errorf("%w: %v", domain.ErrConflict, err)
}
