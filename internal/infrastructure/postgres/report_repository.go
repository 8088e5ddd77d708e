package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/erginhw/pos-api/internal/domain/entity"
	"github.com/erginhw/pos-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de solo lectura para el dashboard y reportes.
// Va siempre sobre el pool: las lecturas no necesitan bloqueos (MVCC).
type ReportRepo struct {
	pool *pgxpool.Pool
}

// NewReportRepository construye el adaptador de reportes.
func NewReportRepository(pool *pgxpool.Pool) *ReportRepo {
	return &ReportRepo{pool: pool}
}

// GetSalesMetrics devuelve ingresos totales y número de ventas en [start, end].
// Usa COALESCE para devolver cero si no hay filas (período sin ventas).
func (r *ReportRepo) GetSalesMetrics(
	ctx context.Context,
	start, end time.Time,
) (revenue decimal.Decimal, count int, err error) {
	const query = `
	SELECT
	    COALESCE(SUM(total), 0) AS revenue,
	    COUNT(*)                AS sales_count
	FROM sales
	WHERE date BETWEEN $1 AND $2`

	err = r.pool.QueryRow(ctx, query, start, end).Scan(&revenue, &count)
	if err != nil {
		return decimal.Zero, 0, fmt.Errorf("reports.GetSalesMetrics: %w", err)
	}
	return revenue, count, nil
}

// CountProducts devuelve el número de productos del catálogo.
func (r *ReportRepo) CountProducts(ctx context.Context) (int, error) {
	var count int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM products`).Scan(&count); err != nil {
		return 0, fmt.Errorf("reports.CountProducts: %w", err)
	}
	return count, nil
}

// ListLowStock devuelve los productos con stock <= threshold, los más bajos primero.
func (r *ReportRepo) ListLowStock(ctx context.Context, threshold int) ([]repository.LowStockItem, error) {
	const query = `
	SELECT id, name, category, stock
	FROM products
	WHERE stock <= $1
	ORDER BY stock ASC, name`

	rows, err := r.pool.Query(ctx, query, threshold)
	if err != nil {
		return nil, fmt.Errorf("reports.ListLowStock: %w", err)
	}
	defer rows.Close()

	var results []repository.LowStockItem
	for rows.Next() {
		var item repository.LowStockItem
		if err := rows.Scan(&item.ProductID, &item.ProductName, &item.Category, &item.Stock); err != nil {
			return nil, fmt.Errorf("reports.ListLowStock scan: %w", err)
		}
		results = append(results, item)
	}
	return results, rows.Err()
}

// ListRecentSales devuelve las últimas `limit` ventas por fecha descendente.
func (r *ReportRepo) ListRecentSales(ctx context.Context, limit int) ([]*entity.Sale, error) {
	const query = `
	SELECT id, number, client_id, date, total, created_at
	FROM sales
	ORDER BY date DESC
	LIMIT $1`

	return r.querySales(ctx, query, limit)
}

// ListSalesInRange devuelve las ventas con fecha en [start, end], descendente.
func (r *ReportRepo) ListSalesInRange(ctx context.Context, start, end time.Time) ([]*entity.Sale, error) {
	const query = `
	SELECT id, number, client_id, date, total, created_at
	FROM sales
	WHERE date BETWEEN $1 AND $2
	ORDER BY date DESC`

	return r.querySales(ctx, query, start, end)
}

func (r *ReportRepo) querySales(ctx context.Context, query string, args ...any) ([]*entity.Sale, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("reports.querySales: %w", err)
	}
	defer rows.Close()

	var results []*entity.Sale
	for rows.Next() {
		var s entity.Sale
		if err := rows.Scan(&s.ID, &s.Number, &s.ClientID, &s.Date, &s.Total, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("reports.querySales scan: %w", err)
		}
		results = append(results, &s)
	}
	return results, rows.Err()
}
