package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/erginhw/pos-api/internal/domain/entity"
)

// LowStockItem producto con existencias en o por debajo del umbral.
type LowStockItem struct {
	ProductID   string
	ProductName string
	Category    string
	Stock       int
}

// ReportRepository consultas de solo lectura para el dashboard y reportes.
// Siempre recalcula sobre el estado actual; no mantiene agregados materializados.
type ReportRepository interface {
	// GetSalesMetrics devuelve ingresos totales y número de ventas en [start, end].
	GetSalesMetrics(ctx context.Context, start, end time.Time) (revenue decimal.Decimal, count int, err error)
	CountProducts(ctx context.Context) (int, error)
	// ListLowStock devuelve los productos con stock <= threshold.
	ListLowStock(ctx context.Context, threshold int) ([]LowStockItem, error)
	// ListRecentSales devuelve las últimas `limit` ventas por fecha descendente.
	ListRecentSales(ctx context.Context, limit int) ([]*entity.Sale, error)
	// ListSalesInRange devuelve las ventas con fecha en [start, end], descendente.
	ListSalesInRange(ctx context.Context, start, end time.Time) ([]*entity.Sale, error)
}
