// Package reports contiene los casos de uso de solo lectura: dashboard de KPIs
// y reporte de ventas por rango de fechas.
package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/erginhw/pos-api/internal/application/dto"
	"github.com/erginhw/pos-api/internal/domain"
	"github.com/erginhw/pos-api/internal/domain/entity"
	"github.com/erginhw/pos-api/internal/domain/repository"
)

const (
	lowStockThreshold = 10 // unidades en o por debajo de las cuales un producto se considera bajo
	recentSalesLimit  = 5  // ventas en el widget de recientes
	reportDateLayout  = "2006-01-02"
)

// ReportUseCase genera el dashboard y el reporte de ventas.
// Todo se recalcula en cada petición sobre el estado actual; no hay agregados cacheados.
type ReportUseCase struct {
	reportRepo repository.ReportRepository
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(reportRepo repository.ReportRepository) *ReportUseCase {
	return &ReportUseCase{reportRepo: reportRepo}
}

// GetDashboard construye el resumen de KPIs del negocio.
//
// Tres llamadas en paralelo:
//  1. GetSalesMetrics(histórico completo) → ingresos + número de ventas
//  2. CountProducts + ListLowStock       → catálogo y existencias bajas
//  3. ListRecentSales(5)                 → últimas ventas
func (uc *ReportUseCase) GetDashboard(ctx context.Context) (*dto.DashboardResponse, error) {
	var epoch time.Time
	now := time.Now()

	type metricsResult struct {
		revenue decimal.Decimal
		count   int
		err     error
	}
	type stockResult struct {
		products int
		lowStock []repository.LowStockItem
		err      error
	}
	type recentResult struct {
		sales []*entity.Sale
		err   error
	}

	metricsCh := make(chan metricsResult, 1)
	stockCh := make(chan stockResult, 1)
	recentCh := make(chan recentResult, 1)

	go func() {
		rev, count, err := uc.reportRepo.GetSalesMetrics(ctx, epoch, now)
		metricsCh <- metricsResult{rev, count, err}
	}()
	go func() {
		products, err := uc.reportRepo.CountProducts(ctx)
		if err != nil {
			stockCh <- stockResult{err: err}
			return
		}
		low, err := uc.reportRepo.ListLowStock(ctx, lowStockThreshold)
		stockCh <- stockResult{products, low, err}
	}()
	go func() {
		sales, err := uc.reportRepo.ListRecentSales(ctx, recentSalesLimit)
		recentCh <- recentResult{sales, err}
	}()

	metrics := <-metricsCh
	stock := <-stockCh
	recent := <-recentCh

	if metrics.err != nil {
		return nil, fmt.Errorf("dashboard: métricas de ventas: %w", metrics.err)
	}
	if stock.err != nil {
		return nil, fmt.Errorf("dashboard: existencias: %w", stock.err)
	}
	if recent.err != nil {
		return nil, fmt.Errorf("dashboard: ventas recientes: %w", recent.err)
	}

	resp := &dto.DashboardResponse{
		TotalRevenue:    metrics.revenue.Round(2),
		TotalSalesCount: metrics.count,
		TotalProducts:   stock.products,
		LowStockCount:   len(stock.lowStock),
		LowStockItems:   make([]dto.LowStockItemDTO, 0, len(stock.lowStock)),
		RecentSales:     make([]dto.RecentSaleDTO, 0, len(recent.sales)),
	}
	for _, item := range stock.lowStock {
		resp.LowStockItems = append(resp.LowStockItems, dto.LowStockItemDTO{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Category:    item.Category,
			Stock:       item.Stock,
		})
	}
	for _, s := range recent.sales {
		resp.RecentSales = append(resp.RecentSales, dto.RecentSaleDTO{
			ID:     s.ID,
			Number: s.Number,
			Date:   s.Date.Format(reportDateLayout),
			Total:  s.Total,
		})
	}
	return resp, nil
}

// GetSalesReport resume las ventas del rango [startDate, endDate], ambos
// inclusivos como días calendario. startDate > endDate es ErrInvalidInput;
// un rango sin ventas devuelve cero transacciones e ingresos 0.
func (uc *ReportUseCase) GetSalesReport(ctx context.Context, startDate, endDate string) (*dto.SalesReportResponse, error) {
	start, err := time.Parse(reportDateLayout, startDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	end, err := time.Parse(reportDateLayout, endDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	if start.After(end) {
		return nil, domain.ErrInvalidInput
	}

	// El extremo final cubre el día completo: 00:00:00.000 – 23:59:59.999
	endOfDay := end.Add(24*time.Hour - time.Nanosecond)

	revenue, count, err := uc.reportRepo.GetSalesMetrics(ctx, start, endOfDay)
	if err != nil {
		return nil, fmt.Errorf("reporte de ventas: métricas: %w", err)
	}
	sales, err := uc.reportRepo.ListSalesInRange(ctx, start, endOfDay)
	if err != nil {
		return nil, fmt.Errorf("reporte de ventas: listado: %w", err)
	}

	resp := &dto.SalesReportResponse{
		StartDate:         startDate,
		EndDate:           endDate,
		TotalTransactions: count,
		TotalRevenue:      revenue.Round(2),
		SalesData:         make([]dto.SaleResponse, 0, len(sales)),
	}
	for _, s := range sales {
		resp.SalesData = append(resp.SalesData, dto.SaleResponse{
			ID:       s.ID,
			Number:   s.Number,
			ClientID: s.ClientID,
			Date:     s.Date.Format(reportDateLayout),
			Total:    s.Total,
		})
	}
	return resp, nil
}
