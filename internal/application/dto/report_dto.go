package dto

import "github.com/shopspring/decimal"

// LowStockItemDTO producto por debajo del umbral de reorden.
type LowStockItemDTO struct {
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	Category    string `json:"category"`
	Stock       int    `json:"stock"`
}

// RecentSaleDTO venta resumida para el widget de ventas recientes.
type RecentSaleDTO struct {
	ID     string          `json:"sales_id"`
	Number string          `json:"number"`
	Date   string          `json:"date"`
	Total  decimal.Decimal `json:"total_amount"`
}

// DashboardResponse KPIs del negocio, recalculados en cada petición.
type DashboardResponse struct {
	TotalRevenue    decimal.Decimal   `json:"total_revenue"`
	TotalSalesCount int               `json:"total_sales_count"`
	TotalProducts   int               `json:"total_products"`
	LowStockCount   int               `json:"low_stock_count"`
	LowStockItems   []LowStockItemDTO `json:"low_stock_items"`
	RecentSales     []RecentSaleDTO   `json:"recent_sales"`
}

// SalesReportResponse resumen de ventas para GET /api/reports/sales.
// El rango [start_date, end_date] es inclusivo en ambos extremos (días calendario).
type SalesReportResponse struct {
	StartDate         string          `json:"start_date"`
	EndDate           string          `json:"end_date"`
	TotalTransactions int             `json:"total_transactions"`
	TotalRevenue      decimal.Decimal `json:"total_revenue"`
	SalesData         []SaleResponse  `json:"sales_data"`
}
