package dto

import "github.com/shopspring/decimal"

// CreateRestockRequest body para POST /api/restock.
type CreateRestockRequest struct {
	SupplierID string               `json:"supplier_id"`
	Items      []RestockItemRequest `json:"items"`
}

// RestockItemRequest línea de reabastecimiento (producto, cantidad y costo unitario).
type RestockItemRequest struct {
	ProductID string          `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitCost  decimal.Decimal `json:"unit_cost"`
}

// RestockLineResponse línea registrada.
type RestockLineResponse struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name,omitempty"`
	Quantity    int             `json:"quantity"`
	UnitCost    decimal.Decimal `json:"unit_cost"`
	LineCost    decimal.Decimal `json:"line_cost"`
}

// RestockResponse reabastecimiento registrado.
type RestockResponse struct {
	ID         string                `json:"restock_id"`
	SupplierID string                `json:"supplier_id"`
	Date       string                `json:"date"`
	TotalCost  decimal.Decimal       `json:"total_cost"`
	Items      []RestockLineResponse `json:"items,omitempty"`
}
