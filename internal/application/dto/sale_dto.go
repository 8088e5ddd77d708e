package dto

import "github.com/shopspring/decimal"

// CreateSaleRequest body para POST /api/sales.
// El precio unitario NO viene del cliente: se congela desde el catálogo al registrar.
type CreateSaleRequest struct {
	ClientID string            `json:"customer_id"`
	Items    []SaleItemRequest `json:"items"`
}

// SaleItemRequest línea solicitada (producto y cantidad).
type SaleItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// SaleLineResponse línea registrada con el precio congelado.
type SaleLineResponse struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name,omitempty"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// SaleResponse venta registrada (POST /api/sales, GET /api/sales-record).
type SaleResponse struct {
	ID       string             `json:"sales_id"`
	Number   string             `json:"number"`
	ClientID string             `json:"customer_id"`
	Date     string             `json:"date"`
	Total    decimal.Decimal    `json:"total_amount"`
	Items    []SaleLineResponse `json:"items,omitempty"`
}

// ReceiptResponse recibo completo para GET /api/sales/:id.
// Los precios son los persistidos al momento de la venta, no los vigentes del catálogo.
type ReceiptResponse struct {
	Sale   SaleResponse       `json:"sale"`
	Items  []SaleLineResponse `json:"items"`
	Client *ClientResponse    `json:"client,omitempty"`
}
