package dto

import "github.com/shopspring/decimal"

// CreateProductRequest body para POST /api/product.
// Stock es la existencia inicial; después de creado solo cambia vía ventas/reabastecimientos.
type CreateProductRequest struct {
	Name      string          `json:"product_name"`
	Category  string          `json:"category"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Stock     int             `json:"stock"`
}

// ProductResponse producto en respuestas (GET /api/inventory).
type ProductResponse struct {
	ID        string          `json:"product_id"`
	Name      string          `json:"product_name"`
	Category  string          `json:"category"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Stock     int             `json:"stock"`
}
