package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Restock es la cabecera de un reabastecimiento de mercancía desde un proveedor.
type Restock struct {
	ID         string
	SupplierID string
	Date       time.Time
	TotalCost  decimal.Decimal
	CreatedAt  time.Time
}

// RestockLine es una línea de reabastecimiento. LineCost = Quantity × UnitCost.
type RestockLine struct {
	ID        string
	RestockID string
	ProductID string
	Quantity  int // >= 1
	UnitCost  decimal.Decimal // >= 0
	LineCost  decimal.Decimal
}
