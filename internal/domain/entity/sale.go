package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale es la cabecera inmutable de una venta registrada.
// Total es la suma exacta de los subtotales de sus líneas.
type Sale struct {
	ID        string
	Number    string // consecutivo legible, ej. INV-1756600000
	ClientID  string
	Date      time.Time
	Total     decimal.Decimal
	CreatedAt time.Time
}

// SaleLine es una línea de venta con el precio unitario congelado al momento
// de la transacción. Subtotal = Quantity × UnitPrice.
type SaleLine struct {
	ID        string
	SaleID    string
	ProductID string
	Quantity  int // >= 1
	UnitPrice decimal.Decimal
	Subtotal  decimal.Decimal
}
