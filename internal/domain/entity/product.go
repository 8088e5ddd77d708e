package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un artículo del catálogo de la ferretería.
// Stock es la existencia actual; solo el motor de transacciones la modifica
// (ventas y reabastecimientos), nunca un update directo del catálogo.
type Product struct {
	ID        string
	Name      string
	Category  string
	UnitPrice decimal.Decimal // precio de venta vigente, >= 0
	Stock     int             // unidades disponibles, >= 0
	CreatedAt time.Time
	UpdatedAt time.Time
}
