package inventory

import (
	"context"

	"github.com/erginhw/pos-api/internal/domain/repository"
)

// RestockTxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad del reabastecimiento y
// reintenta ante fallos de serialización igual que el runner de ventas.
type RestockTxRunner interface {
	RunRestock(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		restockRepo repository.RestockRepository,
	) error) error
}
