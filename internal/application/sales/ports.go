package sales

import (
	"context"

	"github.com/erginhw/pos-api/internal/domain/entity"
	"github.com/erginhw/pos-api/internal/domain/repository"
)

// TxRunner abre una transacción y ejecuta fn con repos atados a ella.
// Si fn retorna error se hace Rollback; la implementación reintenta la unidad
// completa ante fallos de serialización/deadlock antes de rendirse con
// domain.ErrConflict.
type TxRunner interface {
	RunSale(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		saleRepo repository.SaleRepository,
	) error) error
}

// ReceiptPDFGenerator genera la representación imprimible del recibo de venta.
type ReceiptPDFGenerator interface {
	GenerateReceiptPDF(
		ctx context.Context,
		sale *entity.Sale,
		client *entity.Client,
		lines []repository.SaleLineWithProduct,
	) ([]byte, error)
}
