package repository

import "github.com/erginhw/pos-api/internal/domain/entity"

// SaleLineWithProduct es una línea de venta con el nombre del producto resuelto
// (para recibos). El nombre puede venir vacío si el producto fue eliminado del catálogo.
type SaleLineWithProduct struct {
	entity.SaleLine
	ProductName string
}

// SaleRepository define el puerto de persistencia para Sale y sus líneas.
type SaleRepository interface {
	Create(sale *entity.Sale) error
	CreateLine(line *entity.SaleLine) error
	GetByID(id string) (*entity.Sale, error)
	GetLinesBySaleID(saleID string) ([]SaleLineWithProduct, error)
	// List devuelve todas las ventas ordenadas por fecha descendente.
	List() ([]*entity.Sale, error)
}
