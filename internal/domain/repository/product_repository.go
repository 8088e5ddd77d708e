package repository

import "github.com/erginhw/pos-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// GetByIDForUpdate y UpdateStock solo tienen sentido dentro de una transacción
// (repos atados a la tx vía TxRunner).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	// GetByIDForUpdate bloquea la fila del producto (SELECT FOR UPDATE) para
	// serializar las mutaciones de stock por producto.
	GetByIDForUpdate(id string) (*entity.Product, error)
	UpdateStock(productID string, stock int) error
	List() ([]*entity.Product, error)
	Delete(id string) error
}
