package repository

import "github.com/erginhw/pos-api/internal/domain/entity"

// RestockLineWithProduct es una línea de reabastecimiento con el nombre del producto resuelto.
type RestockLineWithProduct struct {
	entity.RestockLine
	ProductName string
}

// RestockRepository define el puerto de persistencia para Restock y sus líneas.
type RestockRepository interface {
	Create(restock *entity.Restock) error
	CreateLine(line *entity.RestockLine) error
	GetByID(id string) (*entity.Restock, error)
	GetLinesByRestockID(restockID string) ([]RestockLineWithProduct, error)
}
