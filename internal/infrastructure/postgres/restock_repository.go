package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/erginhw/pos-api/internal/domain/entity"
	"github.com/erginhw/pos-api/internal/domain/repository"
)

var _ repository.RestockRepository = (*RestockRepo)(nil)

// RestockRepo implementación de RestockRepository (usable con pool o tx).
type RestockRepo struct {
	q Querier
}

// NewRestockRepository construye el adaptador. Pasar pool o tx (Querier).
func NewRestockRepository(q Querier) *RestockRepo {
	return &RestockRepo{q: q}
}

// Create persiste la cabecera del reabastecimiento.
func (r *RestockRepo) Create(restock *entity.Restock) error {
	query := `
		INSERT INTO restocks (id, supplier_id, date, total_cost, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		restock.ID, restock.SupplierID, restock.Date, restock.TotalCost, restock.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert restock: %w", err)
	}
	return nil
}

// CreateLine persiste una línea de reabastecimiento.
func (r *RestockRepo) CreateLine(line *entity.RestockLine) error {
	query := `
		INSERT INTO restock_lines (id, restock_id, product_id, quantity, unit_cost, line_cost)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		line.ID, line.RestockID, line.ProductID, line.Quantity, line.UnitCost, line.LineCost,
	)
	if err != nil {
		return fmt.Errorf("insert restock line: %w", err)
	}
	return nil
}

// GetByID obtiene la cabecera de un reabastecimiento por ID.
func (r *RestockRepo) GetByID(id string) (*entity.Restock, error) {
	query := `
		SELECT id, supplier_id, date, total_cost, created_at
		FROM restocks WHERE id = $1`
	var re entity.Restock
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&re.ID, &re.SupplierID, &re.Date, &re.TotalCost, &re.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get restock: %w", err)
	}
	return &re, nil
}

// GetLinesByRestockID obtiene las líneas con el nombre del producto resuelto.
func (r *RestockRepo) GetLinesByRestockID(restockID string) ([]repository.RestockLineWithProduct, error) {
	query := `
		SELECT l.id, l.restock_id, l.product_id, l.quantity, l.unit_cost, l.line_cost,
		       COALESCE(p.name, '')
		FROM restock_lines l
		LEFT JOIN products p ON p.id = l.product_id
		WHERE l.restock_id = $1 ORDER BY l.id`
	rows, err := r.q.Query(context.Background(), query, restockID)
	if err != nil {
		return nil, fmt.Errorf("list restock lines: %w", err)
	}
	defer rows.Close()
	var list []repository.RestockLineWithProduct
	for rows.Next() {
		var l repository.RestockLineWithProduct
		if err := rows.Scan(&l.ID, &l.RestockID, &l.ProductID, &l.Quantity, &l.UnitCost,
			&l.LineCost, &l.ProductName); err != nil {
			return nil, fmt.Errorf("scan restock line: %w", err)
		}
		list = append(list, l)
	}
	return list, rows.Err()
}
