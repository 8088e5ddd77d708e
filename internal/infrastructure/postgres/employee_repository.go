package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/erginhw/pos-api/internal/domain"
	"github.com/erginhw/pos-api/internal/domain/entity"
	"github.com/erginhw/pos-api/internal/domain/repository"
)

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

// EmployeeRepo implementación de EmployeeRepository (usable con pool o tx).
type EmployeeRepo struct {
	q Querier
}

// NewEmployeeRepository construye el adaptador. Pasar pool o tx (Querier).
func NewEmployeeRepository(q Querier) *EmployeeRepo {
	return &EmployeeRepo{q: q}
}

// Create persiste un nuevo empleado. ErrDuplicate si el username ya existe.
func (r *EmployeeRepo) Create(employee *entity.Employee) error {
	query := `
		INSERT INTO employees (id, name, contact, email, address, username, password_hash, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		employee.ID, employee.Name, employee.Contact, employee.Email, employee.Address,
		employee.Username, employee.PasswordHash, employee.Role,
		employee.CreatedAt, employee.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert employee: %w", err)
	}
	return nil
}

// FindByUsername obtiene un empleado por username (incluye el hash para login).
func (r *EmployeeRepo) FindByUsername(username string) (*entity.Employee, error) {
	query := `
		SELECT id, name, contact, email, address, username, password_hash, role, created_at, updated_at
		FROM employees WHERE username = $1`
	var e entity.Employee
	err := r.q.QueryRow(context.Background(), query, username).Scan(
		&e.ID, &e.Name, &e.Contact, &e.Email, &e.Address, &e.Username,
		&e.PasswordHash, &e.Role, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get employee by username: %w", err)
	}
	return &e, nil
}

// List devuelve todos los empleados ordenados por nombre.
func (r *EmployeeRepo) List() ([]*entity.Employee, error) {
	query := `
		SELECT id, name, contact, email, address, username, password_hash, role, created_at, updated_at
		FROM employees ORDER BY name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()
	var list []*entity.Employee
	for rows.Next() {
		var e entity.Employee
		if err := rows.Scan(&e.ID, &e.Name, &e.Contact, &e.Email, &e.Address, &e.Username,
			&e.PasswordHash, &e.Role, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}
