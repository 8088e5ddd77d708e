package repository

import "github.com/erginhw/pos-api/internal/domain/entity"

// EmployeeRepository define el puerto de persistencia para Employee.
type EmployeeRepository interface {
	Create(employee *entity.Employee) error
	FindByUsername(username string) (*entity.Employee, error)
	List() ([]*entity.Employee, error)
}
