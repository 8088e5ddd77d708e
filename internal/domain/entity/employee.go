package entity

import "time"

// Roles válidos para Employee.
const (
	RoleAdmin   = "Admin"
	RoleCashier = "Cashier"
)

// Employee representa un empleado con acceso al sistema.
type Employee struct {
	ID           string
	Name         string
	Contact      string
	Email        string
	Address      string
	Username     string // único
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string // Admin, Cashier
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
