package dto

import "time"

// LoginRequest body para POST /api/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse credenciales verificadas. El rol viaja firmado dentro del token;
// username y role se repiten en el cuerpo para conveniencia del frontend.
type LoginResponse struct {
	Success  bool   `json:"success"`
	Username string `json:"username"`
	Role     string `json:"role"`
	Token    string `json:"token"`
}

// RegisterEmployeeRequest body para POST /api/employees (solo Admin).
type RegisterEmployeeRequest struct {
	Name     string `json:"name"`
	Contact  string `json:"contact"`
	Email    string `json:"email"`
	Address  string `json:"address"`
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// EmployeeResponse empleado en respuestas (nunca incluye el hash de password).
type EmployeeResponse struct {
	ID        string    `json:"employee_id"`
	Name      string    `json:"name"`
	Contact   string    `json:"contact"`
	Email     string    `json:"email"`
	Address   string    `json:"address"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}
