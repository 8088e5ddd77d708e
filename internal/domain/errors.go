package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrForbidden         = errors.New("acceso denegado")
	ErrInsufficientStock = errors.New("stock insuficiente")

	// ErrConflict indica que la transacción no pudo completarse por concurrencia
	// (se agotaron los reintentos por serialización/deadlock). El caller puede reintentar.
	ErrConflict = errors.New("conflicto de concurrencia, reintentos agotados")
)
