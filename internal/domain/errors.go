package domain

import "errors"

// Errores de dominio (sin dependencias externas). Todos son errores locales de
// validación o de estado: se devuelven al llamador tal cual, sin reintentos.
var (
	ErrDayNotFound     = errors.New("día de estibas no encontrado")
	ErrDayClosed       = errors.New("el día está cerrado y no se puede editar")
	ErrAlreadyClosed   = errors.New("el día ya está cerrado")
	ErrInvalidQuantity = errors.New("cantidad inválida: debe ser mayor o igual a cero")
	ErrNotTracked      = errors.New("fecha anterior al inicio del seguimiento")
	ErrInvalidInput    = errors.New("entrada inválida")
)
