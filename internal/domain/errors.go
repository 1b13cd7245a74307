package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrForbidden         = errors.New("acceso denegado")
	ErrConflict          = errors.New("conflicto con el estado actual")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrCountFinalized    = errors.New("el conteo ya fue finalizado")
	ErrCountNotFinalized = errors.New("el conteo aún no ha sido finalizado")
	ErrShiftAlreadyOpen  = errors.New("el empleado ya tiene un turno abierto")
	ErrNoOpenShift       = errors.New("el empleado no tiene un turno abierto")
)
