package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrUserNotFound = errors.New("usuario no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrUnauthorized = errors.New("no autorizado")
	ErrForbidden    = errors.New("acceso denegado")

	// ErrInvalidDateRange la fecha de inicio es posterior a la fecha de fin.
	// Envuelve ErrInvalidInput para que los handlers lo traten como error de validación.
	ErrInvalidDateRange = fmt.Errorf("%w: la fecha de inicio debe ser anterior o igual a la fecha de fin", ErrInvalidInput)

	// ErrDeliveredFieldUnresolved ninguna de las columnas conocidas de cantidad entregada existe en stock_moves.
	ErrDeliveredFieldUnresolved = errors.New("no se pudo resolver la columna de cantidad entregada")
)
