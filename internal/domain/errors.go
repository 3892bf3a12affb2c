package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound         = errors.New("recurso no encontrado")
	ErrInvalidInput     = errors.New("entrada inválida")
	ErrDuplicate        = errors.New("ya existe un artículo con la misma descripción y ubicación física")
	ErrDeleteFiltered   = errors.New("borrado bloqueado: hay filtros activos")
	ErrUnauthorized     = errors.New("credencial de cuenta de servicio inválida o ausente")
	ErrSheetUnavailable = errors.New("no se pudo acceder a la hoja de cálculo")
)
