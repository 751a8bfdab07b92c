package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// El cliente HTTP del API traduce cada status a uno de estos errores.
var (
	ErrNotFound       = errors.New("recurso no encontrado")
	ErrInvalidInput   = errors.New("entrada inválida")
	ErrUnauthorized   = errors.New("no autorizado")
	ErrForbidden      = errors.New("acceso denegado")
	ErrConflict       = errors.New("conflicto con el estado actual")
	ErrNetwork        = errors.New("no se pudo contactar el servidor")
	ErrUpstream       = errors.New("error del servidor remoto")
	ErrMissingCompany = errors.New("falta el id de la empresa")
	ErrNoSession      = errors.New("no hay sesión iniciada")
)
