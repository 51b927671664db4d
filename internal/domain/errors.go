package domain

import "errors"

// Errores de dominio (sin dependencias externas). Los handlers HTTP los
// traducen a códigos de estado; los casos de uso los devuelven sin envolver
// para que errors.Is funcione de extremo a extremo.
var (
	ErrUnauthenticated    = errors.New("no autenticado")
	ErrInvalidToken       = errors.New("token inválido")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrInvalidActivation  = errors.New("la empresa no puede activarse sin hoja calendario")
	ErrInvalidReference   = errors.New("referencia a padre inválida")
	ErrCompanyInactive    = errors.New("la empresa está inactiva")
)
