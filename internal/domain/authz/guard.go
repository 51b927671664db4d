// Package authz implementa la decisión de autorización multi-tenant.
//
// La función Decide es pura: no toca base de datos ni contexto HTTP, solo
// evalúa (rol, empresa del usuario, empresa objetivo) contra los requisitos de
// la operación. El orden de las puertas es fijo: rol → solo-global → alcance.
package authz

import (
	"fmt"

	"github.com/plannerx/plannerx-api/internal/domain"
	"github.com/plannerx/plannerx-api/internal/domain/entity"
)

// Conjuntos de roles habituales por operación.
var (
	// Admins roles que pueden mutar recursos de empresa (dimensiones, hojas,
	// calendario, usuarios).
	Admins = []entity.Role{entity.RoleSysadmin, entity.RoleCompanyAdmin}

	// AnyRole cualquier usuario autenticado.
	AnyRole = []entity.Role{
		entity.RoleSysadmin, entity.RoleCompanyAdmin,
		entity.RoleCEO, entity.RoleCFO, entity.RoleKAM,
	}
)

// Decide evalúa si user puede ejecutar una operación sobre targetCompanyID.
//
// Reglas, en orden:
//  1. Puerta de rol: user.Role debe estar en required.
//  2. Puerta solo-global (requireGlobal): exige SYSADMIN sin empresa asignada.
//     Un SYSADMIN tunelizado (CompanyID no nil) queda denegado: asumió el
//     contexto de una empresa y no puede crear ni listar otros tenants.
//  3. Puerta de alcance (targetCompanyID no nil): los roles de empresa y el
//     SYSADMIN tunelizado solo acceden a su propia empresa; el SYSADMIN
//     global accede a cualquiera.
//
// Devuelve nil (permitir) o un error que envuelve domain.ErrForbidden con el
// motivo de la denegación.
func Decide(user *entity.User, targetCompanyID *string, required []entity.Role, requireGlobal bool) error {
	if user == nil {
		return domain.ErrUnauthenticated
	}

	if !roleIn(user.Role, required) {
		return fmt.Errorf("%w: rol %s no autorizado para esta operación", domain.ErrForbidden, user.Role)
	}

	if requireGlobal {
		if user.Role != entity.RoleSysadmin {
			return fmt.Errorf("%w: operación reservada a SYSADMIN", domain.ErrForbidden)
		}
		if user.CompanyID != nil {
			return fmt.Errorf("%w: SYSADMIN tunelizado no puede operar globalmente", domain.ErrForbidden)
		}
	}

	if targetCompanyID != nil {
		switch {
		case user.Role == entity.RoleSysadmin && user.CompanyID == nil:
			// SYSADMIN global: cualquier empresa.
		case user.CompanyID != nil && *user.CompanyID == *targetCompanyID:
			// Rol de empresa o SYSADMIN tunelizado dentro de su propia empresa.
		default:
			return fmt.Errorf("%w: fuera del alcance de la empresa", domain.ErrForbidden)
		}
	}

	return nil
}

// CanModifyCalendar puerta específica de recurso: la hoja calendario solo la
// mutan SYSADMIN o COMPANY_ADMIN, sea cual sea el resultado del alcance.
func CanModifyCalendar(user *entity.User) error {
	if user == nil {
		return domain.ErrUnauthenticated
	}
	if user.Role != entity.RoleSysadmin && user.Role != entity.RoleCompanyAdmin {
		return fmt.Errorf("%w: el calendario solo lo modifican SYSADMIN o COMPANY_ADMIN", domain.ErrForbidden)
	}
	return nil
}

func roleIn(r entity.Role, set []entity.Role) bool {
	for _, s := range set {
		if r == s {
			return true
		}
	}
	return false
}
