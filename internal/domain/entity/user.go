package entity

import "time"

// Role es el conjunto cerrado de roles del sistema.
type Role string

// Roles válidos para User.
const (
	RoleSysadmin     Role = "SYSADMIN"
	RoleCompanyAdmin Role = "COMPANY_ADMIN"
	RoleCEO          Role = "CEO"
	RoleCFO          Role = "CFO"
	RoleKAM          Role = "KAM"
)

// CompanyRoles roles que siempre pertenecen a una empresa (companyId no nulo).
// SYSADMIN queda fuera: puede operar global o tunelizado.
var CompanyRoles = []Role{RoleCompanyAdmin, RoleCEO, RoleCFO, RoleKAM}

// IsValid informa si el rol pertenece al conjunto cerrado.
func (r Role) IsValid() bool {
	switch r {
	case RoleSysadmin, RoleCompanyAdmin, RoleCEO, RoleCFO, RoleKAM:
		return true
	}
	return false
}

// IsCompanyRole informa si el rol exige empresa asignada.
func (r Role) IsCompanyRole() bool {
	for _, cr := range CompanyRoles {
		if r == cr {
			return true
		}
	}
	return false
}

// User representa un usuario del sistema. CompanyID es nil solo para SYSADMIN
// en modo global; un SYSADMIN con CompanyID asignado opera "tunelizado" dentro
// de esa empresa con el alcance de un COMPANY_ADMIN.
type User struct {
	ID                  string
	Email               string
	DisplayName         string
	Role                Role
	CompanyID           *string
	PasswordHash        string // bcrypt hash, nunca plano en dominio después de persistir
	Permissions         map[string]any
	ForcePasswordChange bool
	IsActive            bool
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// IsGlobal informa si el usuario opera sin contexto de empresa (SYSADMIN global).
func (u *User) IsGlobal() bool {
	return u.Role == RoleSysadmin && u.CompanyID == nil
}
