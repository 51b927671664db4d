package authz_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plannerx/plannerx-api/internal/domain"
	"github.com/plannerx/plannerx-api/internal/domain/authz"
	"github.com/plannerx/plannerx-api/internal/domain/entity"
)

func strp(s string) *string { return &s }

func userWith(role entity.Role, companyID *string) *entity.User {
	return &entity.User{
		ID:        "u-1",
		Email:     "u@acme.com",
		Role:      role,
		CompanyID: companyID,
		IsActive:  true,
	}
}

// Los roles de empresa solo acceden a su propia empresa.
func TestDecide_RolesDeEmpresa_AlcancePropio(t *testing.T) {
	for _, role := range entity.CompanyRoles {
		t.Run(string(role), func(t *testing.T) {
			u := userWith(role, strp("c-1"))

			err := authz.Decide(u, strp("c-1"), authz.AnyRole, false)
			assert.NoError(t, err, "misma empresa debe permitirse")

			err = authz.Decide(u, strp("c-2"), authz.AnyRole, false)
			assert.ErrorIs(t, err, domain.ErrForbidden, "otra empresa debe denegarse")
		})
	}
}

// SYSADMIN global: cualquier alcance permitido.
func TestDecide_SysadminGlobal_CualquierEmpresa(t *testing.T) {
	u := userWith(entity.RoleSysadmin, nil)

	assert.NoError(t, authz.Decide(u, strp("c-1"), authz.AnyRole, false))
	assert.NoError(t, authz.Decide(u, strp("c-2"), authz.Admins, false))
	assert.NoError(t, authz.Decide(u, nil, authz.AnyRole, false), "sin empresa objetivo también pasa")
}

// SYSADMIN global pasa la puerta solo-global; la puerta de alcance es
// independiente (no aplica objetivo en operaciones globales).
func TestDecide_SysadminGlobal_PuertaGlobal(t *testing.T) {
	u := userWith(entity.RoleSysadmin, nil)

	err := authz.Decide(u, nil, []entity.Role{entity.RoleSysadmin}, true)
	assert.NoError(t, err)
}

// SYSADMIN tunelizado se comporta como COMPANY_ADMIN de su empresa en la
// puerta de alcance, y queda denegado en la puerta solo-global.
func TestDecide_SysadminTunelizado(t *testing.T) {
	u := userWith(entity.RoleSysadmin, strp("c-1"))

	assert.NoError(t, authz.Decide(u, strp("c-1"), authz.Admins, false),
		"su propia empresa debe permitirse")
	assert.ErrorIs(t, authz.Decide(u, strp("c-2"), authz.Admins, false), domain.ErrForbidden,
		"otra empresa debe denegarse igual que a un COMPANY_ADMIN")
	assert.ErrorIs(t, authz.Decide(u, nil, []entity.Role{entity.RoleSysadmin}, true), domain.ErrForbidden,
		"operación solo-global debe denegarse al estar tunelizado")
}

// La puerta de rol se evalúa primero: un rol fuera del conjunto se deniega
// aunque el alcance coincida.
func TestDecide_PuertaDeRol(t *testing.T) {
	u := userWith(entity.RoleKAM, strp("c-1"))

	err := authz.Decide(u, strp("c-1"), authz.Admins, false)
	require.ErrorIs(t, err, domain.ErrForbidden)
	assert.Contains(t, err.Error(), "KAM")
}

// La puerta solo-global deniega a cualquier rol que no sea SYSADMIN, incluso
// si el conjunto de roles requeridos lo incluyera por error.
func TestDecide_PuertaGlobal_DeniegaRolesDeEmpresa(t *testing.T) {
	u := userWith(entity.RoleCompanyAdmin, strp("c-1"))

	err := authz.Decide(u, nil, authz.Admins, true)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

// Tabla completa de la puerta de alcance.
func TestDecide_TablaDeAlcance(t *testing.T) {
	cases := []struct {
		name    string
		role    entity.Role
		company *string
		target  *string
		allowed bool
	}{
		{"sysadmin global a c1", entity.RoleSysadmin, nil, strp("c-1"), true},
		{"sysadmin global a c2", entity.RoleSysadmin, nil, strp("c-2"), true},
		{"sysadmin tunelizado mismo", entity.RoleSysadmin, strp("c-1"), strp("c-1"), true},
		{"sysadmin tunelizado cruzado", entity.RoleSysadmin, strp("c-1"), strp("c-2"), false},
		{"company_admin mismo", entity.RoleCompanyAdmin, strp("c-1"), strp("c-1"), true},
		{"company_admin cruzado", entity.RoleCompanyAdmin, strp("c-1"), strp("c-2"), false},
		{"ceo mismo", entity.RoleCEO, strp("c-9"), strp("c-9"), true},
		{"cfo cruzado", entity.RoleCFO, strp("c-9"), strp("c-8"), false},
		{"kam cruzado", entity.RoleKAM, strp("c-3"), strp("c-4"), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			u := userWith(tc.role, tc.company)
			err := authz.Decide(u, tc.target, authz.AnyRole, false)
			if tc.allowed {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, domain.ErrForbidden)
			}
		})
	}
}

func TestDecide_UsuarioNil(t *testing.T) {
	err := authz.Decide(nil, strp("c-1"), authz.AnyRole, false)
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
}

func TestCanModifyCalendar(t *testing.T) {
	assert.NoError(t, authz.CanModifyCalendar(userWith(entity.RoleSysadmin, nil)))
	assert.NoError(t, authz.CanModifyCalendar(userWith(entity.RoleCompanyAdmin, strp("c-1"))))

	for _, role := range []entity.Role{entity.RoleCEO, entity.RoleCFO, entity.RoleKAM} {
		assert.ErrorIs(t, authz.CanModifyCalendar(userWith(role, strp("c-1"))), domain.ErrForbidden)
	}
}
