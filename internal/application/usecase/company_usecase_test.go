package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plannerx/plannerx-api/internal/application/dto"
	"github.com/plannerx/plannerx-api/internal/application/usecase"
	"github.com/plannerx/plannerx-api/internal/domain"
	"github.com/plannerx/plannerx-api/internal/domain/entity"
)

func newCompanyFixture() (*usecase.CompanyUseCase, *memCompanyRepo, *memSheetRepo) {
	companies := newMemCompanyRepo()
	sheets := newMemSheetRepo()
	tx := &fakeTxRunner{companies: companies, sheets: sheets}
	return usecase.NewCompanyUseCase(companies, tx), companies, sheets
}

func seedCompany(t *testing.T, repo *memCompanyRepo, id string, active bool) *entity.Company {
	t.Helper()
	c := &entity.Company{
		ID:          id,
		CompanyCode: "ACME",
		CompanyName: "Acme Corp",
		Domain:      "acme.com",
		IsActive:    active,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	require.NoError(t, repo.Create(context.Background(), c))
	return c
}

// ──────────────────────────────────────────────────────────────────────────────
// Crear empresa
// ──────────────────────────────────────────────────────────────────────────────

// La empresa nace inactiva aunque nadie lo pida: la activa el calendario.
func TestCompanyCreate_NaceInactiva(t *testing.T) {
	uc, _, _ := newCompanyFixture()

	out, err := uc.Create(context.Background(), globalSysadmin(), dto.CreateCompanyRequest{
		CompanyCode: "ACME",
		CompanyName: "Acme Corp",
		Domain:      "Acme.COM",
	})
	require.NoError(t, err)
	assert.False(t, out.IsActive, "una empresa recién creada debe nacer inactiva")
	assert.Nil(t, out.CalendarSheetID)
	assert.Equal(t, "acme.com", out.Domain, "el dominio debe normalizarse a minúsculas")
}

// Crear empresa es operación global: un SYSADMIN tunelizado queda denegado.
func TestCompanyCreate_SysadminTunelizadoDenegado(t *testing.T) {
	uc, _, _ := newCompanyFixture()

	_, err := uc.Create(context.Background(), tunneledSysadmin("c-1"), dto.CreateCompanyRequest{
		CompanyCode: "ACME", CompanyName: "Acme",
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestCompanyCreate_CompanyAdminDenegado(t *testing.T) {
	uc, _, _ := newCompanyFixture()

	_, err := uc.Create(context.Background(), companyAdmin("c-1"), dto.CreateCompanyRequest{
		CompanyCode: "ACME", CompanyName: "Acme",
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestCompanyCreate_DominioDuplicado(t *testing.T) {
	uc, companies, _ := newCompanyFixture()
	seedCompany(t, companies, "c-1", true)

	_, err := uc.Create(context.Background(), globalSysadmin(), dto.CreateCompanyRequest{
		CompanyCode: "OTRA", CompanyName: "Otra", Domain: "acme.com",
	})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

// ──────────────────────────────────────────────────────────────────────────────
// Puerta de activación
// ──────────────────────────────────────────────────────────────────────────────

// isActive=true sin hoja calendario debe rechazarse.
func TestCompanyUpdate_ActivarSinCalendarioFalla(t *testing.T) {
	uc, companies, _ := newCompanyFixture()
	seedCompany(t, companies, "c-1", false)

	on := true
	_, err := uc.Update(context.Background(), globalSysadmin(), "c-1", dto.UpdateCompanyRequest{IsActive: &on})
	assert.ErrorIs(t, err, domain.ErrInvalidActivation)

	got, _ := companies.GetByID(context.Background(), "c-1")
	assert.False(t, got.IsActive, "la empresa no debe quedar activa tras el rechazo")
}

// calendarSheetId e isActive en la misma petición: la puerta se evalúa sobre
// el estado resultante, así que debe pasar.
func TestCompanyUpdate_ActivarConHojaEnLaMismaPeticion(t *testing.T) {
	uc, companies, sheets := newCompanyFixture()
	seedCompany(t, companies, "c-1", false)
	require.NoError(t, sheets.Create(context.Background(), &entity.Sheet{
		ID: "s-cal", CompanyID: "c-1", SheetKey: "calendar", SheetName: "Calendar", IsActive: true,
	}))

	on := true
	sheetID := "s-cal"
	out, err := uc.Update(context.Background(), globalSysadmin(), "c-1", dto.UpdateCompanyRequest{
		IsActive:        &on,
		CalendarSheetID: &sheetID,
	})
	require.NoError(t, err)
	assert.True(t, out.IsActive)
	require.NotNil(t, out.CalendarSheetID)
	assert.Equal(t, "s-cal", *out.CalendarSheetID)
}

// Un calendarSheetId que no pertenece a la empresa es referencia inválida.
func TestCompanyUpdate_HojaInexistenteRechazada(t *testing.T) {
	uc, companies, _ := newCompanyFixture()
	seedCompany(t, companies, "c-1", false)

	sheetID := "s-fantasma"
	_, err := uc.Update(context.Background(), globalSysadmin(), "c-1", dto.UpdateCompanyRequest{CalendarSheetID: &sheetID})
	assert.ErrorIs(t, err, domain.ErrInvalidReference)
}

// Desactivar nunca exige calendario.
func TestCompanyUpdate_DesactivarSiemprePermitido(t *testing.T) {
	uc, companies, _ := newCompanyFixture()
	c := seedCompany(t, companies, "c-1", true)
	c.CalendarSheetID = nil
	require.NoError(t, companies.Update(context.Background(), c))

	off := false
	out, err := uc.Update(context.Background(), globalSysadmin(), "c-1", dto.UpdateCompanyRequest{IsActive: &off})
	require.NoError(t, err)
	assert.False(t, out.IsActive)
}

// companyCode es inmutable: el PATCH no lo expone y el valor persiste.
func TestCompanyUpdate_CompanyCodeInmutable(t *testing.T) {
	uc, companies, _ := newCompanyFixture()
	seedCompany(t, companies, "c-1", false)

	name := "Acme Renombrada"
	out, err := uc.Update(context.Background(), globalSysadmin(), "c-1", dto.UpdateCompanyRequest{CompanyName: &name})
	require.NoError(t, err)
	assert.Equal(t, "ACME", out.CompanyCode)
	assert.Equal(t, "Acme Renombrada", out.CompanyName)
}

// ──────────────────────────────────────────────────────────────────────────────
// Alcance
// ──────────────────────────────────────────────────────────────────────────────

func TestCompanyGet_AdminFueraDeSuEmpresaDenegado(t *testing.T) {
	uc, companies, _ := newCompanyFixture()
	seedCompany(t, companies, "c-1", true)

	_, err := uc.Get(context.Background(), companyAdmin("c-otra"), "c-1")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestCompanyGet_AdminDeLaEmpresaPermitido(t *testing.T) {
	uc, companies, _ := newCompanyFixture()
	seedCompany(t, companies, "c-1", true)

	out, err := uc.Get(context.Background(), companyAdmin("c-1"), "c-1")
	require.NoError(t, err)
	assert.Equal(t, "c-1", out.CompanyID)
}

func TestCompanyList_SoloSysadminGlobal(t *testing.T) {
	uc, companies, _ := newCompanyFixture()
	seedCompany(t, companies, "c-1", true)

	_, err := uc.List(context.Background(), tunneledSysadmin("c-1"), 20, 0)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	list, err := uc.List(context.Background(), globalSysadmin(), 20, 0)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestCompanyGet_SinUsuarioNoAutenticado(t *testing.T) {
	uc, _, _ := newCompanyFixture()

	_, err := uc.Get(context.Background(), nil, "c-1")
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
}

// ──────────────────────────────────────────────────────────────────────────────
// Adjuntar hoja calendario
// ──────────────────────────────────────────────────────────────────────────────

func TestAttachCalendarSheet_AsignaLaHoja(t *testing.T) {
	uc, companies, sheets := newCompanyFixture()
	seedCompany(t, companies, "c-1", false)
	require.NoError(t, sheets.Create(context.Background(), &entity.Sheet{
		ID: "s-cal", CompanyID: "c-1", SheetKey: "calendar", SheetName: "Calendar",
	}))

	out, err := uc.AttachCalendarSheet(context.Background(), companyAdmin("c-1"), "c-1", "s-cal")
	require.NoError(t, err)
	require.NotNil(t, out.CalendarSheetID)
	assert.Equal(t, "s-cal", *out.CalendarSheetID)
}

// KAM no pasa la puerta de rol de Admins.
func TestAttachCalendarSheet_KamDenegado(t *testing.T) {
	uc, companies, _ := newCompanyFixture()
	seedCompany(t, companies, "c-1", true)

	_, err := uc.AttachCalendarSheet(context.Background(), kamUser("c-1"), "c-1", "s-cal")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestAttachCalendarSheet_HojaInexistente(t *testing.T) {
	uc, companies, _ := newCompanyFixture()
	seedCompany(t, companies, "c-1", true)

	_, err := uc.AttachCalendarSheet(context.Background(), globalSysadmin(), "c-1", "s-nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
