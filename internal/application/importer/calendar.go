package importer

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/plannerx/plannerx-api/internal/application/dto"
	"github.com/plannerx/plannerx-api/internal/domain"
	"github.com/plannerx/plannerx-api/internal/domain/authz"
	"github.com/plannerx/plannerx-api/internal/domain/entity"
	"github.com/plannerx/plannerx-api/internal/domain/repository"
)

// CalendarTxRunner transacción del import de calendario: calendario, hojas y
// empresa atados a la misma tx. Lo implementa postgres.TxRunner.
type CalendarTxRunner interface {
	RunCalendar(ctx context.Context, fn func(
		calendar repository.CalendarRepository,
		sheets repository.SheetRepository,
		companies repository.CompanyRepository,
	) error) error
}

// CalendarImporter reemplaza el calendario completo de una empresa.
// Política atómica: cualquier fila con coerción fallida revierte todo; nunca
// queda estado parcial visible.
type CalendarImporter struct {
	tx CalendarTxRunner
}

// Policy la política de fallo de este punto de entrada.
func (im *CalendarImporter) Policy() Policy { return PolicyAtomic }

// NewCalendarImporter construye el importador con el runner transaccional.
func NewCalendarImporter(tx CalendarTxRunner) *CalendarImporter {
	return &CalendarImporter{tx: tx}
}

// Import ejecuta el reemplazo en bloque: asegura la hoja calendario, borra las
// filas previas, inserta las nuevas y deja la empresa activa con su
// calendarSheetId asignado. Todo dentro de una única transacción.
func (im *CalendarImporter) Import(ctx context.Context, actor *entity.User, companyID string, req dto.CalendarImportRequest) (*dto.CalendarImportResponse, error) {
	if err := authz.Decide(actor, &companyID, authz.Admins, false); err != nil {
		return nil, err
	}
	if err := authz.CanModifyCalendar(actor); err != nil {
		return nil, err
	}
	if len(req.Rows) == 0 {
		return nil, fmt.Errorf("%w: el import no contiene filas de calendario", domain.ErrInvalidInput)
	}

	// Coerción completa antes de tocar la base: una fila mala aborta el import
	// sin haber borrado nada.
	rows := make([]*entity.CalendarDay, 0, len(req.Rows))
	for i, r := range req.Rows {
		rownum := i + 2 // el productor numera desde la fila 2 (la 1 es cabecera)
		day, err := coerceCalendarRow(companyID, r, rownum)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
		}
		rows = append(rows, day)
	}

	var out dto.CalendarImportResponse
	err := im.tx.RunCalendar(ctx, func(calendar repository.CalendarRepository, sheets repository.SheetRepository, companies repository.CompanyRepository) error {
		company, err := companies.GetByID(ctx, companyID)
		if err != nil {
			return err
		}
		if company == nil {
			return domain.ErrNotFound
		}

		sheet, err := sheets.GetByKey(ctx, companyID, entity.SheetKeyCalendar)
		if err != nil {
			return err
		}
		now := time.Now()
		if sheet == nil {
			desc := "Calendario fiscal/ISO de la empresa"
			sheet = &entity.Sheet{
				ID:          uuid.New().String(),
				CompanyID:   companyID,
				SheetKey:    entity.SheetKeyCalendar,
				SheetName:   "Calendar",
				Description: &desc,
				ModelJSON:   map[string]any{"type": "calendar", "source": "manual_upload"},
				IsActive:    true,
				CreatedAt:   now,
				UpdatedAt:   now,
			}
			if err := sheets.Create(ctx, sheet); err != nil {
				return err
			}
		} else {
			sheet.IsActive = true
			sheet.UpdatedAt = now
			if err := sheets.Update(ctx, sheet); err != nil {
				return err
			}
		}

		if err := calendar.DeleteByCompany(ctx, companyID); err != nil {
			return err
		}
		if err := calendar.BulkInsert(ctx, rows); err != nil {
			return err
		}

		// El import de calendario es el camino de activación de la empresa.
		company.CalendarSheetID = &sheet.ID
		company.IsActive = true
		company.UpdatedAt = now
		if err := companies.Update(ctx, company); err != nil {
			return err
		}

		out = dto.CalendarImportResponse{OK: true, CalendarSheetID: sheet.ID, Inserted: len(rows)}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func coerceCalendarRow(companyID string, r dto.CalendarRow, rownum int) (*entity.CalendarDay, error) {
	dateID, err := asDate(r.DateID, rownum)
	if err != nil {
		return nil, err
	}

	day := &entity.CalendarDay{CompanyID: companyID, DateID: dateID}
	fields := []struct {
		dst   *int
		src   any
		field string
	}{
		{&day.FiscalYear, r.FiscalYear, "fiscalYear"},
		{&day.FiscalQuarter, r.FiscalQuarter, "fiscalQuarter"},
		{&day.FiscalMonth, r.FiscalMonth, "fiscalMonth"},
		{&day.FiscalWeek, r.FiscalWeek, "fiscalWeek"},
		{&day.FiscalYrWk, r.FiscalYrWk, "fiscalYrWk"},
		{&day.FiscalDow, r.FiscalDow, "fiscalDayOfWeek"},
		{&day.FiscalDom, r.FiscalDom, "fiscalDayOfMonth"},
		{&day.ISOYear, r.ISOYear, "isoYear"},
		{&day.ISOQuarter, r.ISOQuarter, "isoQuarter"},
		{&day.ISOWeek, r.ISOWeek, "isoWeek"},
		{&day.ISOMonth, r.ISOMonth, "isoMonth"},
		{&day.ISODow, r.ISODow, "isoDayOfWeek"},
		{&day.ISODom, r.ISODom, "isoDayOfMonth"},
	}
	for _, f := range fields {
		n, err := asInt(f.src, f.field, rownum)
		if err != nil {
			return nil, err
		}
		*f.dst = n
	}

	if name := asString(r.DayName); name != "" {
		day.DayName = &name
	}
	return day, nil
}
