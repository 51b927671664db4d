package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/plannerx/plannerx-api/internal/domain/entity"
	"github.com/plannerx/plannerx-api/internal/domain/repository"
)

var _ repository.CalendarRepository = (*CalendarRepo)(nil)

// CalendarRepo implementación del puerto CalendarRepository sobre PostgreSQL.
// Pensado para usarse atado a la transacción del import (borrar + reinsertar).
type CalendarRepo struct {
	q Querier
}

// NewCalendarRepository construye el adaptador de persistencia del calendario.
func NewCalendarRepository(q Querier) *CalendarRepo {
	return &CalendarRepo{q: q}
}

var calendarColumns = []string{
	"company_id", "date_id",
	"fiscal_year", "fiscal_quarter", "fiscal_month", "fiscal_week", "fiscal_yr_wk",
	"fiscal_day_of_week", "fiscal_day_of_month",
	"iso_year", "iso_quarter", "iso_week", "iso_month",
	"iso_day_of_week", "iso_day_of_month", "day_name",
}

// DeleteByCompany borra todas las filas de calendario de una empresa.
func (r *CalendarRepo) DeleteByCompany(ctx context.Context, companyID string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM calendar_days WHERE company_id = $1`, companyID)
	if err != nil {
		return fmt.Errorf("delete calendar: %w", err)
	}
	return nil
}

// BulkInsert inserta las filas en bloque vía COPY.
func (r *CalendarRepo) BulkInsert(ctx context.Context, rows []*entity.CalendarDay) error {
	src := pgx.CopyFromSlice(len(rows), func(i int) ([]any, error) {
		d := rows[i]
		return []any{
			d.CompanyID, d.DateID,
			d.FiscalYear, d.FiscalQuarter, d.FiscalMonth, d.FiscalWeek, d.FiscalYrWk,
			d.FiscalDow, d.FiscalDom,
			d.ISOYear, d.ISOQuarter, d.ISOWeek, d.ISOMonth,
			d.ISODow, d.ISODom, d.DayName,
		}, nil
	})
	n, err := r.q.CopyFrom(ctx, pgx.Identifier{"calendar_days"}, calendarColumns, src)
	if err != nil {
		return fmt.Errorf("copy calendar: %w", err)
	}
	if int(n) != len(rows) {
		return fmt.Errorf("copy calendar: se insertaron %d de %d filas", n, len(rows))
	}
	return nil
}

// ListByCompany devuelve el calendario completo de una empresa ordenado por fecha.
func (r *CalendarRepo) ListByCompany(ctx context.Context, companyID string) ([]*entity.CalendarDay, error) {
	query := `
		SELECT company_id, date_id,
			fiscal_year, fiscal_quarter, fiscal_month, fiscal_week, fiscal_yr_wk,
			fiscal_day_of_week, fiscal_day_of_month,
			iso_year, iso_quarter, iso_week, iso_month,
			iso_day_of_week, iso_day_of_month, day_name
		FROM calendar_days WHERE company_id = $1 ORDER BY date_id`
	rows, err := r.q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list calendar: %w", err)
	}
	defer rows.Close()

	var list []*entity.CalendarDay
	for rows.Next() {
		var d entity.CalendarDay
		if err := rows.Scan(
			&d.CompanyID, &d.DateID,
			&d.FiscalYear, &d.FiscalQuarter, &d.FiscalMonth, &d.FiscalWeek, &d.FiscalYrWk,
			&d.FiscalDow, &d.FiscalDom,
			&d.ISOYear, &d.ISOQuarter, &d.ISOWeek, &d.ISOMonth,
			&d.ISODow, &d.ISODom, &d.DayName,
		); err != nil {
			return nil, fmt.Errorf("scan calendar day: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}
