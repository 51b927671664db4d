package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/plannerx/plannerx-api/internal/application/importer"
	"github.com/plannerx/plannerx-api/internal/application/usecase"
	"github.com/plannerx/plannerx-api/internal/domain/repository"
)

// Asegura que TxRunner implementa los runners de usecase e importer.
var _ usecase.TxRunner = (*TxRunner)(nil)
var _ importer.CalendarTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunCompany inicia una transacción con repos de empresas y hojas atados a la tx
// (actualización de empresa: validar calendar_sheet_id y escribir en un solo paso).
func (r *TxRunner) RunCompany(ctx context.Context, fn func(
	companies repository.CompanyRepository,
	sheets repository.SheetRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewCompanyRepository(tx), NewSheetRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunSheet inicia una transacción con repos de hojas y empresas atados a la tx
// (crear la hoja calendario asigna calendar_sheet_id en la misma transacción).
func (r *TxRunner) RunSheet(ctx context.Context, fn func(
	sheets repository.SheetRepository,
	companies repository.CompanyRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewSheetRepository(tx), NewCompanyRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunCalendar inicia una transacción para el import de calendario: borrar,
// reinsertar, asegurar la hoja y activar la empresa, todo o nada.
func (r *TxRunner) RunCalendar(ctx context.Context, fn func(
	calendar repository.CalendarRepository,
	sheets repository.SheetRepository,
	companies repository.CompanyRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewCalendarRepository(tx), NewSheetRepository(tx), NewCompanyRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
