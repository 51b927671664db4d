package postgres

import (
	"context"
	"fmt"

	"github.com/plannerx/plannerx-api/internal/domain"
	"github.com/plannerx/plannerx-api/internal/domain/entity"
	"github.com/plannerx/plannerx-api/internal/domain/repository"
)

var _ repository.SheetRepository = (*SheetRepo)(nil)

// SheetRepo implementación del puerto SheetRepository sobre PostgreSQL
// (usable con pool o tx). Todas las consultas filtran por company_id.
type SheetRepo struct {
	q Querier
}

// NewSheetRepository construye el adaptador de persistencia para hojas.
func NewSheetRepository(q Querier) *SheetRepo {
	return &SheetRepo{q: q}
}

const sheetColumns = `id, company_id, sheet_key, sheet_name, description, model_json,
		is_active, created_at, updated_at`

// Create persiste una nueva hoja.
func (r *SheetRepo) Create(ctx context.Context, sheet *entity.Sheet) error {
	query := `
		INSERT INTO sheets (` + sheetColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		sheet.ID, sheet.CompanyID, sheet.SheetKey, sheet.SheetName,
		sheet.Description, sheet.ModelJSON, sheet.IsActive,
		sheet.CreatedAt, sheet.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("insert sheet: %w", err)
	}
	return nil
}

// GetByID obtiene una hoja por ID dentro de una empresa.
func (r *SheetRepo) GetByID(ctx context.Context, companyID, sheetID string) (*entity.Sheet, error) {
	query := `SELECT ` + sheetColumns + ` FROM sheets WHERE company_id = $1 AND id = $2`
	return r.scanOne(ctx, query, companyID, sheetID)
}

// GetByKey obtiene una hoja por su clave dentro de una empresa.
func (r *SheetRepo) GetByKey(ctx context.Context, companyID, sheetKey string) (*entity.Sheet, error) {
	query := `SELECT ` + sheetColumns + ` FROM sheets WHERE company_id = $1 AND sheet_key = $2`
	return r.scanOne(ctx, query, companyID, sheetKey)
}

// Update actualiza una hoja. sheet_key no se toca: es inmutable.
func (r *SheetRepo) Update(ctx context.Context, sheet *entity.Sheet) error {
	query := `
		UPDATE sheets
		SET sheet_name = $3, description = $4, model_json = $5, is_active = $6, updated_at = $7
		WHERE company_id = $1 AND id = $2`
	_, err := r.q.Exec(ctx, query,
		sheet.CompanyID, sheet.ID, sheet.SheetName,
		sheet.Description, sheet.ModelJSON, sheet.IsActive, sheet.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update sheet: %w", err)
	}
	return nil
}

// ListByCompany lista las hojas de una empresa, más reciente primero.
func (r *SheetRepo) ListByCompany(ctx context.Context, companyID string) ([]*entity.Sheet, error) {
	query := `SELECT ` + sheetColumns + ` FROM sheets WHERE company_id = $1 ORDER BY created_at DESC`
	rows, err := r.q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list sheets: %w", err)
	}
	defer rows.Close()

	var list []*entity.Sheet
	for rows.Next() {
		var s entity.Sheet
		if err := rows.Scan(
			&s.ID, &s.CompanyID, &s.SheetKey, &s.SheetName,
			&s.Description, &s.ModelJSON, &s.IsActive,
			&s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan sheet: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

func (r *SheetRepo) scanOne(ctx context.Context, query string, args ...any) (*entity.Sheet, error) {
	var s entity.Sheet
	err := r.q.QueryRow(ctx, query, args...).Scan(
		&s.ID, &s.CompanyID, &s.SheetKey, &s.SheetName,
		&s.Description, &s.ModelJSON, &s.IsActive,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sheet: %w", err)
	}
	return &s, nil
}
