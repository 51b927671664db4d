package postgres

import (
	"context"
	"fmt"

	"github.com/plannerx/plannerx-api/internal/domain"
	"github.com/plannerx/plannerx-api/internal/domain/entity"
	"github.com/plannerx/plannerx-api/internal/domain/repository"
)

var _ repository.DimensionValueRepository = (*DimensionValueRepo)(nil)

// DimensionValueRepo implementación del puerto DimensionValueRepository sobre
// PostgreSQL. La clave natural es (company_id, dimension_id, value_key).
type DimensionValueRepo struct {
	q Querier
}

// NewDimensionValueRepository construye el adaptador de persistencia para valores.
func NewDimensionValueRepository(q Querier) *DimensionValueRepo {
	return &DimensionValueRepo{q: q}
}

const dimensionValueColumns = `id, company_id, dimension_id, value_key, value_name,
		parent_value_id, sort_order, attributes, is_active, created_at, updated_at`

// Create persiste un nuevo valor de dimensión.
func (r *DimensionValueRepo) Create(ctx context.Context, val *entity.DimensionValue) error {
	query := `
		INSERT INTO dimension_values (` + dimensionValueColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(ctx, query,
		val.ID, val.CompanyID, val.DimensionID, val.ValueKey, val.ValueName,
		val.ParentValueID, val.SortOrder, val.Attributes, val.IsActive,
		val.CreatedAt, val.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("insert dimension value: %w", err)
	}
	return nil
}

// GetByID obtiene un valor por ID dentro de (empresa, dimensión).
func (r *DimensionValueRepo) GetByID(ctx context.Context, companyID, dimensionID, valueID string) (*entity.DimensionValue, error) {
	query := `
		SELECT ` + dimensionValueColumns + `
		FROM dimension_values WHERE company_id = $1 AND dimension_id = $2 AND id = $3`
	return r.scanOne(ctx, query, companyID, dimensionID, valueID)
}

// GetByKey obtiene un valor por su clave dentro de (empresa, dimensión).
func (r *DimensionValueRepo) GetByKey(ctx context.Context, companyID, dimensionID, valueKey string) (*entity.DimensionValue, error) {
	query := `
		SELECT ` + dimensionValueColumns + `
		FROM dimension_values WHERE company_id = $1 AND dimension_id = $2 AND value_key = $3`
	return r.scanOne(ctx, query, companyID, dimensionID, valueKey)
}

// Update actualiza un valor. value_key no se toca: es inmutable.
func (r *DimensionValueRepo) Update(ctx context.Context, val *entity.DimensionValue) error {
	query := `
		UPDATE dimension_values
		SET value_name = $4, parent_value_id = $5, sort_order = $6, attributes = $7,
			is_active = $8, updated_at = $9
		WHERE company_id = $1 AND dimension_id = $2 AND id = $3`
	_, err := r.q.Exec(ctx, query,
		val.CompanyID, val.DimensionID, val.ID, val.ValueName,
		val.ParentValueID, val.SortOrder, val.Attributes, val.IsActive, val.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update dimension value: %w", err)
	}
	return nil
}

// ListByDimension lista los valores de una dimensión ordenados por sort_order
// (los que no lo definen van al final, luego por clave).
func (r *DimensionValueRepo) ListByDimension(ctx context.Context, companyID, dimensionID string) ([]*entity.DimensionValue, error) {
	query := `
		SELECT ` + dimensionValueColumns + `
		FROM dimension_values WHERE company_id = $1 AND dimension_id = $2
		ORDER BY sort_order NULLS LAST, value_key`
	rows, err := r.q.Query(ctx, query, companyID, dimensionID)
	if err != nil {
		return nil, fmt.Errorf("list dimension values: %w", err)
	}
	defer rows.Close()

	var list []*entity.DimensionValue
	for rows.Next() {
		var v entity.DimensionValue
		if err := rows.Scan(
			&v.ID, &v.CompanyID, &v.DimensionID, &v.ValueKey, &v.ValueName,
			&v.ParentValueID, &v.SortOrder, &v.Attributes, &v.IsActive,
			&v.CreatedAt, &v.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan dimension value: %w", err)
		}
		list = append(list, &v)
	}
	return list, rows.Err()
}

func (r *DimensionValueRepo) scanOne(ctx context.Context, query string, args ...any) (*entity.DimensionValue, error) {
	var v entity.DimensionValue
	err := r.q.QueryRow(ctx, query, args...).Scan(
		&v.ID, &v.CompanyID, &v.DimensionID, &v.ValueKey, &v.ValueName,
		&v.ParentValueID, &v.SortOrder, &v.Attributes, &v.IsActive,
		&v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get dimension value: %w", err)
	}
	return &v, nil
}
