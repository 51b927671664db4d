package postgres

import (
	"context"
	"fmt"

	"github.com/plannerx/plannerx-api/internal/domain"
	"github.com/plannerx/plannerx-api/internal/domain/entity"
	"github.com/plannerx/plannerx-api/internal/domain/repository"
)

var _ repository.DimensionRepository = (*DimensionRepo)(nil)

// DimensionRepo implementación del puerto DimensionRepository sobre PostgreSQL.
type DimensionRepo struct {
	q Querier
}

// NewDimensionRepository construye el adaptador de persistencia para dimensiones.
func NewDimensionRepository(q Querier) *DimensionRepo {
	return &DimensionRepo{q: q}
}

const dimensionColumns = `id, company_id, dimension_key, dimension_name, description, data_type,
		is_active, created_at, updated_at`

// Create persiste una nueva dimensión.
func (r *DimensionRepo) Create(ctx context.Context, dim *entity.Dimension) error {
	query := `
		INSERT INTO dimensions (` + dimensionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		dim.ID, dim.CompanyID, dim.DimensionKey, dim.DimensionName,
		dim.Description, dim.DataType, dim.IsActive,
		dim.CreatedAt, dim.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("insert dimension: %w", err)
	}
	return nil
}

// GetByID obtiene una dimensión por ID dentro de una empresa.
func (r *DimensionRepo) GetByID(ctx context.Context, companyID, dimensionID string) (*entity.Dimension, error) {
	query := `SELECT ` + dimensionColumns + ` FROM dimensions WHERE company_id = $1 AND id = $2`
	return r.scanOne(ctx, query, companyID, dimensionID)
}

// GetByKey obtiene una dimensión por su clave dentro de una empresa.
func (r *DimensionRepo) GetByKey(ctx context.Context, companyID, dimensionKey string) (*entity.Dimension, error) {
	query := `SELECT ` + dimensionColumns + ` FROM dimensions WHERE company_id = $1 AND dimension_key = $2`
	return r.scanOne(ctx, query, companyID, dimensionKey)
}

// Update actualiza una dimensión. dimension_key y data_type no se tocan: son inmutables.
func (r *DimensionRepo) Update(ctx context.Context, dim *entity.Dimension) error {
	query := `
		UPDATE dimensions
		SET dimension_name = $3, description = $4, is_active = $5, updated_at = $6
		WHERE company_id = $1 AND id = $2`
	_, err := r.q.Exec(ctx, query,
		dim.CompanyID, dim.ID, dim.DimensionName, dim.Description, dim.IsActive, dim.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update dimension: %w", err)
	}
	return nil
}

// ListByCompany lista las dimensiones de una empresa, más reciente primero.
func (r *DimensionRepo) ListByCompany(ctx context.Context, companyID string) ([]*entity.Dimension, error) {
	query := `SELECT ` + dimensionColumns + ` FROM dimensions WHERE company_id = $1 ORDER BY created_at DESC`
	rows, err := r.q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list dimensions: %w", err)
	}
	defer rows.Close()

	var list []*entity.Dimension
	for rows.Next() {
		var d entity.Dimension
		if err := rows.Scan(
			&d.ID, &d.CompanyID, &d.DimensionKey, &d.DimensionName,
			&d.Description, &d.DataType, &d.IsActive,
			&d.CreatedAt, &d.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan dimension: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

func (r *DimensionRepo) scanOne(ctx context.Context, query string, args ...any) (*entity.Dimension, error) {
	var d entity.Dimension
	err := r.q.QueryRow(ctx, query, args...).Scan(
		&d.ID, &d.CompanyID, &d.DimensionKey, &d.DimensionName,
		&d.Description, &d.DataType, &d.IsActive,
		&d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get dimension: %w", err)
	}
	return &d, nil
}
