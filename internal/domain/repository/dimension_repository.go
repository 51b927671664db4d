package repository

import (
	"context"

	"github.com/plannerx/plannerx-api/internal/domain/entity"
)

// DimensionRepository define el puerto de persistencia para Dimension.
type DimensionRepository interface {
	Create(ctx context.Context, dim *entity.Dimension) error
	GetByID(ctx context.Context, companyID, dimensionID string) (*entity.Dimension, error)
	GetByKey(ctx context.Context, companyID, dimensionKey string) (*entity.Dimension, error)
	Update(ctx context.Context, dim *entity.Dimension) error
	ListByCompany(ctx context.Context, companyID string) ([]*entity.Dimension, error)
}

// DimensionValueRepository define el puerto de persistencia para DimensionValue.
// La clave natural es (companyId, dimensionId, valueKey).
type DimensionValueRepository interface {
	Create(ctx context.Context, val *entity.DimensionValue) error
	GetByID(ctx context.Context, companyID, dimensionID, valueID string) (*entity.DimensionValue, error)
	GetByKey(ctx context.Context, companyID, dimensionID, valueKey string) (*entity.DimensionValue, error)
	Update(ctx context.Context, val *entity.DimensionValue) error
	ListByDimension(ctx context.Context, companyID, dimensionID string) ([]*entity.DimensionValue, error)
}
