package repository

import (
	"context"

	"github.com/plannerx/plannerx-api/internal/domain/entity"
)

// SheetRepository define el puerto de persistencia para Sheet. Todas las
// operaciones filtran por empresa: una hoja nunca es visible fuera de su tenant.
type SheetRepository interface {
	Create(ctx context.Context, sheet *entity.Sheet) error
	GetByID(ctx context.Context, companyID, sheetID string) (*entity.Sheet, error)
	GetByKey(ctx context.Context, companyID, sheetKey string) (*entity.Sheet, error)
	Update(ctx context.Context, sheet *entity.Sheet) error
	ListByCompany(ctx context.Context, companyID string) ([]*entity.Sheet, error)
}
