package repository

import (
	"context"

	"github.com/plannerx/plannerx-api/internal/domain/entity"
)

// CalendarRepository define el puerto de persistencia para el calendario.
// El import lo consume dentro de una transacción: borrar todo y reinsertar.
type CalendarRepository interface {
	DeleteByCompany(ctx context.Context, companyID string) error
	BulkInsert(ctx context.Context, rows []*entity.CalendarDay) error
	ListByCompany(ctx context.Context, companyID string) ([]*entity.CalendarDay, error)
}
