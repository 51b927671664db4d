package repository

import (
	"context"

	"github.com/plannerx/plannerx-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User.
// GetByEmail devuelve (nil, nil) si el email no existe; el filtro de usuario
// activo lo aplica quien resuelve identidad, no el repositorio.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.User, error)
}
