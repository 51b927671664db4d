package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/plannerx/plannerx-api/internal/application/auth"
	"github.com/plannerx/plannerx-api/internal/application/dto"
	"github.com/plannerx/plannerx-api/internal/domain"
	"github.com/plannerx/plannerx-api/internal/domain/authz"
	"github.com/plannerx/plannerx-api/internal/domain/entity"
	"github.com/plannerx/plannerx-api/internal/domain/repository"
	"github.com/plannerx/plannerx-api/pkg/password"
)

// UserUseCase aplica reglas de negocio para usuarios de una empresa.
type UserUseCase struct {
	users     repository.UserRepository
	companies repository.CompanyRepository
}

// NewUserUseCase construye el caso de uso con los puertos de persistencia.
func NewUserUseCase(users repository.UserRepository, companies repository.CompanyRepository) *UserUseCase {
	return &UserUseCase{users: users, companies: companies}
}

// ListByCompany lista los usuarios de una empresa, más recientes primero.
func (uc *UserUseCase) ListByCompany(ctx context.Context, actor *entity.User, companyID string, limit, offset int) ([]dto.UserResponse, error) {
	if err := authz.Decide(actor, &companyID, authz.Admins, false); err != nil {
		return nil, err
	}
	list, err := uc.users.ListByCompany(ctx, companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *auth.ToUserResponse(u))
	}
	return items, nil
}

// Create da de alta un usuario en la empresa. El email se deriva como
// lower(username) + "@" + dominio de la empresa. La empresa debe existir,
// estar activa y tener dominio. Aquí nunca se crean SYSADMIN.
func (uc *UserUseCase) Create(ctx context.Context, actor *entity.User, companyID string, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if err := authz.Decide(actor, &companyID, authz.Admins, false); err != nil {
		return nil, err
	}

	company, err := uc.companies.GetByID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	if !company.IsActive {
		return nil, domain.ErrCompanyInactive
	}
	if strings.TrimSpace(company.Domain) == "" {
		return nil, fmt.Errorf("%w: la empresa no tiene dominio configurado", domain.ErrInvalidInput)
	}

	username := strings.ToLower(strings.TrimSpace(in.Username))
	if username == "" {
		return nil, fmt.Errorf("%w: username es requerido", domain.ErrInvalidInput)
	}
	role := entity.Role(strings.ToUpper(strings.TrimSpace(in.Role)))
	if !role.IsCompanyRole() {
		return nil, fmt.Errorf("%w: rol inválido, debe ser COMPANY_ADMIN, CEO, CFO o KAM", domain.ErrInvalidInput)
	}
	if in.TempPassword == "" {
		return nil, fmt.Errorf("%w: tempPassword es requerido", domain.ErrInvalidInput)
	}

	email := username + "@" + company.Domain

	existing, err := uc.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	hash, err := password.Hash(in.TempPassword)
	if err != nil {
		return nil, fmt.Errorf("hashear contraseña: %w", err)
	}

	perms := in.Permissions
	if perms == nil {
		perms = map[string]any{}
	}
	now := time.Now()
	user := &entity.User{
		ID:                  uuid.New().String(),
		Email:               email,
		DisplayName:         in.DisplayName,
		Role:                role,
		CompanyID:           &company.ID,
		PasswordHash:        hash,
		Permissions:         perms,
		ForcePasswordChange: in.ForcePasswordChange,
		IsActive:            true,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	if err := uc.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return auth.ToUserResponse(user), nil
}
