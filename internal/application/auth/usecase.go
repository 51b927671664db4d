package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/plannerx/plannerx-api/internal/application/dto"
	"github.com/plannerx/plannerx-api/internal/domain"
	"github.com/plannerx/plannerx-api/internal/domain/entity"
	"github.com/plannerx/plannerx-api/internal/domain/repository"
	"github.com/plannerx/plannerx-api/pkg/jwt"
	"github.com/plannerx/plannerx-api/pkg/password"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: login, perfil y cambio de contraseña.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Login verifica email/password contra el registro vivo y emite el JWT.
// Usuario inexistente, inactivo o contraseña incorrecta producen el mismo
// error: no se filtra cuál de los tres falló.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))

	user, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.IsActive {
		return nil, domain.ErrUnauthenticated
	}
	if !password.Verify(in.Password, user.PasswordHash) {
		return nil, domain.ErrUnauthenticated
	}

	companyID := ""
	if user.CompanyID != nil {
		companyID = *user.CompanyID
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.Email, string(user.Role), companyID, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, fmt.Errorf("emitir token: %w", err)
	}

	return &dto.LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        *ToUserResponse(user),
	}, nil
}

// ChangePassword actualiza el hash del usuario autenticado y limpia el flag
// forcePasswordChange. Exige el mínimo de longitud.
func (uc *AuthUseCase) ChangePassword(ctx context.Context, user *entity.User, newPassword string) error {
	if len(newPassword) < password.MinLength {
		return fmt.Errorf("%w: la contraseña debe tener al menos %d caracteres", domain.ErrInvalidInput, password.MinLength)
	}
	hash, err := password.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("hashear contraseña: %w", err)
	}
	user.PasswordHash = hash
	user.ForcePasswordChange = false
	user.UpdatedAt = time.Now()
	return uc.userRepo.Update(ctx, user)
}

// ToUserResponse proyecta la entidad al resumen público (sin hash).
func ToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	perms := u.Permissions
	if perms == nil {
		perms = map[string]any{}
	}
	return &dto.UserResponse{
		ID:                  u.ID,
		Email:               u.Email,
		DisplayName:         u.DisplayName,
		Role:                string(u.Role),
		CompanyID:           u.CompanyID,
		ForcePasswordChange: u.ForcePasswordChange,
		IsActive:            u.IsActive,
		Permissions:         perms,
	}
}
