// seed crea el usuario SYSADMIN global inicial a partir de SEED_SYSADMIN_EMAIL
// y SEED_SYSADMIN_PASSWORD. Es idempotente: si el email ya existe no hace nada.
//
// Uso: go run ./cmd/seed
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/plannerx/plannerx-api/internal/domain/entity"
	"github.com/plannerx/plannerx-api/internal/infrastructure/postgres"
	"github.com/plannerx/plannerx-api/pkg/config"
	"github.com/plannerx/plannerx-api/pkg/password"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}
	if cfg.Seed.SysadminPassword == "" {
		fmt.Fprintln(os.Stderr, "SEED_SYSADMIN_PASSWORD es requerido")
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	users := postgres.NewUserRepository(pool)
	existing, err := users.GetByEmail(ctx, cfg.Seed.SysadminEmail)
	if err != nil {
		fmt.Fprintf(os.Stderr, "buscar sysadmin: %v\n", err)
		os.Exit(1)
	}
	if existing != nil {
		fmt.Printf("sysadmin %s ya existe, nada que hacer\n", cfg.Seed.SysadminEmail)
		return
	}

	hash, err := password.Hash(cfg.Seed.SysadminPassword)
	if err != nil {
		fmt.Fprintf(os.Stderr, "hash de contraseña: %v\n", err)
		os.Exit(1)
	}

	now := time.Now()
	sysadmin := &entity.User{
		ID:           uuid.New().String(),
		Email:        cfg.Seed.SysadminEmail,
		DisplayName:  "System Administrator",
		Role:         entity.RoleSysadmin,
		CompanyID:    nil, // global
		PasswordHash: hash,
		Permissions:  map[string]any{},
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := users.Create(ctx, sysadmin); err != nil {
		fmt.Fprintf(os.Stderr, "crear sysadmin: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("sysadmin %s creado\n", cfg.Seed.SysadminEmail)
}
