package usecase

import (
	"context"
	"strings"

	"github.com/plannerx/plannerx-api/internal/domain/repository"
)

// TxRunner ejecuta callbacks con repositorios atados a una transacción.
// Lo implementa postgres.TxRunner; la interfaz vive aquí para invertir la
// dependencia. Toda mutación multi-paso (crear hoja calendario y marcar la
// empresa, actualizar empresa con puerta de activación) pasa por aquí: o se
// aplican todos los efectos o ninguno.
type TxRunner interface {
	// RunCompany transacción sobre empresas y hojas (update con puerta de
	// activación, adjuntar hoja calendario).
	RunCompany(ctx context.Context, fn func(
		companies repository.CompanyRepository,
		sheets repository.SheetRepository,
	) error) error

	// RunSheet transacción para crear/mutar hojas con posible marcado de la
	// empresa como dueña del calendario.
	RunSheet(ctx context.Context, fn func(
		sheets repository.SheetRepository,
		companies repository.CompanyRepository,
	) error) error
}

// normalizeKey normaliza claves de recursos: trim, minúsculas, espacios a "_".
func normalizeKey(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	return strings.ReplaceAll(s, " ", "_")
}
