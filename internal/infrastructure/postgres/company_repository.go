package postgres

import (
	"context"
	"fmt"

	"github.com/plannerx/plannerx-api/internal/domain"
	"github.com/plannerx/plannerx-api/internal/domain/entity"
	"github.com/plannerx/plannerx-api/internal/domain/repository"
)

// Asegura que CompanyRepo implementa repository.CompanyRepository.
var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo implementación del puerto CompanyRepository sobre PostgreSQL
// (usable con pool o tx).
type CompanyRepo struct {
	q Querier
}

// NewCompanyRepository construye el adaptador de persistencia para empresas.
func NewCompanyRepository(q Querier) *CompanyRepo {
	return &CompanyRepo{q: q}
}

const companyColumns = `id, company_code, company_name, address1, address2, city, state, zip,
		domain, industry, is_active, calendar_sheet_id, created_at, updated_at`

// Create persiste una nueva empresa.
func (r *CompanyRepo) Create(ctx context.Context, company *entity.Company) error {
	query := `
		INSERT INTO companies (` + companyColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(ctx, query,
		company.ID, company.CompanyCode, company.CompanyName,
		company.Address1, company.Address2, company.City, company.State, company.Zip,
		company.Domain, company.Industry, company.IsActive, company.CalendarSheetID,
		company.CreatedAt, company.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("insert company: %w", err)
	}
	return nil
}

// GetByID obtiene una empresa por ID.
func (r *CompanyRepo) GetByID(ctx context.Context, id string) (*entity.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE id = $1`
	return r.scanOne(ctx, query, id)
}

// GetByDomain obtiene una empresa por su dominio de email (único).
func (r *CompanyRepo) GetByDomain(ctx context.Context, companyDomain string) (*entity.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE domain = $1`
	return r.scanOne(ctx, query, companyDomain)
}

// Update actualiza una empresa existente. company_code no se toca: es inmutable.
func (r *CompanyRepo) Update(ctx context.Context, company *entity.Company) error {
	query := `
		UPDATE companies
		SET company_name = $2, address1 = $3, address2 = $4, city = $5, state = $6, zip = $7,
			domain = $8, industry = $9, is_active = $10, calendar_sheet_id = $11, updated_at = $12
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		company.ID, company.CompanyName,
		company.Address1, company.Address2, company.City, company.State, company.Zip,
		company.Domain, company.Industry, company.IsActive, company.CalendarSheetID,
		company.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("update company: %w", err)
	}
	return nil
}

// List devuelve empresas con paginación, más reciente primero.
func (r *CompanyRepo) List(ctx context.Context, limit, offset int) ([]*entity.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	defer rows.Close()

	var list []*entity.Company
	for rows.Next() {
		var c entity.Company
		if err := rows.Scan(
			&c.ID, &c.CompanyCode, &c.CompanyName,
			&c.Address1, &c.Address2, &c.City, &c.State, &c.Zip,
			&c.Domain, &c.Industry, &c.IsActive, &c.CalendarSheetID,
			&c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan company: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

func (r *CompanyRepo) scanOne(ctx context.Context, query string, args ...any) (*entity.Company, error) {
	var c entity.Company
	err := r.q.QueryRow(ctx, query, args...).Scan(
		&c.ID, &c.CompanyCode, &c.CompanyName,
		&c.Address1, &c.Address2, &c.City, &c.State, &c.Zip,
		&c.Domain, &c.Industry, &c.IsActive, &c.CalendarSheetID,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company: %w", err)
	}
	return &c, nil
}
