package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/plannerx/plannerx-api/internal/application/dto"
	"github.com/plannerx/plannerx-api/internal/domain"
	"github.com/plannerx/plannerx-api/internal/domain/authz"
	"github.com/plannerx/plannerx-api/internal/domain/entity"
	"github.com/plannerx/plannerx-api/internal/domain/repository"
)

// CompanyUseCase aplica reglas de negocio para empresas (tenants).
type CompanyUseCase struct {
	repo repository.CompanyRepository
	tx   TxRunner
}

// NewCompanyUseCase construye el caso de uso con el puerto de persistencia y el runner transaccional.
func NewCompanyUseCase(repo repository.CompanyRepository, tx TxRunner) *CompanyUseCase {
	return &CompanyUseCase{repo: repo, tx: tx}
}

// Create crea una empresa. Solo SYSADMIN global. La empresa nace inactiva:
// la activará el import de calendario o un PATCH posterior con hoja asignada.
func (uc *CompanyUseCase) Create(ctx context.Context, actor *entity.User, in dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	if err := authz.Decide(actor, nil, []entity.Role{entity.RoleSysadmin}, true); err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.CompanyCode) == "" || strings.TrimSpace(in.CompanyName) == "" {
		return nil, fmt.Errorf("%w: companyCode y companyName son requeridos", domain.ErrInvalidInput)
	}

	dom := strings.ToLower(strings.TrimSpace(in.Domain))
	if dom != "" {
		existing, err := uc.repo.GetByDomain(ctx, dom)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, fmt.Errorf("%w: el dominio ya existe", domain.ErrConflict)
		}
	}

	now := time.Now()
	company := &entity.Company{
		ID:          uuid.New().String(),
		CompanyCode: strings.TrimSpace(in.CompanyCode),
		CompanyName: strings.TrimSpace(in.CompanyName),
		Address1:    in.Address1,
		Address2:    in.Address2,
		City:        in.City,
		State:       in.State,
		Zip:         in.Zip,
		Domain:      dom,
		Industry:    in.Industry,
		IsActive:    false,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, company); err != nil {
		return nil, err
	}
	return entityToCompanyResponse(company), nil
}

// List lista empresas con paginación, más recientes primero. Solo SYSADMIN global.
func (uc *CompanyUseCase) List(ctx context.Context, actor *entity.User, limit, offset int) ([]dto.CompanyResponse, error) {
	if err := authz.Decide(actor, nil, []entity.Role{entity.RoleSysadmin}, true); err != nil {
		return nil, err
	}
	list, err := uc.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CompanyResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *entityToCompanyResponse(c))
	}
	return items, nil
}

// Get obtiene una empresa dentro del alcance del actor.
func (uc *CompanyUseCase) Get(ctx context.Context, actor *entity.User, companyID string) (*dto.CompanyResponse, error) {
	if err := authz.Decide(actor, &companyID, authz.Admins, false); err != nil {
		return nil, err
	}
	company, err := uc.repo.GetByID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	return entityToCompanyResponse(company), nil
}

// Update aplica un PATCH parcial dentro de una transacción. La transición
// isActive false→true exige calendarSheetId no nulo sobre el estado
// resultante: un calendarSheetId enviado en la misma petición cuenta.
func (uc *CompanyUseCase) Update(ctx context.Context, actor *entity.User, companyID string, in dto.UpdateCompanyRequest) (*dto.CompanyResponse, error) {
	if err := authz.Decide(actor, &companyID, authz.Admins, false); err != nil {
		return nil, err
	}

	var out *dto.CompanyResponse
	err := uc.tx.RunCompany(ctx, func(companies repository.CompanyRepository, sheets repository.SheetRepository) error {
		company, err := companies.GetByID(ctx, companyID)
		if err != nil {
			return err
		}
		if company == nil {
			return domain.ErrNotFound
		}

		applyCompanyPatch(company, in)

		if in.CalendarSheetID != nil {
			sheet, err := sheets.GetByID(ctx, companyID, *in.CalendarSheetID)
			if err != nil {
				return err
			}
			if sheet == nil {
				return fmt.Errorf("%w: la hoja calendario no existe en esta empresa", domain.ErrInvalidReference)
			}
		}

		if in.IsActive != nil && *in.IsActive && company.CalendarSheetID == nil {
			return domain.ErrInvalidActivation
		}

		company.UpdatedAt = time.Now()
		if err := companies.Update(ctx, company); err != nil {
			return err
		}
		out = entityToCompanyResponse(company)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// AttachCalendarSheet marca una hoja existente de la empresa como su calendario.
func (uc *CompanyUseCase) AttachCalendarSheet(ctx context.Context, actor *entity.User, companyID, sheetID string) (*dto.CompanyResponse, error) {
	if err := authz.Decide(actor, &companyID, authz.Admins, false); err != nil {
		return nil, err
	}
	if err := authz.CanModifyCalendar(actor); err != nil {
		return nil, err
	}

	var out *dto.CompanyResponse
	err := uc.tx.RunCompany(ctx, func(companies repository.CompanyRepository, sheets repository.SheetRepository) error {
		company, err := companies.GetByID(ctx, companyID)
		if err != nil {
			return err
		}
		if company == nil {
			return domain.ErrNotFound
		}
		sheet, err := sheets.GetByID(ctx, companyID, sheetID)
		if err != nil {
			return err
		}
		if sheet == nil {
			return domain.ErrNotFound
		}

		company.CalendarSheetID = &sheet.ID
		company.UpdatedAt = time.Now()
		if err := companies.Update(ctx, company); err != nil {
			return err
		}
		out = entityToCompanyResponse(company)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// applyCompanyPatch copia los campos presentes del PATCH. companyCode no se
// toca: es inmutable después de crear.
func applyCompanyPatch(c *entity.Company, in dto.UpdateCompanyRequest) {
	if in.CompanyName != nil {
		c.CompanyName = *in.CompanyName
	}
	if in.Address1 != nil {
		c.Address1 = *in.Address1
	}
	if in.Address2 != nil {
		c.Address2 = *in.Address2
	}
	if in.City != nil {
		c.City = *in.City
	}
	if in.State != nil {
		c.State = *in.State
	}
	if in.Zip != nil {
		c.Zip = *in.Zip
	}
	if in.Domain != nil {
		c.Domain = strings.ToLower(strings.TrimSpace(*in.Domain))
	}
	if in.Industry != nil {
		c.Industry = *in.Industry
	}
	if in.CalendarSheetID != nil {
		c.CalendarSheetID = in.CalendarSheetID
	}
	if in.IsActive != nil {
		c.IsActive = *in.IsActive
	}
}

func entityToCompanyResponse(c *entity.Company) *dto.CompanyResponse {
	if c == nil {
		return nil
	}
	return &dto.CompanyResponse{
		CompanyID:       c.ID,
		CompanyCode:     c.CompanyCode,
		CompanyName:     c.CompanyName,
		Address1:        c.Address1,
		Address2:        c.Address2,
		City:            c.City,
		State:           c.State,
		Zip:             c.Zip,
		Domain:          c.Domain,
		Industry:        c.Industry,
		IsActive:        c.IsActive,
		CalendarSheetID: c.CalendarSheetID,
	}
}
