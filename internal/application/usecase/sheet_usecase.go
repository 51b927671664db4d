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

// SheetUseCase aplica reglas de negocio para hojas de una empresa.
type SheetUseCase struct {
	sheets    repository.SheetRepository
	companies repository.CompanyRepository
	tx        TxRunner
}

// NewSheetUseCase construye el caso de uso con los puertos de persistencia.
func NewSheetUseCase(sheets repository.SheetRepository, companies repository.CompanyRepository, tx TxRunner) *SheetUseCase {
	return &SheetUseCase{sheets: sheets, companies: companies, tx: tx}
}

// List lista las hojas de la empresa, más recientes primero.
func (uc *SheetUseCase) List(ctx context.Context, actor *entity.User, companyID string) ([]dto.SheetResponse, error) {
	if err := authz.Decide(actor, &companyID, authz.Admins, false); err != nil {
		return nil, err
	}
	list, err := uc.sheets.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SheetResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *entityToSheetResponse(s))
	}
	return items, nil
}

// Create crea una hoja. La clave "calendar" está protegida y, al crearse,
// marca en la misma transacción a la empresa como dueña del calendario.
func (uc *SheetUseCase) Create(ctx context.Context, actor *entity.User, companyID string, in dto.CreateSheetRequest) (*dto.SheetResponse, error) {
	if err := authz.Decide(actor, &companyID, authz.Admins, false); err != nil {
		return nil, err
	}

	key := normalizeKey(in.SheetKey)
	name := strings.TrimSpace(in.SheetName)
	if key == "" {
		return nil, fmt.Errorf("%w: sheetKey es requerido", domain.ErrInvalidInput)
	}
	if name == "" {
		return nil, fmt.Errorf("%w: sheetName es requerido", domain.ErrInvalidInput)
	}
	if key == entity.SheetKeyCalendar {
		if err := authz.CanModifyCalendar(actor); err != nil {
			return nil, err
		}
	}

	model := in.ModelJSON
	if model == nil {
		model = map[string]any{}
	}
	now := time.Now()
	sheet := &entity.Sheet{
		ID:          uuid.New().String(),
		CompanyID:   companyID,
		SheetKey:    key,
		SheetName:   name,
		Description: in.Description,
		ModelJSON:   model,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err := uc.tx.RunSheet(ctx, func(sheets repository.SheetRepository, companies repository.CompanyRepository) error {
		company, err := companies.GetByID(ctx, companyID)
		if err != nil {
			return err
		}
		if company == nil {
			return domain.ErrNotFound
		}
		if err := sheets.Create(ctx, sheet); err != nil {
			return err
		}
		if sheet.IsCalendar() {
			company.CalendarSheetID = &sheet.ID
			company.UpdatedAt = now
			if err := companies.Update(ctx, company); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entityToSheetResponse(sheet), nil
}

// Update aplica un PATCH parcial. Si la hoja es el calendario de la empresa
// (por clave o por calendarSheetId) solo SYSADMIN/COMPANY_ADMIN pueden tocarla.
func (uc *SheetUseCase) Update(ctx context.Context, actor *entity.User, companyID, sheetID string, in dto.UpdateSheetRequest) (*dto.SheetResponse, error) {
	if err := authz.Decide(actor, &companyID, authz.Admins, false); err != nil {
		return nil, err
	}

	sheet, err := uc.sheets.GetByID(ctx, companyID, sheetID)
	if err != nil {
		return nil, err
	}
	if sheet == nil {
		return nil, domain.ErrNotFound
	}

	company, err := uc.companies.GetByID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	isCalendarByID := company != nil && company.CalendarSheetID != nil && *company.CalendarSheetID == sheetID
	if sheet.IsCalendar() || isCalendarByID {
		if err := authz.CanModifyCalendar(actor); err != nil {
			return nil, err
		}
	}

	if in.SheetName != nil {
		sheet.SheetName = strings.TrimSpace(*in.SheetName)
	}
	if in.Description != nil {
		sheet.Description = in.Description
	}
	if in.ModelJSON != nil {
		sheet.ModelJSON = in.ModelJSON
	}
	if in.IsActive != nil {
		sheet.IsActive = *in.IsActive
	}
	sheet.UpdatedAt = time.Now()

	if err := uc.sheets.Update(ctx, sheet); err != nil {
		return nil, err
	}
	return entityToSheetResponse(sheet), nil
}

func entityToSheetResponse(s *entity.Sheet) *dto.SheetResponse {
	if s == nil {
		return nil
	}
	model := s.ModelJSON
	if model == nil {
		model = map[string]any{}
	}
	return &dto.SheetResponse{
		SheetID:     s.ID,
		CompanyID:   s.CompanyID,
		SheetKey:    s.SheetKey,
		SheetName:   s.SheetName,
		Description: s.Description,
		ModelJSON:   model,
		IsActive:    s.IsActive,
	}
}
