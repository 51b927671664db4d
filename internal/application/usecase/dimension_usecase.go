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

// DimensionUseCase aplica reglas de negocio para dimensiones y sus valores.
type DimensionUseCase struct {
	dims      repository.DimensionRepository
	vals      repository.DimensionValueRepository
	companies repository.CompanyRepository
}

// NewDimensionUseCase construye el caso de uso con los puertos de persistencia.
func NewDimensionUseCase(dims repository.DimensionRepository, vals repository.DimensionValueRepository, companies repository.CompanyRepository) *DimensionUseCase {
	return &DimensionUseCase{dims: dims, vals: vals, companies: companies}
}

// List lista las dimensiones de la empresa. Lectura: cualquier rol con alcance.
func (uc *DimensionUseCase) List(ctx context.Context, actor *entity.User, companyID string) ([]dto.DimensionResponse, error) {
	if err := authz.Decide(actor, &companyID, authz.AnyRole, false); err != nil {
		return nil, err
	}
	list, err := uc.dims.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.DimensionResponse, 0, len(list))
	for _, d := range list {
		items = append(items, *entityToDimensionResponse(d))
	}
	return items, nil
}

// Create crea una dimensión. El dataType queda fijo aquí para siempre.
func (uc *DimensionUseCase) Create(ctx context.Context, actor *entity.User, companyID string, in dto.CreateDimensionRequest) (*dto.DimensionResponse, error) {
	if err := authz.Decide(actor, &companyID, authz.Admins, false); err != nil {
		return nil, err
	}
	if err := uc.requireActiveCompany(ctx, companyID); err != nil {
		return nil, err
	}

	key := normalizeKey(in.DimensionKey)
	name := strings.TrimSpace(in.DimensionName)
	if key == "" {
		return nil, fmt.Errorf("%w: dimensionKey es requerido", domain.ErrInvalidInput)
	}
	if name == "" {
		return nil, fmt.Errorf("%w: dimensionName es requerido", domain.ErrInvalidInput)
	}
	dtype := strings.ToUpper(strings.TrimSpace(in.DataType))
	if dtype == "" {
		dtype = entity.DataTypeText
	}
	if !entity.IsValidDataType(dtype) {
		return nil, fmt.Errorf("%w: dataType debe ser TEXT, NUMBER o DATE", domain.ErrInvalidInput)
	}

	now := time.Now()
	dim := &entity.Dimension{
		ID:            uuid.New().String(),
		CompanyID:     companyID,
		DimensionKey:  key,
		DimensionName: name,
		Description:   in.Description,
		DataType:      dtype,
		IsActive:      true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.dims.Create(ctx, dim); err != nil {
		return nil, err
	}
	return entityToDimensionResponse(dim), nil
}

// Update aplica un PATCH parcial. Un dataType enviado por el cliente se ignora
// en silencio: quedó fijo al crear.
func (uc *DimensionUseCase) Update(ctx context.Context, actor *entity.User, companyID, dimensionID string, in dto.UpdateDimensionRequest) (*dto.DimensionResponse, error) {
	if err := authz.Decide(actor, &companyID, authz.Admins, false); err != nil {
		return nil, err
	}
	if err := uc.requireActiveCompany(ctx, companyID); err != nil {
		return nil, err
	}

	dim, err := uc.dims.GetByID(ctx, companyID, dimensionID)
	if err != nil {
		return nil, err
	}
	if dim == nil {
		return nil, domain.ErrNotFound
	}

	if in.DimensionName != nil {
		dim.DimensionName = strings.TrimSpace(*in.DimensionName)
	}
	if in.Description != nil {
		dim.Description = in.Description
	}
	if in.IsActive != nil {
		dim.IsActive = *in.IsActive
	}
	dim.UpdatedAt = time.Now()

	if err := uc.dims.Update(ctx, dim); err != nil {
		return nil, err
	}
	return entityToDimensionResponse(dim), nil
}

// ListValues lista los valores de una dimensión ordenados por sortOrder y nombre.
func (uc *DimensionUseCase) ListValues(ctx context.Context, actor *entity.User, companyID, dimensionID string) ([]dto.DimensionValueResponse, error) {
	if err := authz.Decide(actor, &companyID, authz.AnyRole, false); err != nil {
		return nil, err
	}
	list, err := uc.vals.ListByDimension(ctx, companyID, dimensionID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.DimensionValueResponse, 0, len(list))
	for _, v := range list {
		items = append(items, *entityToValueResponse(v))
	}
	return items, nil
}

// CreateValue crea un valor. Un parentValueId presente debe referenciar un
// valor existente de la misma empresa y la misma dimensión.
func (uc *DimensionUseCase) CreateValue(ctx context.Context, actor *entity.User, companyID, dimensionID string, in dto.CreateDimensionValueRequest) (*dto.DimensionValueResponse, error) {
	if err := authz.Decide(actor, &companyID, authz.Admins, false); err != nil {
		return nil, err
	}
	if err := uc.requireActiveCompany(ctx, companyID); err != nil {
		return nil, err
	}

	dim, err := uc.dims.GetByID(ctx, companyID, dimensionID)
	if err != nil {
		return nil, err
	}
	if dim == nil {
		return nil, domain.ErrNotFound
	}

	key := normalizeKey(in.ValueKey)
	name := strings.TrimSpace(in.ValueName)
	if key == "" {
		return nil, fmt.Errorf("%w: valueKey es requerido", domain.ErrInvalidInput)
	}
	if name == "" {
		return nil, fmt.Errorf("%w: valueName es requerido", domain.ErrInvalidInput)
	}

	if in.ParentValueID != nil {
		if err := uc.validateParent(ctx, companyID, dimensionID, *in.ParentValueID, ""); err != nil {
			return nil, err
		}
	}

	attrs := in.Attributes
	if attrs == nil {
		attrs = map[string]any{}
	}
	now := time.Now()
	val := &entity.DimensionValue{
		ID:            uuid.New().String(),
		CompanyID:     companyID,
		DimensionID:   dimensionID,
		ValueKey:      key,
		ValueName:     name,
		ParentValueID: in.ParentValueID,
		SortOrder:     in.SortOrder,
		Attributes:    attrs,
		IsActive:      true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.vals.Create(ctx, val); err != nil {
		return nil, err
	}
	return entityToValueResponse(val), nil
}

// UpdateValue aplica un PATCH parcial a un valor. Reasignar el padre repite la
// validación de referencia y además rechaza ciclos en la cadena de ancestros.
func (uc *DimensionUseCase) UpdateValue(ctx context.Context, actor *entity.User, companyID, dimensionID, valueID string, in dto.UpdateDimensionValueRequest) (*dto.DimensionValueResponse, error) {
	if err := authz.Decide(actor, &companyID, authz.Admins, false); err != nil {
		return nil, err
	}
	if err := uc.requireActiveCompany(ctx, companyID); err != nil {
		return nil, err
	}

	val, err := uc.vals.GetByID(ctx, companyID, dimensionID, valueID)
	if err != nil {
		return nil, err
	}
	if val == nil {
		return nil, domain.ErrNotFound
	}

	if in.ParentValueID != nil {
		if err := uc.validateParent(ctx, companyID, dimensionID, *in.ParentValueID, valueID); err != nil {
			return nil, err
		}
		val.ParentValueID = in.ParentValueID
	}
	if in.ValueName != nil {
		val.ValueName = strings.TrimSpace(*in.ValueName)
	}
	if in.SortOrder != nil {
		val.SortOrder = in.SortOrder
	}
	if in.Attributes != nil {
		val.Attributes = in.Attributes
	}
	if in.IsActive != nil {
		val.IsActive = *in.IsActive
	}
	val.UpdatedAt = time.Now()

	if err := uc.vals.Update(ctx, val); err != nil {
		return nil, err
	}
	return entityToValueResponse(val), nil
}

// validateParent exige que el padre exista en la misma empresa y dimensión.
// Con selfID no vacío recorre la cadena de ancestros del padre propuesto y
// rechaza si alcanza al propio valor (ciclo).
func (uc *DimensionUseCase) validateParent(ctx context.Context, companyID, dimensionID, parentID, selfID string) error {
	parent, err := uc.vals.GetByID(ctx, companyID, dimensionID, parentID)
	if err != nil {
		return err
	}
	if parent == nil {
		return fmt.Errorf("%w: parentValueId no existe en esta dimensión", domain.ErrInvalidReference)
	}
	if selfID == "" {
		return nil
	}
	if parent.ID == selfID {
		return fmt.Errorf("%w: un valor no puede ser su propio padre", domain.ErrInvalidReference)
	}
	for cur := parent; cur.ParentValueID != nil; {
		next, err := uc.vals.GetByID(ctx, companyID, dimensionID, *cur.ParentValueID)
		if err != nil {
			return err
		}
		if next == nil {
			return nil // cadena rota en datos viejos; el padre propuesto sigue siendo válido
		}
		if next.ID == selfID {
			return fmt.Errorf("%w: el padre propuesto crearía un ciclo", domain.ErrInvalidReference)
		}
		cur = next
	}
	return nil
}

func (uc *DimensionUseCase) requireActiveCompany(ctx context.Context, companyID string) error {
	company, err := uc.companies.GetByID(ctx, companyID)
	if err != nil {
		return err
	}
	if company == nil {
		return domain.ErrNotFound
	}
	if !company.IsActive {
		return domain.ErrCompanyInactive
	}
	return nil
}

func entityToDimensionResponse(d *entity.Dimension) *dto.DimensionResponse {
	if d == nil {
		return nil
	}
	return &dto.DimensionResponse{
		DimensionID:   d.ID,
		CompanyID:     d.CompanyID,
		DimensionKey:  d.DimensionKey,
		DimensionName: d.DimensionName,
		Description:   d.Description,
		DataType:      d.DataType,
		IsActive:      d.IsActive,
	}
}

func entityToValueResponse(v *entity.DimensionValue) *dto.DimensionValueResponse {
	if v == nil {
		return nil
	}
	attrs := v.Attributes
	if attrs == nil {
		attrs = map[string]any{}
	}
	return &dto.DimensionValueResponse{
		ValueID:       v.ID,
		CompanyID:     v.CompanyID,
		DimensionID:   v.DimensionID,
		ValueKey:      v.ValueKey,
		ValueName:     v.ValueName,
		ParentValueID: v.ParentValueID,
		SortOrder:     v.SortOrder,
		Attributes:    attrs,
		IsActive:      v.IsActive,
	}
}
