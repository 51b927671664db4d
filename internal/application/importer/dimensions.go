package importer

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

// DimensionImporter hace upsert por clave de dimensiones y valores.
// Política mejor-esfuerzo: cada fila se procesa por separado, las fallidas se
// reportan en la respuesta y el resto se persiste igual. Reejecutar el mismo
// archivo es idempotente.
type DimensionImporter struct {
	dims      repository.DimensionRepository
	vals      repository.DimensionValueRepository
	companies repository.CompanyRepository
}

// Policy la política de fallo de este punto de entrada.
func (im *DimensionImporter) Policy() Policy { return PolicyBestEffort }

// NewDimensionImporter construye el importador sobre repos ligados al pool.
func NewDimensionImporter(dims repository.DimensionRepository, vals repository.DimensionValueRepository, companies repository.CompanyRepository) *DimensionImporter {
	return &DimensionImporter{dims: dims, vals: vals, companies: companies}
}

// Import procesa las secciones Dimensions y Values en ese orden. La empresa
// debe existir pero no necesita estar activa: el import de dimensiones forma
// parte del alta previa a la activación.
func (im *DimensionImporter) Import(ctx context.Context, actor *entity.User, companyID string, req dto.DimensionImportRequest) (*dto.DimensionImportResponse, error) {
	if err := authz.Decide(actor, &companyID, authz.Admins, false); err != nil {
		return nil, err
	}

	company, err := im.companies.GetByID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}

	out := &dto.DimensionImportResponse{
		OK:         true,
		Dimensions: dto.ImportSectionSummary{Errors: []dto.ImportRowError{}},
		Values:     dto.ImportSectionSummary{Errors: []dto.ImportRowError{}},
	}

	// Primero las dimensiones: los valores las resuelven por clave.
	dimIDByKey := make(map[string]string)
	for i, row := range req.Dimensions {
		rownum := i + 2
		if err := im.upsertDimension(ctx, companyID, row, dimIDByKey, &out.Dimensions); err != nil {
			out.Dimensions.Errors = append(out.Dimensions.Errors, dto.ImportRowError{Row: rownum, Error: err.Error()})
		}
	}

	for i, row := range req.Values {
		rownum := i + 2
		if err := im.upsertValue(ctx, companyID, row, dimIDByKey, &out.Values); err != nil {
			out.Values.Errors = append(out.Values.Errors, dto.ImportRowError{Row: rownum, Error: err.Error()})
		}
	}

	return out, nil
}

// upsertDimension crea o actualiza una dimensión por su clave. Las filas sin
// clave o sin nombre se saltan sin contar como error (filas en blanco del
// archivo de origen).
func (im *DimensionImporter) upsertDimension(ctx context.Context, companyID string, row dto.DimensionImportRow, dimIDByKey map[string]string, sum *dto.ImportSectionSummary) error {
	key := normalizeKey(row.DimensionKey)
	name := strings.TrimSpace(row.DimensionName)
	if key == "" || name == "" {
		sum.Skipped++
		return nil
	}

	existing, err := im.dims.GetByKey(ctx, companyID, key)
	if err != nil {
		return err
	}

	now := time.Now()
	if existing != nil {
		existing.DimensionName = name
		if desc := asString(row.Description); desc != "" {
			existing.Description = &desc
		}
		// El dataType es inmutable: se ignora en la actualización.
		existing.IsActive = asBool(row.IsActive, existing.IsActive)
		existing.UpdatedAt = now
		if err := im.dims.Update(ctx, existing); err != nil {
			return err
		}
		dimIDByKey[key] = existing.ID
		sum.Updated++
		return nil
	}

	dtype := strings.ToUpper(strings.TrimSpace(asString(row.DataType)))
	if dtype == "" {
		dtype = entity.DataTypeText
	}
	if !entity.IsValidDataType(dtype) {
		return fmt.Errorf("dataType inválido %q para la dimensión %q", dtype, key)
	}

	dim := &entity.Dimension{
		ID:            uuid.New().String(),
		CompanyID:     companyID,
		DimensionKey:  key,
		DimensionName: name,
		DataType:      dtype,
		IsActive:      asBool(row.IsActive, true),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if desc := asString(row.Description); desc != "" {
		dim.Description = &desc
	}
	if err := im.dims.Create(ctx, dim); err != nil {
		return err
	}
	dimIDByKey[key] = dim.ID
	sum.Created++
	return nil
}

// upsertValue crea o actualiza un valor por (dimensión, clave). La dimensión
// se resuelve primero contra las filas recién importadas y después contra la
// base, para que un mismo archivo pueda traer dimensión y valores juntos.
func (im *DimensionImporter) upsertValue(ctx context.Context, companyID string, row dto.DimensionValueImportRow, dimIDByKey map[string]string, sum *dto.ImportSectionSummary) error {
	dimKey := normalizeKey(row.DimensionKey)
	key := normalizeKey(row.ValueKey)
	name := strings.TrimSpace(row.ValueName)
	if dimKey == "" || key == "" || name == "" {
		sum.Skipped++
		return nil
	}

	dimID, ok := dimIDByKey[dimKey]
	if !ok {
		dim, err := im.dims.GetByKey(ctx, companyID, dimKey)
		if err != nil {
			return err
		}
		if dim == nil {
			return fmt.Errorf("la dimensión %q no existe para el valor %q", dimKey, key)
		}
		dimID = dim.ID
		dimIDByKey[dimKey] = dimID
	}

	sortOrder, err := asIntOpt(row.SortOrder)
	if err != nil {
		return fmt.Errorf("sortOrder inválido para el valor %q: %v", key, err)
	}
	attrs, err := asAttrs(row.Attributes)
	if err != nil {
		return fmt.Errorf("attributesJson inválido para el valor %q: %v", key, err)
	}

	existing, err := im.vals.GetByKey(ctx, companyID, dimID, key)
	if err != nil {
		return err
	}

	now := time.Now()
	if existing != nil {
		existing.ValueName = name
		if sortOrder != nil {
			existing.SortOrder = sortOrder
		}
		if attrs != nil {
			existing.Attributes = attrs
		}
		existing.IsActive = asBool(row.IsActive, existing.IsActive)
		existing.UpdatedAt = now
		if err := im.vals.Update(ctx, existing); err != nil {
			return err
		}
		sum.Updated++
		return nil
	}

	val := &entity.DimensionValue{
		ID:          uuid.New().String(),
		CompanyID:   companyID,
		DimensionID: dimID,
		ValueKey:    key,
		ValueName:   name,
		SortOrder:   sortOrder,
		Attributes:  attrs,
		IsActive:    asBool(row.IsActive, true),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := im.vals.Create(ctx, val); err != nil {
		return err
	}
	sum.Created++
	return nil
}
