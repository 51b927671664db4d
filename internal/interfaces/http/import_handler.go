package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/plannerx/plannerx-api/internal/application/dto"
	"github.com/plannerx/plannerx-api/internal/application/importer"
)

// ImportHandler maneja los endpoints de import masivo de una empresa.
type ImportHandler struct {
	calendar   *importer.CalendarImporter
	dimensions *importer.DimensionImporter
}

// NewImportHandler construye el handler con ambos importadores.
func NewImportHandler(calendar *importer.CalendarImporter, dimensions *importer.DimensionImporter) *ImportHandler {
	return &ImportHandler{calendar: calendar, dimensions: dimensions}
}

// ImportCalendar godoc
// @Summary      Importar calendario (todo-o-nada, reemplaza el existente)
// @Tags         imports
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string  true  "ID de la empresa"
// @Param        body  body  dto.CalendarImportRequest  true  "Filas normalizadas del calendario"
// @Success      200   {object}  dto.CalendarImportResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /companies/{id}/calendar/import [post]
func (h *ImportHandler) ImportCalendar(c *fiber.Ctx) error {
	var in dto.CalendarImportRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.calendar.Import(c.UserContext(), GetCurrentUser(c), c.Params("id"), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// ImportDimensions godoc
// @Summary      Importar dimensiones y valores (mejor-esfuerzo, upsert por clave)
// @Tags         imports
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string  true  "ID de la empresa"
// @Param        body  body  dto.DimensionImportRequest  true  "Secciones dimensions y values"
// @Success      200   {object}  dto.DimensionImportResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /companies/{id}/dimensions/import [post]
func (h *ImportHandler) ImportDimensions(c *fiber.Ctx) error {
	var in dto.DimensionImportRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.dimensions.Import(c.UserContext(), GetCurrentUser(c), c.Params("id"), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}
