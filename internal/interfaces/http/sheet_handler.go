package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/plannerx/plannerx-api/internal/application/dto"
	"github.com/plannerx/plannerx-api/internal/application/usecase"
)

// SheetHandler maneja las hojas de una empresa.
type SheetHandler struct {
	uc *usecase.SheetUseCase
}

// NewSheetHandler construye el handler inyectando el caso de uso.
func NewSheetHandler(uc *usecase.SheetUseCase) *SheetHandler {
	return &SheetHandler{uc: uc}
}

// List godoc
// @Summary      Listar hojas de la empresa
// @Tags         sheets
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "ID de la empresa"
// @Success      200  {array}   dto.SheetResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /companies/{id}/sheets [get]
func (h *SheetHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), GetCurrentUser(c), c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear hoja (la clave "calendar" exige rol administrador)
// @Tags         sheets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string  true  "ID de la empresa"
// @Param        body  body  dto.CreateSheetRequest  true  "sheetKey, sheetName, modelJson"
// @Success      201   {object}  dto.SheetResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /companies/{id}/sheets [post]
func (h *SheetHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSheetRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.UserContext(), GetCurrentUser(c), c.Params("id"), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar hoja (la hoja calendario exige rol administrador)
// @Tags         sheets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path  string  true  "ID de la empresa"
// @Param        sheetId  path  string  true  "ID de la hoja"
// @Param        body     body  dto.UpdateSheetRequest  true  "Campos a modificar"
// @Success      200  {object}  dto.SheetResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /companies/{id}/sheets/{sheetId} [patch]
func (h *SheetHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateSheetRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.UserContext(), GetCurrentUser(c), c.Params("id"), c.Params("sheetId"), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}
