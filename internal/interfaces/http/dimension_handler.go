package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/plannerx/plannerx-api/internal/application/dto"
	"github.com/plannerx/plannerx-api/internal/application/usecase"
)

// DimensionHandler maneja dimensiones y sus valores dentro de una empresa.
type DimensionHandler struct {
	uc *usecase.DimensionUseCase
}

// NewDimensionHandler construye el handler inyectando el caso de uso.
func NewDimensionHandler(uc *usecase.DimensionUseCase) *DimensionHandler {
	return &DimensionHandler{uc: uc}
}

// List godoc
// @Summary      Listar dimensiones de la empresa
// @Tags         dimensions
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "ID de la empresa"
// @Success      200  {array}   dto.DimensionResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /companies/{id}/dimensions [get]
func (h *DimensionHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), GetCurrentUser(c), c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear dimensión
// @Tags         dimensions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string  true  "ID de la empresa"
// @Param        body  body  dto.CreateDimensionRequest  true  "dimensionKey, dimensionName, dataType"
// @Success      201   {object}  dto.DimensionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /companies/{id}/dimensions [post]
func (h *DimensionHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateDimensionRequest
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
// @Summary      Actualizar dimensión (dataType es inmutable)
// @Tags         dimensions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id           path  string  true  "ID de la empresa"
// @Param        dimensionId  path  string  true  "ID de la dimensión"
// @Param        body         body  dto.UpdateDimensionRequest  true  "Campos a modificar"
// @Success      200  {object}  dto.DimensionResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /companies/{id}/dimensions/{dimensionId} [patch]
func (h *DimensionHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateDimensionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.UserContext(), GetCurrentUser(c), c.Params("id"), c.Params("dimensionId"), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// ListValues godoc
// @Summary      Listar valores de una dimensión
// @Tags         dimensions
// @Produce      json
// @Security     BearerAuth
// @Param        id           path  string  true  "ID de la empresa"
// @Param        dimensionId  path  string  true  "ID de la dimensión"
// @Success      200  {array}   dto.DimensionValueResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /companies/{id}/dimensions/{dimensionId}/values [get]
func (h *DimensionHandler) ListValues(c *fiber.Ctx) error {
	out, err := h.uc.ListValues(c.UserContext(), GetCurrentUser(c), c.Params("id"), c.Params("dimensionId"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// CreateValue godoc
// @Summary      Crear valor de dimensión
// @Tags         dimensions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id           path  string  true  "ID de la empresa"
// @Param        dimensionId  path  string  true  "ID de la dimensión"
// @Param        body         body  dto.CreateDimensionValueRequest  true  "valueKey, valueName, parentValueId"
// @Success      201  {object}  dto.DimensionValueResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /companies/{id}/dimensions/{dimensionId}/values [post]
func (h *DimensionHandler) CreateValue(c *fiber.Ctx) error {
	var in dto.CreateDimensionValueRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CreateValue(c.UserContext(), GetCurrentUser(c), c.Params("id"), c.Params("dimensionId"), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateValue godoc
// @Summary      Actualizar valor de dimensión
// @Tags         dimensions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id           path  string  true  "ID de la empresa"
// @Param        dimensionId  path  string  true  "ID de la dimensión"
// @Param        valueId      path  string  true  "ID del valor"
// @Param        body         body  dto.UpdateDimensionValueRequest  true  "Campos a modificar"
// @Success      200  {object}  dto.DimensionValueResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /companies/{id}/dimensions/{dimensionId}/values/{valueId} [patch]
func (h *DimensionHandler) UpdateValue(c *fiber.Ctx) error {
	var in dto.UpdateDimensionValueRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.UpdateValue(c.UserContext(), GetCurrentUser(c), c.Params("id"), c.Params("dimensionId"), c.Params("valueId"), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}
