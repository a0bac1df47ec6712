package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Comercio-api/internal/application/dto"
	"github.com/jhoicas/Comercio-api/internal/application/usecase"
)

// DiscountHandler maneja las peticiones HTTP para Discount (protegido).
type DiscountHandler struct {
	uc *usecase.DiscountUseCase
}

// NewDiscountHandler construye el handler.
func NewDiscountHandler(uc *usecase.DiscountUseCase) *DiscountHandler {
	return &DiscountHandler{uc: uc}
}

// Create godoc
// @Summary      Crear descuento
// @Tags         discounts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateDiscountRequest  true  "Datos del descuento"
// @Success      201   {object}  dto.DiscountResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/discounts [post]
func (h *DiscountHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateDiscountRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Name == "" || in.Type == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name y type son requeridos"})
	}
	out, err := h.uc.Create(GetCompanyID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener descuento por ID
// @Tags         discounts
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del descuento"
// @Success      200  {object}  dto.DiscountResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/discounts/{id} [get]
func (h *DiscountHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(GetCompanyID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "descuento no encontrado"})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar descuento
// @Tags         discounts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del descuento"
// @Param        body  body  dto.UpdateDiscountRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.DiscountResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/discounts/{id} [put]
func (h *DiscountHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateDiscountRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(GetCompanyID(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "descuento no encontrado"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar descuentos
// @Tags         discounts
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {object}  dto.DiscountListResponse
// @Router       /api/discounts [get]
func (h *DiscountHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(GetCompanyID(c), pageFromQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar descuento
// @Tags         discounts
// @Security     Bearer
// @Param        id  path  string  true  "ID del descuento"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/discounts/{id} [delete]
func (h *DiscountHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(GetCompanyID(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
