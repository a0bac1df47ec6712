package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Comercio-api/internal/application/dto"
	appstock "github.com/jhoicas/Comercio-api/internal/application/stock"
)

// StockHandler maneja el motor de stock: entradas, correcciones, variantes e
// historiales (protegido).
type StockHandler struct {
	catalog    *appstock.CatalogUseCase
	intake     *appstock.RecordIntakeUseCase
	correction *appstock.RecordCorrectionUseCase
	history    *appstock.HistoryUseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(
	catalog *appstock.CatalogUseCase,
	intake *appstock.RecordIntakeUseCase,
	correction *appstock.RecordCorrectionUseCase,
	history *appstock.HistoryUseCase,
) *StockHandler {
	return &StockHandler{catalog: catalog, intake: intake, correction: correction, history: history}
}

// RecordIntake godoc
// @Summary      Registrar lote de entradas de mercancía
// @Description  Todas las líneas se aplican en una sola transacción: si una falla, ninguna queda registrada.
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecordIntakeRequest  true  "Líneas de entrada (cantidad > 0)"
// @Success      204
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/stock/intakes [post]
func (h *StockHandler) RecordIntake(c *fiber.Ctx) error {
	var in dto.RecordIntakeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.intake.RecordIntake(c.UserContext(), GetCompanyID(c), GetUserID(c), in); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// RecordCorrection godoc
// @Summary      Registrar corrección manual de saldos
// @Description  Fija cantidad y valor de forma absoluta (no aditiva); un valor negativo deja déficit en el ledger.
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecordCorrectionRequest  true  "Corrección con motivo (RECUENTO, DANO, VENCIDO, ROBO, USO_INTERNO)"
// @Success      204
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/stock/corrections [post]
func (h *StockHandler) RecordCorrection(c *fiber.Ctx) error {
	var in dto.RecordCorrectionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.correction.RecordCorrection(c.UserContext(), GetCompanyID(c), GetUserID(c), in); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListIntakes godoc
// @Summary      Listar historial de entradas
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        variant_id  query  string  false  "Filtrar por variante"
// @Param        limit       query  int     false  "Límite"   default(20)
// @Param        offset      query  int     false  "Offset"   default(0)
// @Success      200  {object}  dto.StockIntakeListResponse
// @Router       /api/stock/intakes [get]
func (h *StockHandler) ListIntakes(c *fiber.Ctx) error {
	page := pageFromQuery(c)
	out, err := h.history.ListIntakes(GetCompanyID(c), c.Query("variant_id"), page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListCorrections godoc
// @Summary      Listar historial de correcciones
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        variant_id  query  string  false  "Filtrar por variante"
// @Param        limit       query  int     false  "Límite"   default(20)
// @Param        offset      query  int     false  "Offset"   default(0)
// @Success      200  {object}  dto.StockModificationListResponse
// @Router       /api/stock/corrections [get]
func (h *StockHandler) ListCorrections(c *fiber.Ctx) error {
	page := pageFromQuery(c)
	out, err := h.history.ListModifications(GetCompanyID(c), c.Query("variant_id"), page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListVariants godoc
// @Summary      Listar variantes de stock de la empresa
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200  {object}  dto.VariantListResponse
// @Router       /api/stock/variants [get]
func (h *StockHandler) ListVariants(c *fiber.Ctx) error {
	page := pageFromQuery(c)
	out, err := h.catalog.ListVariants(GetCompanyID(c), page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetVariant godoc
// @Summary      Obtener variante por ID
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la variante"
// @Success      200  {object}  dto.VariantResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock/variants/{id} [get]
func (h *StockHandler) GetVariant(c *fiber.Ctx) error {
	out, err := h.catalog.GetVariant(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil || out.CompanyID != GetCompanyID(c) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "variante no encontrada"})
	}
	return c.JSON(out)
}
