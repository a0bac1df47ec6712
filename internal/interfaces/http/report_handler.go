package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	appstock "github.com/jhoicas/Comercio-api/internal/application/stock"
)

// ReportHandler sirve los reportes de stock: PDF de valoración y export XML
// del ledger de entradas (protegido).
type ReportHandler struct {
	reports *appstock.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(reports *appstock.ReportUseCase) *ReportHandler {
	return &ReportHandler{reports: reports}
}

// StockReport godoc
// @Summary      Descargar reporte de valoración de stock (PDF)
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock/report [get]
func (h *ReportHandler) StockReport(c *fiber.Ctx) error {
	pdfBytes, err := h.reports.StockReportPDF(c.UserContext(), GetCompanyID(c))
	if err != nil {
		return respondError(c, err)
	}
	filename := fmt.Sprintf("stock-%s.pdf", time.Now().Format("20060102"))
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}

// ExportIntakes godoc
// @Summary      Exportar historial de entradas como XML canónico
// @Description  El header X-Ledger-Digest trae el SHA-256 del documento para conciliación externa.
// @Tags         reports
// @Security     Bearer
// @Produce      application/xml
// @Success      200  {string}  string  "XML canónico"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock/intakes/export [get]
func (h *ReportHandler) ExportIntakes(c *fiber.Ctx) error {
	canonical, digest, err := h.reports.ExportIntakesXML(GetCompanyID(c))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationXMLCharsetUTF8)
	c.Set("X-Ledger-Digest", digest)
	return c.Send(canonical)
}
