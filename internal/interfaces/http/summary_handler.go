package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-sheets/internal/application/dto"
	"github.com/jhoicas/inventario-sheets/internal/application/usecase"
)

// SummaryHandler maneja el resumen por "ID Similar".
type SummaryHandler struct {
	uc *usecase.SummaryUseCase
}

// NewSummaryHandler construye el handler.
func NewSummaryHandler(uc *usecase.SummaryUseCase) *SummaryHandler {
	return &SummaryHandler{uc: uc}
}

// Summarize godoc
// @Summary      Resumen por ID Similar
// @Description  Totales por clave normalizada. top > 0 ordena descendente por
// @Description  total y trunca (vista de gráfico); sin top conserva el orden
// @Description  de primera aparición.
// @Tags         summary
// @Produce      json
// @Param        top  query  int  false  "Top N grupos para el gráfico"
// @Success      200  {object}  dto.SummaryResponse
// @Router       /api/summary [get]
func (h *SummaryHandler) Summarize(c *fiber.Ctx) error {
	top := c.QueryInt("top", 0)
	out, err := h.uc.Summarize(c.Context(), top)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}

// Detail godoc
// @Summary      Detalle de un grupo del resumen
// @Tags         summary
// @Produce      json
// @Param        id_similar  query  string  true  "Clave del grupo ((sin ID) para filas sin clave)"
// @Success      200  {object}  dto.ItemListResponse
// @Router       /api/summary/detail [get]
func (h *SummaryHandler) Detail(c *fiber.Ctx) error {
	key := c.Query("id_similar")
	if key == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id_similar es requerido"})
	}
	out, err := h.uc.Detail(c.Context(), key)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}

// ReportPDF godoc
// @Summary      Reporte PDF del resumen
// @Tags         summary
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /api/summary/report.pdf [get]
func (h *SummaryHandler) ReportPDF(c *fiber.Ctx) error {
	out, err := h.uc.ReportPDF(c.Context())
	if err != nil {
		return errorJSON(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="resumen_por_id_similar.pdf"`)
	return c.Send(out)
}
