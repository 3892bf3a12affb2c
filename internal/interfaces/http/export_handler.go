package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-sheets/internal/application/usecase"
)

// ExportHandler exportación/respaldo de la vista filtrada.
type ExportHandler struct {
	uc *usecase.ExportUseCase
}

// NewExportHandler construye el handler.
func NewExportHandler(uc *usecase.ExportUseCase) *ExportHandler {
	return &ExportHandler{uc: uc}
}

// CSV godoc
// @Summary      Exportar la vista filtrada como CSV
// @Description  col selecciona columnas (repetible, en el orden pedido);
// @Description  sin col exporta todas en el orden fijo del almacén.
// @Tags         export
// @Produce      text/csv
// @Param        q         query  string  false  "Texto libre"
// @Param        location  query  string  false  "Ubicación Física (repetible)"
// @Param        col       query  string  false  "Columna a exportar (repetible)"
// @Success      200  {file}  binary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/export/inventario.csv [get]
func (h *ExportHandler) CSV(c *fiber.Ctx) error {
	var cols []string
	for _, col := range c.Context().QueryArgs().PeekMulti("col") {
		cols = append(cols, string(col))
	}
	out, err := h.uc.CSV(c.Context(), filtersFromQuery(c), cols)
	if err != nil {
		return errorJSON(c, err)
	}
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="inventario.csv"`)
	return c.Send(out)
}

// XLSX godoc
// @Summary      Exportar la vista filtrada como libro XLSX
// @Tags         export
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        q         query  string  false  "Texto libre"
// @Param        location  query  string  false  "Ubicación Física (repetible)"
// @Success      200  {file}  binary
// @Router       /api/export/inventario.xlsx [get]
func (h *ExportHandler) XLSX(c *fiber.Ctx) error {
	out, err := h.uc.XLSX(c.Context(), filtersFromQuery(c))
	if err != nil {
		return errorJSON(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="inventario.xlsx"`)
	return c.Send(out)
}

// SummaryCSV godoc
// @Summary      Descargar el resumen por ID Similar como CSV
// @Tags         export
// @Produce      text/csv
// @Success      200  {file}  binary
// @Router       /api/summary/export.csv [get]
func (h *ExportHandler) SummaryCSV(c *fiber.Ctx) error {
	out, err := h.uc.SummaryCSV(c.Context())
	if err != nil {
		return errorJSON(c, err)
	}
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="resumen_por_id_similar.csv"`)
	return c.Send(out)
}
