package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-sheets/internal/application/dto"
	"github.com/jhoicas/inventario-sheets/internal/application/usecase"
)

// QRHandler genera códigos QR por ID de inventario.
type QRHandler struct {
	qr    *usecase.QRUseCase
	items *usecase.ItemUseCase
}

// NewQRHandler construye el handler.
func NewQRHandler(qr *usecase.QRUseCase, items *usecase.ItemUseCase) *QRHandler {
	return &QRHandler{qr: qr, items: items}
}

// PNG godoc
// @Summary      Imagen QR de un artículo
// @Description  Codifica BASE_URL?id=<ID> si hay BASE_URL configurada; si no,
// @Description  el ID a secas.
// @Tags         qr
// @Produce      image/png
// @Param        id    path   string  true   "ID del artículo"
// @Param        size  query  int     false  "Lado en píxeles (por defecto 220)"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/items/{id}/qr [get]
func (h *QRHandler) PNG(c *fiber.Ctx) error {
	id := c.Params("id")
	item, err := h.items.GetByID(c.Context(), id)
	if err != nil {
		return errorJSON(c, err)
	}
	if item == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "artículo no encontrado"})
	}
	size := c.QueryInt("size", usecase.DefaultQRSize)
	out, err := h.qr.PNG(id, size)
	if err != nil {
		return errorJSON(c, err)
	}
	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(out)
}

// Payload godoc
// @Summary      Contenido que codifica el QR de un artículo
// @Tags         qr
// @Produce      json
// @Param        id  path  string  true  "ID del artículo"
// @Success      200  {object}  dto.QRPayloadResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/items/{id}/qr/payload [get]
func (h *QRHandler) Payload(c *fiber.Ctx) error {
	id := c.Params("id")
	item, err := h.items.GetByID(c.Context(), id)
	if err != nil {
		return errorJSON(c, err)
	}
	if item == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "artículo no encontrado"})
	}
	return c.JSON(dto.QRPayloadResponse{ID: id, Payload: h.qr.Payload(id)})
}
