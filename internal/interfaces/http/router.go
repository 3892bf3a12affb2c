package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-sheets/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ItemUC    *usecase.ItemUseCase
	SummaryUC *usecase.SummaryUseCase
	ExportUC  *usecase.ExportUseCase
	QRUC      *usecase.QRUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Items (CRUD + QR)
	items := api.Group("/items")
	itemHandler := NewItemHandler(deps.ItemUC)
	items.Post("/", itemHandler.Create)
	items.Get("/", itemHandler.List)
	items.Get("/:id", itemHandler.GetByID)
	items.Put("/:id", itemHandler.Update)
	items.Delete("/:id", itemHandler.Delete)

	qrHandler := NewQRHandler(deps.QRUC, deps.ItemUC)
	items.Get("/:id/qr", qrHandler.PNG)
	items.Get("/:id/qr/payload", qrHandler.Payload)

	// Resumen por ID Similar
	summary := api.Group("/summary")
	summaryHandler := NewSummaryHandler(deps.SummaryUC)
	exportHandler := NewExportHandler(deps.ExportUC)
	summary.Get("/", summaryHandler.Summarize)
	summary.Get("/detail", summaryHandler.Detail)
	summary.Get("/export.csv", exportHandler.SummaryCSV)
	summary.Get("/report.pdf", summaryHandler.ReportPDF)

	// Exportar / Respaldo
	export := api.Group("/export")
	export.Get("/inventario.csv", exportHandler.CSV)
	export.Get("/inventario.xlsx", exportHandler.XLSX)
}
