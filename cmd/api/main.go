package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	json "github.com/goccy/go-json"
	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/inventario-sheets/internal/application/usecase"
	"github.com/jhoicas/inventario-sheets/internal/domain/repository"
	"github.com/jhoicas/inventario-sheets/internal/infrastructure/csvfile"
	"github.com/jhoicas/inventario-sheets/internal/infrastructure/gsheets"
	infrapdf "github.com/jhoicas/inventario-sheets/internal/infrastructure/pdf"
	httpRouter "github.com/jhoicas/inventario-sheets/internal/interfaces/http"
	"github.com/jhoicas/inventario-sheets/pkg/config"
	"github.com/jhoicas/inventario-sheets/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()

	// Selector de backend: Google Sheets si hay credencial y SHEET_ID;
	// si no, CSV local (modo sin colaboración).
	var repo repository.ItemRepository
	if cfg.GCP.Configured() && cfg.Inventory.SheetID != "" {
		credJSON, err := cfg.GCP.JSON()
		if err != nil {
			log.Fatal().Err(err).Msg("credencial de cuenta de servicio")
		}
		svc, err := gsheets.NewService(ctx, credJSON)
		if err != nil {
			log.Fatal().Err(err).Msg("cliente de Google Sheets")
		}
		sheetRepo := gsheets.NewItemRepository(svc, cfg.Inventory.SheetID, cfg.Inventory.Worksheet)
		if err := sheetRepo.EnsureWorksheet(ctx); err != nil {
			log.Fatal().Err(err).Msg("preparar worksheet")
		}
		repo = sheetRepo
		log.Info().
			Str("sheet_id", cfg.Inventory.SheetID).
			Str("worksheet", cfg.Inventory.Worksheet).
			Msg("backend: Google Sheets")
	} else {
		repo = csvfile.NewItemRepository(cfg.Inventory.CSVPath)
		log.Warn().
			Str("path", cfg.Inventory.CSVPath).
			Msg("backend: CSV local (sin credencial de Google Sheets)")
	}

	pdfGenerator := infrapdf.NewMarotoSummaryGenerator()

	itemUC := usecase.NewItemUseCase(repo)
	summaryUC := usecase.NewSummaryUseCase(repo, pdfGenerator, cfg.App.BaseURL)
	exportUC := usecase.NewExportUseCase(repo)
	qrUC := usecase.NewQRUseCase(cfg.App.BaseURL)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		JSONEncoder:  json.Marshal,
		JSONDecoder:  json.Unmarshal,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Inventario API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ItemUC:    itemUC,
		SummaryUC: summaryUC,
		ExportUC:  exportUC,
		QRUC:      qrUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
