package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appopname "github.com/amalindouser/stok-opname/internal/application/opname"
	"github.com/amalindouser/stok-opname/internal/application/report"
	"github.com/amalindouser/stok-opname/internal/domain/opname"
	"github.com/amalindouser/stok-opname/internal/domain/repository"
	"github.com/amalindouser/stok-opname/internal/infrastructure/excel"
	infrapdf "github.com/amalindouser/stok-opname/internal/infrastructure/pdf"
	"github.com/amalindouser/stok-opname/internal/infrastructure/postgres"
	"github.com/amalindouser/stok-opname/internal/infrastructure/sqlite"
	httpRouter "github.com/amalindouser/stok-opname/internal/interfaces/http"
	"github.com/amalindouser/stok-opname/pkg/config"
	"github.com/amalindouser/stok-opname/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("backend", cfg.Storage.Backend).
		Str("catalog", cfg.Catalog.Source).
		Msg("starting application")

	ctx := context.Background()

	// Storage backend: catalog reads and record appends go through the same
	// ports regardless of what sits behind them.
	var (
		catalogRepo repository.CatalogRepository
		opnameRepo  repository.OpnameRepository
	)
	switch cfg.Storage.Backend {
	case config.BackendPostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("connect to PostgreSQL")
		}
		defer pool.Close()
		if err := postgres.EnsureSchema(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("bootstrap PostgreSQL schema")
		}
		catalogRepo = postgres.NewCatalogRepository(pool)
		opnameRepo = postgres.NewOpnameRepository(pool)
	case config.BackendSQLite:
		store, err := sqlite.Open(ctx, cfg.Storage.SQLitePath)
		if err != nil {
			log.Fatal().Err(err).Msg("open SQLite database")
		}
		defer func() { _ = store.Close() }()
		catalogRepo = sqlite.NewCatalogRepository(store)
		opnameRepo = sqlite.NewOpnameRepository(store)
	}

	// The excel variant replaces only the catalog side; records still go to
	// the selected backend.
	var excelSource *excel.CatalogSource
	if cfg.Catalog.Source == config.CatalogSourceExcel {
		excelSource, err = excel.Load(cfg.Catalog.File)
		if err != nil {
			log.Fatal().Err(err).Str("file", cfg.Catalog.File).Msg("load excel catalog")
		}
		catalogRepo = excelSource
		log.Info().Str("file", excelSource.Path()).Int("items", excelSource.Len()).Msg("excel catalog indexed")
	}

	builder := opname.NewBatchBuilder(opname.NewBatchIDGenerator())
	scanUC := appopname.NewScanUseCase(catalogRepo)
	submitUC := appopname.NewSubmitBatchUseCase(builder, opnameRepo)
	reportUC := report.NewGenerateUseCase(infrapdf.NewMarotoReportGenerator())

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30, // PDF responses can be large
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ScanUC:    scanUC,
		SubmitUC:  submitUC,
		ReportUC:  reportUC,
		Catalog:   excelSource,
		UploadDir: cfg.Catalog.UploadDir,
		Log:       log,
		Now:       time.Now,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, closing server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}
