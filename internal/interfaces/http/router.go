package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	appopname "github.com/amalindouser/stok-opname/internal/application/opname"
	"github.com/amalindouser/stok-opname/internal/application/report"
	"github.com/amalindouser/stok-opname/internal/infrastructure/excel"
)

// RouterDeps are the router's dependencies.
type RouterDeps struct {
	ScanUC    *appopname.ScanUseCase
	SubmitUC  *appopname.SubmitBatchUseCase
	ReportUC  *report.GenerateUseCase
	Catalog   *excel.CatalogSource // nil unless the excel variant is active
	UploadDir string
	Log       zerolog.Logger
	Now       func() time.Time
}

// Router registers the API routes.
func Router(app *fiber.App, deps RouterDeps) {
	now := deps.Now
	if now == nil {
		now = time.Now
	}

	api := app.Group("/api")

	opnameGroup := api.Group("/opname")
	opnameHandler := NewOpnameHandler(deps.ScanUC, deps.SubmitUC, deps.Log, now)
	opnameGroup.Post("/scan", opnameHandler.Scan)
	opnameGroup.Post("/", opnameHandler.Save)

	reportHandler := NewReportHandler(deps.ReportUC, deps.Log, now)
	opnameGroup.Post("/report", reportHandler.Generate)

	catalogGroup := api.Group("/catalog")
	uploadHandler := NewUploadHandler(deps.Catalog, deps.UploadDir, deps.Log)
	catalogGroup.Post("/upload", uploadHandler.Upload)
}
