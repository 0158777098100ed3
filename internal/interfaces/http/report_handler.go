package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/amalindouser/stok-opname/internal/application/dto"
	"github.com/amalindouser/stok-opname/internal/application/report"
)

// ReportHandler serves the printable opname report.
type ReportHandler struct {
	generate *report.GenerateUseCase
	log      zerolog.Logger
	now      func() time.Time
}

// NewReportHandler builds the handler.
func NewReportHandler(generate *report.GenerateUseCase, log zerolog.Logger, now func() time.Time) *ReportHandler {
	return &ReportHandler{generate: generate, log: log, now: now}
}

// Generate renders the submitted item list as a downloadable A4 PDF. An
// empty list is a validation error and produces no file.
func (h *ReportHandler) Generate(c *fiber.Ctx) error {
	var in dto.ReportRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "body tidak valid"})
	}

	pdf, filename, err := h.generate.Generate(c.Context(), in, h.now())
	if err != nil {
		return fail(c, err)
	}

	h.log.Info().Str("file", filename).Int("rows", len(in.Items)).Msg("laporan opname dibuat")
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdf)
}
