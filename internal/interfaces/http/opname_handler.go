package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/amalindouser/stok-opname/internal/application/dto"
	appopname "github.com/amalindouser/stok-opname/internal/application/opname"
)

// OpnameHandler serves the scan and batch-submission endpoints.
type OpnameHandler struct {
	scan   *appopname.ScanUseCase
	submit *appopname.SubmitBatchUseCase
	log    zerolog.Logger
	now    func() time.Time
}

// NewOpnameHandler builds the handler. now is the submission clock;
// pass time.Now outside tests.
func NewOpnameHandler(scan *appopname.ScanUseCase, submit *appopname.SubmitBatchUseCase, log zerolog.Logger, now func() time.Time) *OpnameHandler {
	return &OpnameHandler{scan: scan, submit: submit, log: log, now: now}
}

// Scan resolves an item code against the catalog. Accepts JSON or form
// bodies ({kode}); responds with the catalog item or 400/404/503.
func (h *OpnameHandler) Scan(c *fiber.Ctx) error {
	var in dto.ScanRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "body tidak valid"})
	}

	out, err := h.scan.Scan(c.Context(), in.Kode)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Save submits the accumulated entries as one reconciliation batch. Either
// every entry is persisted or none is.
func (h *OpnameHandler) Save(c *fiber.Ctx) error {
	var in dto.SaveOpnameRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "body tidak valid"})
	}

	submittedAt := h.now()
	if in.SubmittedAt != nil {
		submittedAt = *in.SubmittedAt
	}
	out, err := h.submit.Submit(c.Context(), in, submittedAt)
	if err != nil {
		return fail(c, err)
	}

	h.log.Info().Int("saved", out.Saved).Msg("batch opname tersimpan")
	return c.JSON(out)
}
