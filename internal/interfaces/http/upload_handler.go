package http

import (
	"os"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/amalindouser/stok-opname/internal/application/dto"
	"github.com/amalindouser/stok-opname/internal/domain"
	"github.com/amalindouser/stok-opname/internal/infrastructure/excel"
)

// UploadHandler swaps the active excel catalog file at runtime. The handler
// owns the source handle lifecycle; the reconciliation core only ever sees
// "the current catalog".
type UploadHandler struct {
	source    *excel.CatalogSource // nil when the catalog is database-backed
	uploadDir string
	log       zerolog.Logger
}

// NewUploadHandler builds the handler. source may be nil; uploads are then
// rejected with 409.
func NewUploadHandler(source *excel.CatalogSource, uploadDir string, log zerolog.Logger) *UploadHandler {
	return &UploadHandler{source: source, uploadDir: uploadDir, log: log}
}

// Upload stages the received spreadsheet and swaps it in as the active
// catalog. A file that fails to index leaves the previous catalog active.
func (h *UploadHandler) Upload(c *fiber.Ctx) error {
	if h.source == nil {
		return fail(c, domain.ErrCatalogSourceFixed)
	}

	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_FILE", Message: "file katalog wajib diunggah"})
	}

	if err := os.MkdirAll(h.uploadDir, 0o750); err != nil {
		return fail(c, err)
	}
	staged := filepath.Join(h.uploadDir, uuid.New().String()+".xlsx")
	if err := c.SaveFile(file, staged); err != nil {
		return fail(c, err)
	}

	prev := h.source.Path()
	if err := h.source.Swap(staged); err != nil {
		_ = os.Remove(staged)
		return fail(c, err)
	}
	// The replaced file only needs to outlive the swap. Files outside the
	// staging dir (the boot-time catalog) are not ours to delete.
	if prev != staged && filepath.Dir(prev) == filepath.Clean(h.uploadDir) {
		_ = os.Remove(prev)
	}

	h.log.Info().Str("file", file.Filename).Int("items", h.source.Len()).Msg("katalog aktif diganti")
	return c.JSON(fiber.Map{
		"success": true,
		"message": "katalog aktif berhasil diganti",
		"items":   h.source.Len(),
	})
}
