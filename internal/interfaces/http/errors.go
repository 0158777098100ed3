package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/amalindouser/stok-opname/internal/application/dto"
	"github.com/amalindouser/stok-opname/internal/domain"
)

// fail maps a domain error to its HTTP status and error body. Validation is
// 400, a missing catalog row 404, unreachable storage 503; anything
// unrecognized is 500. The message always carries enough detail to display.
func fail(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrEmptyCode),
		errors.Is(err, domain.ErrEmptyBatch),
		errors.Is(err, domain.ErrEmptyReport),
		errors.Is(err, domain.ErrMalformedQuantity):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrItemNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrCatalogSourceFixed):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "SOURCE_FIXED", Message: err.Error()})
	case errors.Is(err, domain.ErrStorageUnavailable):
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "STORAGE", Message: err.Error()})
	case errors.Is(err, domain.ErrRenderFailure):
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "RENDER", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
