package handlers

import (
	"errors"

	"recipebox/internal/common"

	"github.com/gofiber/fiber/v2"
)

// respondError translates a service error into a JSON error response using
// the shared sentinel taxonomy.
func respondError(c *fiber.Ctx, message string, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, common.ErrValidation), errors.Is(err, common.ErrPasswordMismatch):
		status = fiber.StatusBadRequest
	case errors.Is(err, common.ErrInvalidCredentials):
		status = fiber.StatusUnauthorized
	case errors.Is(err, common.ErrNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, common.ErrDuplicateEmail), errors.Is(err, common.ErrAlreadyFavorited):
		status = fiber.StatusConflict
	case errors.Is(err, common.ErrMalformedData):
		status = fiber.StatusUnprocessableEntity
	case errors.Is(err, common.ErrStoreUnavailable):
		status = fiber.StatusServiceUnavailable
	}
	return c.Status(status).JSON(fiber.Map{
		"message": message,
		"error":   err.Error(),
	})
}
