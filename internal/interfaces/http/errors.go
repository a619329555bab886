package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/mobileshop/pos-api/internal/application/dto"
	"github.com/mobileshop/pos-api/internal/domain"
)

// respondError maps domain errors to HTTP statuses. The body always has the
// one-field {error} shape; the message is the error text itself so the POS
// screen can show it verbatim (insufficient stock names the product).
func respondError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrInsufficientStock),
		errors.Is(err, domain.ErrNoValidItems):
		status = fiber.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrUserNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, domain.ErrUnauthorized):
		status = fiber.StatusUnauthorized
	case errors.Is(err, domain.ErrForbidden):
		status = fiber.StatusForbidden
	case errors.Is(err, domain.ErrDuplicate), errors.Is(err, domain.ErrConflict):
		status = fiber.StatusConflict
	}
	return c.Status(status).JSON(dto.ErrorResponse{Error: err.Error()})
}

func notFound(c *fiber.Ctx, what string) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: what + " not found"})
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: msg})
}
