package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mobileshop/pos-api/internal/application/dto"
	"github.com/mobileshop/pos-api/internal/application/usecase"
)

// PaymentMethodHandler handles payment method endpoints (protected).
type PaymentMethodHandler struct {
	uc *usecase.PaymentMethodUseCase
}

// NewPaymentMethodHandler builds the handler.
func NewPaymentMethodHandler(uc *usecase.PaymentMethodUseCase) *PaymentMethodHandler {
	return &PaymentMethodHandler{uc: uc}
}

// Create creates a payment method.
// POST /api/payment-methods
func (h *PaymentMethodHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePaymentMethodRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "invalid request body")
	}
	method, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(method)
}

// List lists payment methods in POS display order.
// GET /api/payment-methods
func (h *PaymentMethodHandler) List(c *fiber.Ctx) error {
	methods, err := h.uc.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(methods)
}

// Update updates a payment method.
// PUT /api/payment-methods/:id
func (h *PaymentMethodHandler) Update(c *fiber.Ctx) error {
	var in dto.CreatePaymentMethodRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "invalid request body")
	}
	method, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	if method == nil {
		return notFound(c, "payment method")
	}
	return c.JSON(method)
}

// Delete deletes a payment method.
// DELETE /api/payment-methods/:id
func (h *PaymentMethodHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}
