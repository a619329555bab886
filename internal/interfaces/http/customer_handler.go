package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mobileshop/pos-api/internal/application/dto"
	"github.com/mobileshop/pos-api/internal/application/usecase"
)

// CustomerHandler handles customer endpoints (protected).
type CustomerHandler struct {
	uc *usecase.CustomerUseCase
}

// NewCustomerHandler builds the handler.
func NewCustomerHandler(uc *usecase.CustomerUseCase) *CustomerHandler {
	return &CustomerHandler{uc: uc}
}

// Create creates a customer.
// POST /api/customers
func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "invalid request body")
	}
	customer, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(customer)
}

// GetByID returns one customer.
// GET /api/customers/:id
func (h *CustomerHandler) GetByID(c *fiber.Ctx) error {
	customer, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if customer == nil {
		return notFound(c, "customer")
	}
	return c.JSON(customer)
}

// List lists customers. ?search= matches name or phone.
// GET /api/customers
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	customers, err := h.uc.List(c.Query("search"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(customers)
}

// Update updates a customer.
// PUT /api/customers/:id
func (h *CustomerHandler) Update(c *fiber.Ctx) error {
	var in dto.CreateCustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "invalid request body")
	}
	customer, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	if customer == nil {
		return notFound(c, "customer")
	}
	return c.JSON(customer)
}

// Delete deletes a customer.
// DELETE /api/customers/:id
func (h *CustomerHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}
