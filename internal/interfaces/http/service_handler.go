package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mobileshop/pos-api/internal/application/dto"
	"github.com/mobileshop/pos-api/internal/application/usecase"
)

// ServiceHandler handles repair service ticket endpoints (protected).
type ServiceHandler struct {
	uc *usecase.ServiceUseCase
}

// NewServiceHandler builds the handler.
func NewServiceHandler(uc *usecase.ServiceUseCase) *ServiceHandler {
	return &ServiceHandler{uc: uc}
}

// Create opens a service ticket.
// POST /api/services
func (h *ServiceHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateServiceRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "invalid request body")
	}
	ticket, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(ticket)
}

// GetByID returns one ticket.
// GET /api/services/:id
func (h *ServiceHandler) GetByID(c *fiber.Ctx) error {
	ticket, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if ticket == nil {
		return notFound(c, "service")
	}
	return c.JSON(ticket)
}

// List lists tickets. ?status= filters to one status.
// GET /api/services
func (h *ServiceHandler) List(c *fiber.Ctx) error {
	tickets, err := h.uc.List(c.Query("status"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(tickets)
}

// Update updates a ticket.
// PUT /api/services/:id
func (h *ServiceHandler) Update(c *fiber.Ctx) error {
	var in dto.CreateServiceRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "invalid request body")
	}
	ticket, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	if ticket == nil {
		return notFound(c, "service")
	}
	return c.JSON(ticket)
}

// Delete deletes a ticket.
// DELETE /api/services/:id
func (h *ServiceHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}
