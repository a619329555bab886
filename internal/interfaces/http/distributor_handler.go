package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mobileshop/pos-api/internal/application/dto"
	"github.com/mobileshop/pos-api/internal/application/usecase"
)

// DistributorHandler handles distributor endpoints (protected).
type DistributorHandler struct {
	uc *usecase.DistributorUseCase
}

// NewDistributorHandler builds the handler.
func NewDistributorHandler(uc *usecase.DistributorUseCase) *DistributorHandler {
	return &DistributorHandler{uc: uc}
}

// Create creates a distributor.
// POST /api/distributors
func (h *DistributorHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateDistributorRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "invalid request body")
	}
	distributor, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(distributor)
}

// List lists distributors alphabetically.
// GET /api/distributors
func (h *DistributorHandler) List(c *fiber.Ctx) error {
	distributors, err := h.uc.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(distributors)
}

// Update updates a distributor.
// PUT /api/distributors/:id
func (h *DistributorHandler) Update(c *fiber.Ctx) error {
	var in dto.CreateDistributorRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "invalid request body")
	}
	distributor, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	if distributor == nil {
		return notFound(c, "distributor")
	}
	return c.JSON(distributor)
}

// Delete deletes a distributor.
// DELETE /api/distributors/:id
func (h *DistributorHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}
