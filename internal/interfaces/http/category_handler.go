package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mobileshop/pos-api/internal/application/dto"
	"github.com/mobileshop/pos-api/internal/application/usecase"
)

// CategoryHandler handles category endpoints (protected).
type CategoryHandler struct {
	uc *usecase.CategoryUseCase
}

// NewCategoryHandler builds the handler.
func NewCategoryHandler(uc *usecase.CategoryUseCase) *CategoryHandler {
	return &CategoryHandler{uc: uc}
}

// Create creates a category.
// POST /api/categories
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "invalid request body")
	}
	category, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(category)
}

// List lists categories alphabetically.
// GET /api/categories
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	categories, err := h.uc.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(categories)
}

// Update renames a category.
// PUT /api/categories/:id
func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	var in dto.CreateCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "invalid request body")
	}
	category, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	if category == nil {
		return notFound(c, "category")
	}
	return c.JSON(category)
}

// Delete deletes a category.
// DELETE /api/categories/:id
func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}
