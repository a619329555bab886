package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mobileshop/pos-api/internal/application/usecase"
)

// DashboardHandler handles the dashboard endpoint (protected).
type DashboardHandler struct {
	uc *usecase.DashboardUseCase
}

// NewDashboardHandler builds the handler.
func NewDashboardHandler(uc *usecase.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Stats returns today's and this month's sales plus open counters.
// GET /api/dashboard/stats
func (h *DashboardHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.uc.Stats(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(stats)
}
