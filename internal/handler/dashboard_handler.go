package handler

import (
	"seni-kraf-manik/internal/service"

	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	service service.CatalogService
}

func NewDashboardHandler(s service.CatalogService) *DashboardHandler {
	return &DashboardHandler{service: s}
}

// GetDashboardStats returns overview statistics
func (h *DashboardHandler) GetDashboardStats(c *fiber.Ctx) error {
	stats, err := h.service.Summary()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch dashboard stats"})
	}

	return c.JSON(stats)
}
