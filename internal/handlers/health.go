package handlers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"mistakebook/internal/services"
)

// HealthHandler handles the health/storage report route
type HealthHandler struct {
	DB         *gorm.DB
	QuotaBytes int64
}

// GetHealth handles GET /health
// @Summary Health and storage report
// @Description Database reachability plus storage usage and backup warnings
// @Tags Health
// @Produce json
// @Success 200 {object} services.HealthResult
// @Failure 503 {object} services.HealthResult
// @Router /health [get]
func (h *HealthHandler) GetHealth(c *fiber.Ctx) error {
	result := services.HealthCheck(c.Context(), h.DB, h.QuotaBytes)
	status := fiber.StatusOK
	if result.Status != "healthy" {
		status = fiber.StatusServiceUnavailable
	}
	return c.Status(status).JSON(result)
}
