package handlers

import (
	"github.com/gofiber/fiber/v2"

	"mistakebook/internal/services"
	"mistakebook/internal/utils"
)

// SettingsHandler handles settings routes
type SettingsHandler struct {
	Settings *services.SettingsService
}

// GetSettings handles GET /api/settings
// @Summary Get settings
// @Description Returns the settings singleton, creating it with defaults on first access
// @Tags Settings
// @Produce json
// @Success 200 {object} models.Setting
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /settings [get]
func (h *SettingsHandler) GetSettings(c *fiber.Ctx) error {
	settings, err := h.Settings.Get(c.Context())
	if err != nil {
		return sendServiceError(c, err, "settings.get")
	}
	return c.Status(fiber.StatusOK).JSON(settings)
}

// UpdateSettings handles PATCH /api/settings
// @Summary Update settings
// @Description Merges the supplied fields into the settings record
// @Tags Settings
// @Accept json
// @Produce json
// @Param body body services.SettingsPatch true "Fields to update"
// @Success 200 {object} models.Setting
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /settings [patch]
func (h *SettingsHandler) UpdateSettings(c *fiber.Ctx) error {
	var patch services.SettingsPatch
	if err := c.BodyParser(&patch); err != nil {
		return utils.ErrorResponse(c, "invalid request body", fiber.StatusBadRequest, "settings.update")
	}

	settings, err := h.Settings.Update(c.Context(), patch)
	if err != nil {
		return sendServiceError(c, err, "settings.update")
	}

	return c.Status(fiber.StatusOK).JSON(settings)
}

// ResetSettings handles POST /api/settings/reset
// @Summary Reset settings to defaults
// @Tags Settings
// @Produce json
// @Success 200 {object} models.Setting
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /settings/reset [post]
func (h *SettingsHandler) ResetSettings(c *fiber.Ctx) error {
	settings, err := h.Settings.Reset(c.Context())
	if err != nil {
		return sendServiceError(c, err, "settings.reset")
	}
	return c.Status(fiber.StatusOK).JSON(settings)
}
