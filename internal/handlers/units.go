package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"mistakebook/internal/services"
	"mistakebook/internal/utils"
)

// UnitHandler handles unit routes
type UnitHandler struct {
	Units *services.UnitService
}

// CreateUnitInput is the POST /api/units request body.
type CreateUnitInput struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}

// ListUnits handles GET /api/units
// @Summary List units
// @Tags Units
// @Produce json
// @Success 200 {array} models.Unit
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /units [get]
func (h *UnitHandler) ListUnits(c *fiber.Ctx) error {
	units, err := h.Units.All(c.Context())
	if err != nil {
		return sendServiceError(c, err, "units.list")
	}
	return c.Status(fiber.StatusOK).JSON(units)
}

// CreateUnit handles POST /api/units
// @Summary Create a custom unit
// @Description Fails with DUPLICATE_UNIT_NAME when the category already has a unit with this name (case-insensitive)
// @Tags Units
// @Accept json
// @Produce json
// @Param body body CreateUnitInput true "Unit name and category"
// @Success 201 {object} models.Unit
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 409 {object} utils.ErrorResponseStruct
// @Router /units [post]
func (h *UnitHandler) CreateUnit(c *fiber.Ctx) error {
	var input CreateUnitInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, "invalid request body", fiber.StatusBadRequest, "units.create")
	}

	input.Name = strings.TrimSpace(input.Name)
	input.Category = strings.TrimSpace(input.Category)
	if input.Name == "" || input.Category == "" {
		return utils.ErrorResponse(c, "name and category are required", fiber.StatusBadRequest, "units.create")
	}

	unit, err := h.Units.Create(c.Context(), input.Name, input.Category)
	if err != nil {
		return sendServiceError(c, err, "units.create")
	}

	return c.Status(fiber.StatusCreated).JSON(unit)
}

// DeleteUnit handles DELETE /api/units/:id
// @Summary Delete a unit
// @Description Fails with UNIT_IN_USE (and the referencing photo count) while photos still use the unit
// @Tags Units
// @Produce json
// @Param id path string true "Unit ID"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 409 {object} utils.ErrorResponseStruct
// @Router /units/{id} [delete]
func (h *UnitHandler) DeleteUnit(c *fiber.Ctx) error {
	if err := h.Units.Delete(c.Context(), c.Params("id")); err != nil {
		return sendServiceError(c, err, "units.delete")
	}
	return utils.MutationSuccessResponse(c)
}
