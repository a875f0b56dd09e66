package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/MuhamadAgungGumelar/ezcare-ai-be/internal/modules/health/services"
)

type PricingHandler struct {
	pricingService *services.PricingService
}

func NewPricingHandler(pricingService *services.PricingService) *PricingHandler {
	return &PricingHandler{pricingService: pricingService}
}

// GetPlans godoc
// @Summary Get pricing plans
// @Description Returns stored plans, or the three default plans when none are stored
// @Tags Pricing
// @Produce json
// @Param is_annual query bool false "Annual billing period" default(true)
// @Success 200 {array} models.Plan
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /pricing/plans [get]
func (h *PricingHandler) GetPlans(c *fiber.Ctx) error {
	isAnnual, ok := parseBool(c.Query("is_annual"), true)
	if !ok {
		return fiber.NewError(fiber.StatusBadRequest, "is_annual must be a boolean")
	}

	plans, err := h.pricingService.GetPlans(c.UserContext(), isAnnual)
	if err != nil {
		return storeFailure(c, "Failed to fetch pricing plans", err)
	}
	return c.JSON(plans)
}

// parseBool accepts the usual query spellings of a boolean. An empty value
// yields def.
func parseBool(raw string, def bool) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "":
		return def, true
	case "true", "1", "yes", "on", "t", "y":
		return true, true
	case "false", "0", "no", "off", "f", "n":
		return false, true
	}
	return false, false
}
