package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/MuhamadAgungGumelar/ezcare-ai-be/internal/core/store"
)

const pingTimeout = 3 * time.Second

type HealthHandler struct {
	store store.Store
}

func NewHealthHandler(s store.Store) *HealthHandler {
	return &HealthHandler{store: s}
}

// GetHealth godoc
// @Summary Service health check
// @Description Always healthy while the process serves; store reports reachability
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (h *HealthHandler) GetHealth(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), pingTimeout)
	defer cancel()

	storeStatus := "ok"
	if err := h.store.Ping(ctx); err != nil {
		log.Warn().Err(err).Str("backend", h.store.Name()).Msg("⚠️ Store unreachable")
		storeStatus = "unreachable"
	}

	return c.JSON(fiber.Map{
		"status": "healthy",
		"store":  storeStatus,
	})
}
