package handler

import (
	"context"
	"psychotest/internal/domain"
	"psychotest/internal/dto"
	"psychotest/internal/logger"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const healthPingTimeout = 2 * time.Second

type HealthHandler struct {
	cache     domain.Cache
	storeName string
}

func NewHealthHandler(cache domain.Cache, storeName string) *HealthHandler {
	return &HealthHandler{cache: cache, storeName: storeName}
}

// Check godoc
// @Summary Health check
// @Description Reports whether the session store is reachable
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Failure 503 {object} dto.HealthResponse
// @Router /healthz [get]
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	resp := dto.HealthResponse{Status: "ok", SessionStore: h.storeName}
	if h.cache == nil {
		return c.JSON(resp)
	}

	ctx, cancel := context.WithTimeout(c.UserContext(), healthPingTimeout)
	defer cancel()
	if err := h.cache.Ping(ctx); err != nil {
		logger.Get().Warn("Session store ping failed", zap.String("store", h.storeName), zap.Error(err))
		resp.Status = "unavailable"
		return c.Status(fiber.StatusServiceUnavailable).JSON(resp)
	}
	return c.JSON(resp)
}
