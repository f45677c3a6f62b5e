package handlers

import (
	"llm-chatbot/internal/dto"
	"llm-chatbot/pkg/database"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type HealthHandler struct {
	db     *database.DB
	logger *zap.Logger
}

func NewHealthHandler(db *database.DB, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{
		db:     db,
		logger: logger,
	}
}

// Health godoc
// @Summary Liveness check
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	return c.JSON(dto.HealthResponse{
		Status:  "ok",
		Message: "Service is running ✅",
	})
}

// TestDB godoc
// @Summary Database connectivity check
// @Tags health
// @Produce json
// @Success 200 {object} dto.DBStatusResponse
// @Router /test-db [get]
func (h *HealthHandler) TestDB(c *fiber.Ctx) error {
	if err := h.db.PingContext(c.UserContext()); err != nil {
		h.logger.Warn("Database ping failed", zap.Error(err))
		return c.JSON(dto.DBStatusResponse{DBStatus: "error ❌ - " + err.Error()})
	}
	return c.JSON(dto.DBStatusResponse{DBStatus: "connected ✅"})
}
