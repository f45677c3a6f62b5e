package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const RequestIDHeader = "X-Request-ID"

// RequestID propagates the client's X-Request-ID or generates one, stores it
// in c.Locals("requestID") and echoes it in the response.
func RequestID(logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(RequestIDHeader)
		if id == "" {
			generated, err := uuid.NewV7()
			if err != nil {
				logger.Warn("Failed to generate request id", zap.Error(err))
				generated = uuid.New()
			}
			id = generated.String()
		}

		c.Locals("requestID", id)
		c.Set(RequestIDHeader, id)
		return c.Next()
	}
}
