package server

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const headerRequestID = "X-Request-ID"

// requestLogger tags every request with an id and logs one line when it
// completes.
func requestLogger(logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		started := time.Now()

		requestID := c.Get(headerRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(headerRequestID, requestID)

		err := c.Next()

		fields := []zap.Field{
			zap.String("request_id", requestID),
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("latency", time.Since(started)),
		}
		if err != nil {
			logger.Warn("request failed", append(fields, zap.Error(err))...)
			return err
		}

		logger.Info("request", fields...)
		return nil
	}
}
