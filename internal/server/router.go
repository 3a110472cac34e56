package server

import (
	"github.com/go-core-fx/fiberfx/handler"
	"github.com/go-core-fx/fiberfx/validation"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/tillbook/tillbook/pkg/openapifx"
)

// SetupRoutes mounts the health endpoint, the docs and every record handler
// under /api/v1.
func SetupRoutes(
	app *fiber.App,
	healthHandler handler.Handler,
	openapiHandler *openapifx.Handler,
	handlers []handler.Handler,
	logger *zap.Logger,
) {
	healthHandler.Register(app)

	// Version 1 API group
	v1 := app.Group("/api/v1")
	v1.Use(requestLogger(logger))

	openapiHandler.Register(v1.Group("/docs"))

	v1.Use(validation.Middleware)

	for _, h := range handlers {
		h.Register(v1)
	}
}
