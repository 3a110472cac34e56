package server

import (
	"github.com/go-core-fx/fiberfx"
	"github.com/go-core-fx/fiberfx/handler"
	"github.com/go-core-fx/fiberfx/health"
	"github.com/go-core-fx/logger"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/tillbook/tillbook/internal/server/docs"
	"github.com/tillbook/tillbook/internal/server/handlers/categories"
	"github.com/tillbook/tillbook/internal/server/handlers/currencies"
	"github.com/tillbook/tillbook/internal/server/handlers/customers"
	"github.com/tillbook/tillbook/pkg/openapifx"
)

func Module() fx.Option {
	return fx.Module(
		"server",
		logger.WithNamedLogger("server"),

		fx.Provide(func(log *zap.Logger) fiberfx.Options {
			opts := fiberfx.Options{}
			opts.WithErrorHandler(fiberfx.NewJSONErrorHandler(log))
			opts.WithMetrics()
			return opts
		}),
		fx.Supply(docs.SwaggerInfo),

		fx.Provide(
			fx.Annotate(health.NewHandler, fx.ResultTags(`name:"health-handler"`)), fx.Private,
			fx.Annotate(categories.NewHandler, fx.ResultTags(`group:"handlers"`)), fx.Private,
			fx.Annotate(customers.NewHandler, fx.ResultTags(`group:"handlers"`)), fx.Private,
			fx.Annotate(currencies.NewHandler, fx.ResultTags(`group:"handlers"`)), fx.Private,
		),

		fx.Invoke(
			fx.Annotate(
				func(handlers []handler.Handler, healthHandler handler.Handler, openapiHandler *openapifx.Handler, app *fiber.App, log *zap.Logger) {
					SetupRoutes(app, healthHandler, openapiHandler, handlers, log)
				},
				fx.ParamTags(`group:"handlers"`, `name:"health-handler"`),
			),
		),
	)
}
