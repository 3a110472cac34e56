package customers

import (
	"github.com/go-core-fx/logger"
	"go.uber.org/fx"
)

func Module() fx.Option {
	return fx.Module(
		"customers",
		logger.WithNamedLogger("customers"),
		fx.Provide(NewRepository, fx.Private),
		fx.Provide(NewService),
	)
}
