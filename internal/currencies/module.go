package currencies

import (
	"github.com/go-core-fx/logger"
	"go.uber.org/fx"
)

func Module() fx.Option {
	return fx.Module(
		"currencies",
		logger.WithNamedLogger("currencies"),
		fx.Provide(NewRepository, fx.Private),
		fx.Provide(NewService),
	)
}
