package categories

import (
	"github.com/go-core-fx/logger"
	"go.uber.org/fx"
)

func Module() fx.Option {
	return fx.Module(
		"categories",
		logger.WithNamedLogger("categories"),
		fx.Provide(NewRepository, fx.Private),
		fx.Provide(NewService),
	)
}
