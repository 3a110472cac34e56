package storage

import (
	"github.com/go-core-fx/logger"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func Module() fx.Option {
	return fx.Module(
		"storage",
		logger.WithNamedLogger("storage"),
		fx.Provide(NewBackend),
		fx.Invoke(func(backend *Backend, logger *zap.Logger) {
			logger.Info("storage ready", zap.String("driver", backend.Driver()))
		}),
	)
}
