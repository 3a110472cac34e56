package internal

import (
	"context"

	"github.com/capcom6/go-infra-fx/validator"
	"github.com/go-core-fx/fiberfx"
	"github.com/go-core-fx/fiberfx/health"
	"github.com/go-core-fx/healthfx"
	"github.com/go-core-fx/logger"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/tillbook/tillbook/internal/categories"
	"github.com/tillbook/tillbook/internal/config"
	"github.com/tillbook/tillbook/internal/currencies"
	"github.com/tillbook/tillbook/internal/customers"
	"github.com/tillbook/tillbook/internal/records"
	"github.com/tillbook/tillbook/internal/server"
	"github.com/tillbook/tillbook/internal/storage"
	"github.com/tillbook/tillbook/pkg/openapifx"
)

func Run() {
	fx.New(
		// CORE MODULES
		logger.Module(),
		logger.WithFxDefaultLogger(),
		healthfx.Module(),
		fiberfx.Module(),
		validator.Module,
		openapifx.Module(),
		//
		// APP MODULES
		config.Module(),
		storage.Module(),
		server.Module(),
		//
		// BUSINESS MODULES
		fx.Provide(func() health.Version { return health.Version{Version: "0.1.0", ReleaseID: 1} }),
		fx.Provide(func() prometheus.Registerer { return prometheus.DefaultRegisterer }),
		records.Module(),
		categories.Module(),
		customers.Module(),
		currencies.Module(),
		//
		// LIFECYCLE MANAGEMENT
		fx.Invoke(func(lc fx.Lifecycle, logger *zap.Logger) {
			lc.Append(fx.Hook{
				OnStart: func(_ context.Context) error {
					logger.Info("tillbook application starting up")
					return nil
				},
				OnStop: func(_ context.Context) error {
					logger.Info("tillbook application shutting down")
					return nil
				},
			})
		}),
	).Run()
}
