package config

import (
	"github.com/go-core-fx/fiberfx"
	"go.uber.org/fx"

	"github.com/tillbook/tillbook/internal/storage"
	"github.com/tillbook/tillbook/pkg/openapifx"
)

func Module() fx.Option {
	return fx.Module(
		"config",
		fx.Provide(New),
		fx.Provide(func(cfg Config) fiberfx.Config {
			return fiberfx.Config{
				Address:     cfg.HTTP.Address,
				ProxyHeader: cfg.HTTP.ProxyHeader,
				Proxies:     cfg.HTTP.Proxies,
			}
		}),
		fx.Provide(func(cfg Config) openapifx.Config {
			return openapifx.Config{
				Enabled:    cfg.HTTP.OpenAPI.Enabled,
				PublicHost: cfg.HTTP.OpenAPI.PublicHost,
				PublicPath: cfg.HTTP.OpenAPI.PublicPath,
			}
		}),
		fx.Provide(func(cfg Config) storage.Config {
			return storage.Config{
				Driver:          cfg.Storage.Driver,
				DataDir:         cfg.Storage.DataDir,
				InMemory:        false,
				DSN:             cfg.Storage.DSN,
				MaxOpenConns:    cfg.Storage.MaxOpenConns,
				MaxIdleConns:    cfg.Storage.MaxIdleConns,
				ConnMaxLifetime: cfg.Storage.ConnMaxLifetime,
			}
		}),
	)
}
