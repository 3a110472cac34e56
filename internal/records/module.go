package records

import (
	"go.uber.org/fx"
)

func Module() fx.Option {
	return fx.Module(
		"records",
		fx.Provide(NewMetrics),
	)
}
