package currencies

import (
	"go.uber.org/zap"

	"github.com/tillbook/tillbook/internal/records"
)

type Service = records.Service[int64, Currency, CurrencyDraft]

func NewService(currencies Repository, metrics *records.Metrics, logger *zap.Logger) *Service {
	return records.NewService[int64, Currency, CurrencyDraft](
		entity,
		currencies,
		Validate,
		records.WithMetrics(metrics),
		records.WithLogger(logger),
	)
}
