package customers

import (
	"go.uber.org/zap"

	"github.com/tillbook/tillbook/internal/records"
)

type Service = records.Service[int64, Customer, CustomerDraft]

func NewService(customers Repository, metrics *records.Metrics, logger *zap.Logger) *Service {
	return records.NewService[int64, Customer, CustomerDraft](
		entity,
		customers,
		Validate,
		records.WithMetrics(metrics),
		records.WithLogger(logger),
	)
}
