package categories

import (
	"go.uber.org/zap"

	"github.com/tillbook/tillbook/internal/records"
)

type Service = records.Service[int64, Category, CategoryDraft]

func NewService(categories Repository, metrics *records.Metrics, logger *zap.Logger) *Service {
	return records.NewService[int64, Category, CategoryDraft](
		entity,
		categories,
		Validate,
		records.WithMetrics(metrics),
		records.WithLogger(logger),
	)
}
