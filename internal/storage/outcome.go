package storage

import (
	"errors"

	"go.uber.org/zap"

	"github.com/tillbook/tillbook/internal/records"
)

// outcome converts a storage result into an Outcome. Failures are logged here
// and nowhere else.
func outcome[T any](logger *zap.Logger, operation string, value T, err error) records.Outcome[T] {
	if err != nil && !errors.Is(err, records.ErrNotFound) {
		logger.Error("storage operation failed", zap.String("operation", operation), zap.Error(err))
	}

	return records.OutcomeOf(value, err)
}
