package storage

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/tillbook/tillbook/internal/records"
)

// Open returns the store for schema on backend. On SQL backends the table is
// created when missing.
func Open[T any, D any](
	ctx context.Context,
	backend *Backend,
	schema Schema[T, D],
	logger *zap.Logger,
) (records.Store[int64, T, D], error) {
	if err := schema.validate(); err != nil {
		return nil, err
	}

	logger = logger.With(zap.String("entity", schema.Entity))

	switch {
	case backend.kv != nil:
		return newBadgerStore(backend, schema, logger)
	case backend.db != nil:
		return newSQLStore(ctx, backend, schema, logger)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, backend.driver)
	}
}
