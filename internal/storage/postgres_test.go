//go:build integration

package storage_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/tillbook/tillbook/internal/storage"
)

func TestPostgresStore(t *testing.T) {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("tillbook"),
		postgres.WithUsername("tillbook"),
		postgres.WithPassword("tillbook"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(time.Minute),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	runStoreSuite(t, func(t *testing.T) *storage.Backend {
		backend := connect(t, storage.Config{Driver: storage.DriverPostgres, DSN: dsn})

		// subtests share the database
		_, err := backend.SQL().ExecContext(ctx, "DROP TABLE IF EXISTS items")
		require.NoError(t, err)

		return backend
	})
}
