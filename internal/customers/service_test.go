package customers_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/tillbook/tillbook/internal/customers"
	"github.com/tillbook/tillbook/internal/records"
	"github.com/tillbook/tillbook/internal/storage"
)

func TestService_SearchBothNames(t *testing.T) {
	ctx := context.Background()
	logger := zaptest.NewLogger(t)

	backend, err := storage.Connect(ctx, storage.Config{Driver: storage.DriverSQLite, DataDir: t.TempDir()}, logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = backend.Close() })

	repo, err := customers.NewRepository(backend, logger)
	require.NoError(t, err)
	svc := customers.NewService(repo, nil, logger)

	for _, draft := range []customers.CustomerDraft{
		{FirstName: ptr("Ann"), LastName: ptr("Smith")},
		{FirstName: ptr("Bob"), LastName: ptr("Annister")},
		{FirstName: ptr("Cy"), LastName: ptr("Doe"), Phone: ptr("ann-line")},
	} {
		require.Equal(t, records.StatusSuccess, svc.Create(ctx, draft).Status)
	}

	env := svc.Search(ctx, "ANN")
	assert.Equal(t, records.StatusSuccess, env.Status)
	assert.Equal(t, 2, env.RowCount, "phone is not searchable")

	env = svc.Search(ctx, "")
	assert.Equal(t, svc.List(ctx), env)

	env = svc.Create(ctx, customers.CustomerDraft{LastName: ptr("Nobody")})
	assert.Equal(t, records.StatusFailed, env.Status)
	assert.Equal(t, "first name is required", env.Message)
	assert.Equal(t, 3, svc.List(ctx).RowCount)
}
