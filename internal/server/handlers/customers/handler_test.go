package customers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/tillbook/tillbook/internal/customers"
	"github.com/tillbook/tillbook/internal/records"
	handlers "github.com/tillbook/tillbook/internal/server/handlers/customers"
	"github.com/tillbook/tillbook/internal/storage"
)

func TestHandler_Create(t *testing.T) {
	logger := zaptest.NewLogger(t)

	backend, err := storage.Connect(context.Background(), storage.Config{Driver: storage.DriverSQLite, DataDir: t.TempDir()}, logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = backend.Close() })

	repo, err := customers.NewRepository(backend, logger)
	require.NoError(t, err)

	app := fiber.New()
	handlers.NewHandler(customers.NewService(repo, nil, logger), validator.New(), logger).Register(app)

	tests := []struct {
		name    string
		body    string
		code    int
		message string
	}{
		{"created", `{"firstName":"Ann","lastName":"Lee","phone":"555-0100"}`, fiber.StatusCreated, "created"},
		{"blank first name", `{"firstName":"","lastName":"Lee"}`, fiber.StatusBadRequest, "first name is required"},
		{"phone too long", `{"firstName":"Ann","phone":"+1 555 0100 0000 99"}`, fiber.StatusBadRequest, "phone must be at most 15 characters"},
		{"last name too long", `{"firstName":"Ann","lastName":"Abcdefghijklmnopq"}`, fiber.StatusBadRequest, "lastName must be at most 15 characters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/customers", strings.NewReader(tt.body))
			req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

			resp, err := app.Test(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			var env records.Envelope
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))

			assert.Equal(t, tt.code, resp.StatusCode)
			assert.Equal(t, tt.message, env.Message)
		})
	}
}
