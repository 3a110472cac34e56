package validation_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tillbook/tillbook/internal/records"
	"github.com/tillbook/tillbook/internal/server/validation"
)

type request struct {
	FirstName *string `json:"firstName" validate:"omitempty,max=3"`
	Email     *string `json:"email"     validate:"omitempty,email"`
}

func TestMessage(t *testing.T) {
	v := validator.New()
	long, email := "Anna", "not-an-email"

	assert.Equal(t, "firstName must be at most 3 characters", validation.Message(v.Struct(request{FirstName: &long})))
	assert.Equal(t, "email is invalid", validation.Message(v.Struct(request{Email: &email})))
	assert.Equal(t, "invalid request body", validation.Message(errors.New("boom")))
}

func TestDecorateWithBody(t *testing.T) {
	app := fiber.New()
	app.Post("/", validation.DecorateWithBody(validator.New(), func(c *fiber.Ctx, req *request) error {
		return c.JSON(records.Single("created", req))
	}))

	tests := []struct {
		name    string
		body    string
		code    int
		message string
	}{
		{"accepted", `{"firstName":"Ann"}`, fiber.StatusOK, "created"},
		{"too long", `{"firstName":"Anna"}`, fiber.StatusBadRequest, "firstName must be at most 3 characters"},
		{"malformed", `{"firstName":`, fiber.StatusBadRequest, "invalid request body"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

			resp, err := app.Test(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			var env records.Envelope
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))

			assert.Equal(t, tt.code, resp.StatusCode)
			assert.Equal(t, tt.message, env.Message)
			if tt.code == fiber.StatusBadRequest {
				assert.Equal(t, records.StatusFailed, env.Status)
				assert.Equal(t, []any{}, env.Data)
			}
		})
	}
}
