package validation

import (
	"errors"
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/tillbook/tillbook/internal/records"
)

const messageInvalidBody = "invalid request body"

// DecorateWithBody parses the JSON body into T and validates it before
// calling next. Rejected bodies are answered with a failed envelope and 400.
func DecorateWithBody[T any](v *validator.Validate, next func(c *fiber.Ctx, req *T) error) fiber.Handler {
	return func(c *fiber.Ctx) error {
		req := new(T)

		if err := c.BodyParser(req); err != nil {
			return reject(c, messageInvalidBody)
		}

		if err := v.Struct(req); err != nil {
			return reject(c, Message(err))
		}

		return next(c, req)
	}
}

// Message turns a validator error into a caller facing sentence about the
// first failed field.
func Message(err error) string {
	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) || len(fieldErrors) == 0 {
		return messageInvalidBody
	}

	fe := fieldErrors[0]
	field := lowerFirst(fe.Field())

	if fe.Tag() == "max" {
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	}

	return field + " is invalid"
}

func reject(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(records.Fail(records.KindInvalid, message))
}

func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}

	return string(unicode.ToLower(r)) + s[size:]
}
