// Package entities holds the HTTP plumbing shared by every record handler.
package entities

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/tillbook/tillbook/internal/records"
)

const messageInvalidID = "invalid id"

// Base adapts a records.Service to fiber. It never inspects payloads, it only
// maps envelopes to status codes.
type Base[T any, D any] struct {
	svc *records.Service[int64, T, D]

	logger *zap.Logger
}

func NewBase[T any, D any](svc *records.Service[int64, T, D], logger *zap.Logger) *Base[T, D] {
	return &Base[T, D]{
		svc:    svc,
		logger: logger,
	}
}

func (b *Base[T, D]) List(c *fiber.Ctx) error {
	return b.respond(c, b.svc.List(c.Context()), fiber.StatusOK)
}

func (b *Base[T, D]) Search(c *fiber.Ctx) error {
	return b.respond(c, b.svc.Search(c.Context(), c.Query("search")), fiber.StatusOK)
}

func (b *Base[T, D]) Get(c *fiber.Ctx) error {
	id, ok := b.id(c)
	if !ok {
		return rejectID(c)
	}

	return b.respond(c, b.svc.Get(c.Context(), id), fiber.StatusOK)
}

func (b *Base[T, D]) Create(c *fiber.Ctx, draft D) error {
	return b.respond(c, b.svc.Create(c.Context(), draft), fiber.StatusCreated)
}

func (b *Base[T, D]) Update(c *fiber.Ctx, patch D) error {
	id, ok := b.id(c)
	if !ok {
		return rejectID(c)
	}

	return b.respond(c, b.svc.Update(c.Context(), id, patch), fiber.StatusOK)
}

func (b *Base[T, D]) Delete(c *fiber.Ctx) error {
	id, ok := b.id(c)
	if !ok {
		return rejectID(c)
	}

	return b.respond(c, b.svc.Delete(c.Context(), id), fiber.StatusOK)
}

func (b *Base[T, D]) respond(c *fiber.Ctx, env records.Envelope, success int) error {
	if !env.Succeeded() {
		b.logger.Debug("request not served",
			zap.String("entity", b.svc.Entity()),
			zap.String("kind", string(env.Kind)),
			zap.String("message", env.Message),
		)
	}

	return Respond(c, env, success)
}

func (b *Base[T, D]) id(c *fiber.Ctx) (int64, bool) {
	raw := c.Params("id")

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		b.logger.Debug("invalid id", zap.String("entity", b.svc.Entity()), zap.String("id", raw))
		return 0, false
	}

	return id, true
}

// Respond writes env with the status code matching its kind. success is used
// for successful envelopes.
func Respond(c *fiber.Ctx, env records.Envelope, success int) error {
	return c.Status(StatusCode(env, success)).JSON(env)
}

func StatusCode(env records.Envelope, success int) int {
	switch env.Kind {
	case records.KindOK:
		return success
	case records.KindInvalid:
		return fiber.StatusBadRequest
	case records.KindNotFound:
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}

func rejectID(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(records.Fail(records.KindInvalid, messageInvalidID))
}
