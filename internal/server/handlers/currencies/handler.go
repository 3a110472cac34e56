package currencies

import (
	"github.com/go-core-fx/fiberfx/handler"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/tillbook/tillbook/internal/currencies"
	"github.com/tillbook/tillbook/internal/server/handlers/entities"
	"github.com/tillbook/tillbook/internal/server/validation"
)

type Handler struct {
	*entities.Base[currencies.Currency, currencies.CurrencyDraft]

	validator *validator.Validate
}

func NewHandler(currenciesSvc *currencies.Service, validator *validator.Validate, logger *zap.Logger) handler.Handler {
	return &Handler{
		Base: entities.NewBase(currenciesSvc, logger),

		validator: validator,
	}
}

// Register implements handler.Handler.
func (h *Handler) Register(r fiber.Router) {
	r = r.Group("/currencies")

	r.Get("/", h.list)
	r.Get("/search", h.search)
	r.Get("/:id", h.get)
	r.Post("/", validation.DecorateWithBody(h.validator, h.post))
	r.Patch("/:id", validation.DecorateWithBody(h.validator, h.patch))
	r.Delete("/:id", h.delete)
}

//	@Summary		List currencies
//	@Description	Retrieve every currency ordered by id
//	@Tags			currencies
//	@Produce		json
//	@Success		200	{object}	CurrencyListResponse
//	@Failure		500	{object}	records.Envelope
//	@Router			/currencies [get]
func (h *Handler) list(c *fiber.Ctx) error {
	return h.List(c)
}

//	@Summary		Search currencies
//	@Description	Case-insensitive substring search on name and code
//	@Tags			currencies
//	@Produce		json
//	@Param			search	query		string	false	"Search term"
//	@Success		200		{object}	CurrencyListResponse
//	@Failure		500		{object}	records.Envelope
//	@Router			/currencies/search [get]
func (h *Handler) search(c *fiber.Ctx) error {
	return h.Search(c)
}

//	@Summary		Get a currency
//	@Tags			currencies
//	@Produce		json
//	@Param			id	path		int	true	"Currency ID"
//	@Success		200	{object}	CurrencyResponse
//	@Failure		400	{object}	records.Envelope
//	@Failure		404	{object}	records.Envelope
//	@Failure		500	{object}	records.Envelope
//	@Router			/currencies/{id} [get]
func (h *Handler) get(c *fiber.Ctx) error {
	return h.Get(c)
}

//	@Summary		Create a currency
//	@Description	Name and code are required
//	@Tags			currencies
//	@Accept			json
//	@Produce		json
//	@Param			currency	body		CurrencyRequest	true	"Currency"
//	@Success		201			{object}	CurrencyResponse
//	@Failure		400			{object}	records.Envelope
//	@Failure		500			{object}	records.Envelope
//	@Router			/currencies [post]
func (h *Handler) post(c *fiber.Ctx, req *CurrencyRequest) error {
	return h.Create(c, req.toDraft())
}

//	@Summary		Update a currency
//	@Description	Fields present in the body replace the stored values
//	@Tags			currencies
//	@Accept			json
//	@Produce		json
//	@Param			id			path		int				true	"Currency ID"
//	@Param			currency	body		CurrencyRequest	true	"Fields to replace"
//	@Success		200			{object}	CurrencyResponse
//	@Failure		400			{object}	records.Envelope
//	@Failure		404			{object}	records.Envelope
//	@Failure		500			{object}	records.Envelope
//	@Router			/currencies/{id} [patch]
func (h *Handler) patch(c *fiber.Ctx, req *CurrencyRequest) error {
	return h.Update(c, req.toDraft())
}

//	@Summary		Delete a currency
//	@Tags			currencies
//	@Produce		json
//	@Param			id	path		int	true	"Currency ID"
//	@Success		200	{object}	records.Envelope
//	@Failure		400	{object}	records.Envelope
//	@Failure		404	{object}	records.Envelope
//	@Failure		500	{object}	records.Envelope
//	@Router			/currencies/{id} [delete]
func (h *Handler) delete(c *fiber.Ctx) error {
	return h.Delete(c)
}
