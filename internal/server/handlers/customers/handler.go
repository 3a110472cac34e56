package customers

import (
	"github.com/go-core-fx/fiberfx/handler"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/tillbook/tillbook/internal/customers"
	"github.com/tillbook/tillbook/internal/server/handlers/entities"
	"github.com/tillbook/tillbook/internal/server/validation"
)

type Handler struct {
	*entities.Base[customers.Customer, customers.CustomerDraft]

	validator *validator.Validate
}

func NewHandler(customersSvc *customers.Service, validator *validator.Validate, logger *zap.Logger) handler.Handler {
	return &Handler{
		Base: entities.NewBase(customersSvc, logger),

		validator: validator,
	}
}

// Register implements handler.Handler.
func (h *Handler) Register(r fiber.Router) {
	r = r.Group("/customers")

	r.Get("/", h.list)
	r.Get("/search", h.search)
	r.Get("/:id", h.get)
	r.Post("/", validation.DecorateWithBody(h.validator, h.post))
	r.Patch("/:id", validation.DecorateWithBody(h.validator, h.patch))
	r.Delete("/:id", h.delete)
}

//	@Summary		List customers
//	@Description	Retrieve every customer ordered by id
//	@Tags			customers
//	@Produce		json
//	@Success		200	{object}	CustomerListResponse
//	@Failure		500	{object}	records.Envelope
//	@Router			/customers [get]
func (h *Handler) list(c *fiber.Ctx) error {
	return h.List(c)
}

//	@Summary		Search customers
//	@Description	Case-insensitive substring search on first and last name
//	@Tags			customers
//	@Produce		json
//	@Param			search	query		string	false	"Search term"
//	@Success		200		{object}	CustomerListResponse
//	@Failure		500		{object}	records.Envelope
//	@Router			/customers/search [get]
func (h *Handler) search(c *fiber.Ctx) error {
	return h.Search(c)
}

//	@Summary		Get a customer
//	@Tags			customers
//	@Produce		json
//	@Param			id	path		int	true	"Customer ID"
//	@Success		200	{object}	CustomerResponse
//	@Failure		400	{object}	records.Envelope
//	@Failure		404	{object}	records.Envelope
//	@Failure		500	{object}	records.Envelope
//	@Router			/customers/{id} [get]
func (h *Handler) get(c *fiber.Ctx) error {
	return h.Get(c)
}

//	@Summary		Create a customer
//	@Description	First name is required
//	@Tags			customers
//	@Accept			json
//	@Produce		json
//	@Param			customer	body		CustomerRequest	true	"Customer"
//	@Success		201			{object}	CustomerResponse
//	@Failure		400			{object}	records.Envelope
//	@Failure		500			{object}	records.Envelope
//	@Router			/customers [post]
func (h *Handler) post(c *fiber.Ctx, req *CustomerRequest) error {
	return h.Create(c, req.toDraft())
}

//	@Summary		Update a customer
//	@Description	Fields present in the body replace the stored values
//	@Tags			customers
//	@Accept			json
//	@Produce		json
//	@Param			id			path		int				true	"Customer ID"
//	@Param			customer	body		CustomerRequest	true	"Fields to replace"
//	@Success		200			{object}	CustomerResponse
//	@Failure		400			{object}	records.Envelope
//	@Failure		404			{object}	records.Envelope
//	@Failure		500			{object}	records.Envelope
//	@Router			/customers/{id} [patch]
func (h *Handler) patch(c *fiber.Ctx, req *CustomerRequest) error {
	return h.Update(c, req.toDraft())
}

//	@Summary		Delete a customer
//	@Tags			customers
//	@Produce		json
//	@Param			id	path		int	true	"Customer ID"
//	@Success		200	{object}	records.Envelope
//	@Failure		400	{object}	records.Envelope
//	@Failure		404	{object}	records.Envelope
//	@Failure		500	{object}	records.Envelope
//	@Router			/customers/{id} [delete]
func (h *Handler) delete(c *fiber.Ctx) error {
	return h.Delete(c)
}
