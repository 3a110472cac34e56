package categories

import (
	"github.com/go-core-fx/fiberfx/handler"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/tillbook/tillbook/internal/categories"
	"github.com/tillbook/tillbook/internal/server/handlers/entities"
	"github.com/tillbook/tillbook/internal/server/validation"
)

type Handler struct {
	*entities.Base[categories.Category, categories.CategoryDraft]

	validator *validator.Validate
}

func NewHandler(categoriesSvc *categories.Service, validator *validator.Validate, logger *zap.Logger) handler.Handler {
	return &Handler{
		Base: entities.NewBase(categoriesSvc, logger),

		validator: validator,
	}
}

// Register implements handler.Handler.
func (h *Handler) Register(r fiber.Router) {
	r = r.Group("/categories")

	r.Get("/", h.list)
	r.Get("/search", h.search)
	r.Get("/:id", h.get)
	r.Post("/", validation.DecorateWithBody(h.validator, h.post))
	r.Patch("/:id", validation.DecorateWithBody(h.validator, h.patch))
	r.Delete("/:id", h.delete)
}

//	@Summary		List categories
//	@Description	Retrieve every category ordered by id
//	@Tags			categories
//	@Produce		json
//	@Success		200	{object}	CategoryListResponse
//	@Failure		500	{object}	records.Envelope
//	@Router			/categories [get]
func (h *Handler) list(c *fiber.Ctx) error {
	return h.List(c)
}

//	@Summary		Search categories
//	@Description	Case-insensitive substring search on the category name
//	@Tags			categories
//	@Produce		json
//	@Param			search	query		string	false	"Search term"
//	@Success		200		{object}	CategoryListResponse
//	@Failure		500		{object}	records.Envelope
//	@Router			/categories/search [get]
func (h *Handler) search(c *fiber.Ctx) error {
	return h.Search(c)
}

//	@Summary		Get a category
//	@Tags			categories
//	@Produce		json
//	@Param			id	path		int	true	"Category ID"
//	@Success		200	{object}	CategoryResponse
//	@Failure		400	{object}	records.Envelope
//	@Failure		404	{object}	records.Envelope
//	@Failure		500	{object}	records.Envelope
//	@Router			/categories/{id} [get]
func (h *Handler) get(c *fiber.Ctx) error {
	return h.Get(c)
}

//	@Summary		Create a category
//	@Description	Name and price are required
//	@Tags			categories
//	@Accept			json
//	@Produce		json
//	@Param			category	body		CategoryRequest	true	"Category"
//	@Success		201			{object}	CategoryResponse
//	@Failure		400			{object}	records.Envelope
//	@Failure		500			{object}	records.Envelope
//	@Router			/categories [post]
func (h *Handler) post(c *fiber.Ctx, req *CategoryRequest) error {
	return h.Create(c, req.toDraft())
}

//	@Summary		Update a category
//	@Description	Fields present in the body replace the stored values
//	@Tags			categories
//	@Accept			json
//	@Produce		json
//	@Param			id			path		int				true	"Category ID"
//	@Param			category	body		CategoryRequest	true	"Fields to replace"
//	@Success		200			{object}	CategoryResponse
//	@Failure		400			{object}	records.Envelope
//	@Failure		404			{object}	records.Envelope
//	@Failure		500			{object}	records.Envelope
//	@Router			/categories/{id} [patch]
func (h *Handler) patch(c *fiber.Ctx, req *CategoryRequest) error {
	return h.Update(c, req.toDraft())
}

//	@Summary		Delete a category
//	@Tags			categories
//	@Produce		json
//	@Param			id	path		int	true	"Category ID"
//	@Success		200	{object}	records.Envelope
//	@Failure		400	{object}	records.Envelope
//	@Failure		404	{object}	records.Envelope
//	@Failure		500	{object}	records.Envelope
//	@Router			/categories/{id} [delete]
func (h *Handler) delete(c *fiber.Ctx) error {
	return h.Delete(c)
}
