package categories

import "github.com/tillbook/tillbook/internal/categories"

// CategoryRequest is the body of create and update requests. Omitted fields
// are absent from the draft.
type CategoryRequest struct {
	Name     *string  `json:"name"     validate:"omitempty,max=15"`
	Quantity *int64   `json:"quantity"`
	Price    *float64 `json:"price"`
}

func (r *CategoryRequest) toDraft() categories.CategoryDraft {
	return categories.CategoryDraft{
		Name:     r.Name,
		Quantity: r.Quantity,
		Price:    r.Price,
	}
}

// CategoryResponse documents the envelope returned for a single category.
type CategoryResponse struct {
	Status   string              `json:"status"   example:"success"`
	Message  string              `json:"message"  example:"succeeded"`
	RowCount int                 `json:"rowCount" example:"1"`
	Data     categories.Category `json:"data"`
}

// CategoryListResponse documents the envelope returned for category lists.
type CategoryListResponse struct {
	Status   string                `json:"status"   example:"success"`
	Message  string                `json:"message"  example:"succeeded"`
	RowCount int                   `json:"rowCount" example:"2"`
	Data     []categories.Category `json:"data"`
}
