package categories

const entity = "category"

// Category is a product group with its stock and unit price.
type Category struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Quantity int64   `json:"quantity"`
	Price    float64 `json:"price"`
}

// CategoryDraft carries the fields of a create request or an update patch.
// A nil field is absent.
type CategoryDraft struct {
	Name     *string
	Quantity *int64
	Price    *float64
}

func (d CategoryDraft) isEmpty() bool {
	return d.Name == nil && d.Quantity == nil && d.Price == nil
}

// Apply returns category with every present field of d replacing the stored
// value.
func (d CategoryDraft) Apply(category Category) Category {
	if d.Name != nil {
		category.Name = *d.Name
	}
	if d.Quantity != nil {
		category.Quantity = *d.Quantity
	}
	if d.Price != nil {
		category.Price = *d.Price
	}

	return category
}
