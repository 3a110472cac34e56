package categories

import (
	"context"

	"go.uber.org/zap"

	"github.com/tillbook/tillbook/internal/records"
	"github.com/tillbook/tillbook/internal/storage"
)

type Repository = records.Store[int64, Category, CategoryDraft]

var schema = storage.Schema[Category, CategoryDraft]{
	Entity: entity,
	Table:  "categories",
	Columns: []storage.Column{
		{Name: "name", Type: storage.ColumnText, Searchable: true},
		{Name: "quantity", Type: storage.ColumnInteger},
		{Name: "price", Type: storage.ColumnReal},
	},
	Fields: func(c *Category) (*int64, []any) {
		return &c.ID, []any{&c.Name, &c.Quantity, &c.Price}
	},
	New: func(draft CategoryDraft) Category {
		return draft.Apply(Category{})
	},
	Merge: func(category Category, patch CategoryDraft) Category {
		return patch.Apply(category)
	},
}

func NewRepository(backend *storage.Backend, logger *zap.Logger) (Repository, error) {
	return storage.Open(context.Background(), backend, schema, logger)
}
