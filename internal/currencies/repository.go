package currencies

import (
	"context"

	"go.uber.org/zap"

	"github.com/tillbook/tillbook/internal/records"
	"github.com/tillbook/tillbook/internal/storage"
)

type Repository = records.Store[int64, Currency, CurrencyDraft]

var schema = storage.Schema[Currency, CurrencyDraft]{
	Entity: entity,
	Table:  "currencies",
	Columns: []storage.Column{
		{Name: "name", Type: storage.ColumnText, Searchable: true},
		{Name: "code", Type: storage.ColumnText, Searchable: true},
	},
	Fields: func(c *Currency) (*int64, []any) {
		return &c.ID, []any{&c.Name, &c.Code}
	},
	New: func(draft CurrencyDraft) Currency {
		return draft.Apply(Currency{})
	},
	Merge: func(currency Currency, patch CurrencyDraft) Currency {
		return patch.Apply(currency)
	},
}

func NewRepository(backend *storage.Backend, logger *zap.Logger) (Repository, error) {
	return storage.Open(context.Background(), backend, schema, logger)
}
