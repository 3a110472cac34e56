package customers

import (
	"context"

	"go.uber.org/zap"

	"github.com/tillbook/tillbook/internal/records"
	"github.com/tillbook/tillbook/internal/storage"
)

type Repository = records.Store[int64, Customer, CustomerDraft]

var schema = storage.Schema[Customer, CustomerDraft]{
	Entity: entity,
	Table:  "customers",
	Columns: []storage.Column{
		{Name: "first_name", Type: storage.ColumnText, Searchable: true},
		{Name: "last_name", Type: storage.ColumnText, Searchable: true},
		{Name: "phone", Type: storage.ColumnText},
		{Name: "debt", Type: storage.ColumnReal},
	},
	Fields: func(c *Customer) (*int64, []any) {
		return &c.ID, []any{&c.FirstName, &c.LastName, &c.Phone, &c.Debt}
	},
	New: func(draft CustomerDraft) Customer {
		return draft.Apply(Customer{})
	},
	Merge: func(customer Customer, patch CustomerDraft) Customer {
		return patch.Apply(customer)
	},
}

func NewRepository(backend *storage.Backend, logger *zap.Logger) (Repository, error) {
	return storage.Open(context.Background(), backend, schema, logger)
}
