package records_test

import (
	"context"

	"github.com/tillbook/tillbook/internal/records"
)

type widget struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type widgetDraft struct {
	Name  *string
	Price *float64
}

// scriptedStore returns preset outcomes and counts calls.
type scriptedStore struct {
	byID   records.Outcome[widget]
	all    records.Outcome[[]widget]
	search records.Outcome[[]widget]
	create records.Outcome[widget]
	update records.Outcome[widget]
	delete records.Outcome[bool]

	calls      map[string]int
	lastTerm   string
	lastDraft  widgetDraft
	lastUpdate int64
}

func newScriptedStore() *scriptedStore {
	return &scriptedStore{calls: map[string]int{}}
}

func (s *scriptedStore) FindByID(_ context.Context, _ int64) records.Outcome[widget] {
	s.calls["find_by_id"]++
	return s.byID
}

func (s *scriptedStore) FindAll(_ context.Context) records.Outcome[[]widget] {
	s.calls["find_all"]++
	return s.all
}

func (s *scriptedStore) FindBySearch(_ context.Context, term string) records.Outcome[[]widget] {
	s.calls["find_by_search"]++
	s.lastTerm = term
	return s.search
}

func (s *scriptedStore) Create(_ context.Context, draft widgetDraft) records.Outcome[widget] {
	s.calls["create"]++
	s.lastDraft = draft
	return s.create
}

func (s *scriptedStore) Update(_ context.Context, id int64, patch widgetDraft) records.Outcome[widget] {
	s.calls["update"]++
	s.lastUpdate = id
	s.lastDraft = patch
	return s.update
}

func (s *scriptedStore) DeleteByID(_ context.Context, _ int64) records.Outcome[bool] {
	s.calls["delete"]++
	return s.delete
}

func validateWidget(d widgetDraft) error {
	if d.Name == nil && d.Price == nil {
		return records.Invalid("some fields are required")
	}
	if d.Name == nil {
		return records.Invalid("name is required")
	}
	if d.Price == nil {
		return records.Invalid("price is required")
	}
	return nil
}

func ptr[T any](v T) *T {
	return &v
}
