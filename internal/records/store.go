package records

import "context"

// Store is the storage collaborator consumed by Service. K is the identity
// type, T the entity record and D the draft used both for create and for
// override-merge updates.
type Store[K comparable, T any, D any] interface {
	// FindByID returns Absent when no record has the given id.
	FindByID(ctx context.Context, id K) Outcome[T]
	// FindAll never returns Absent; no rows is Found of an empty slice.
	FindAll(ctx context.Context) Outcome[[]T]
	// FindBySearch matches records whose searchable fields contain term,
	// ignoring case. An empty term matches every record.
	FindBySearch(ctx context.Context, term string) Outcome[[]T]
	// Create assigns a new identity and persists the draft.
	Create(ctx context.Context, draft D) Outcome[T]
	// Update loads the record, replaces every field present on patch and
	// saves it under id. Absent when no record has the given id.
	Update(ctx context.Context, id K, patch D) Outcome[T]
	// DeleteByID is Found(true) when a row was removed and Found(false) when
	// none matched.
	DeleteByID(ctx context.Context, id K) Outcome[bool]
}

// Validator checks a create draft. It returns nil when the draft is
// acceptable, or a ValidationError naming the first violated rule.
type Validator[D any] func(draft D) error

// NoValidation accepts every draft.
func NoValidation[D any](D) error {
	return nil
}
