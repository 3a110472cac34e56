package categories

import "github.com/tillbook/tillbook/internal/records"

// Validate checks that a create draft carries a name and a price. Only
// presence is checked, a zero price is accepted.
func Validate(draft CategoryDraft) error {
	switch {
	case draft.isEmpty():
		return records.Invalid("some fields are required")
	case draft.Name == nil:
		return records.Invalid("name is required")
	case draft.Price == nil:
		return records.Invalid("price is required")
	}

	return nil
}
