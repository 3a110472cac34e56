package customers

import "github.com/tillbook/tillbook/internal/records"

// Validate requires a non-empty first name.
func Validate(draft CustomerDraft) error {
	if draft.FirstName == nil || *draft.FirstName == "" {
		return records.Invalid("first name is required")
	}

	return nil
}
