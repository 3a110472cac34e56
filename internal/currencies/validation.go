package currencies

import "github.com/tillbook/tillbook/internal/records"

func Validate(draft CurrencyDraft) error {
	if draft.Name == nil || *draft.Name == "" {
		return records.Invalid("name is required")
	}
	if draft.Code == nil || *draft.Code == "" {
		return records.Invalid("code is required")
	}

	return nil
}
