package currencies

import "github.com/tillbook/tillbook/internal/currencies"

type CurrencyRequest struct {
	Name *string `json:"name" validate:"omitempty,max=15"`
	Code *string `json:"code" validate:"omitempty,max=5"`
}

func (r *CurrencyRequest) toDraft() currencies.CurrencyDraft {
	return currencies.CurrencyDraft{
		Name: r.Name,
		Code: r.Code,
	}
}

type CurrencyResponse struct {
	Status   string              `json:"status"   example:"success"`
	Message  string              `json:"message"  example:"succeeded"`
	RowCount int                 `json:"rowCount" example:"1"`
	Data     currencies.Currency `json:"data"`
}

type CurrencyListResponse struct {
	Status   string                `json:"status"   example:"success"`
	Message  string                `json:"message"  example:"succeeded"`
	RowCount int                   `json:"rowCount" example:"2"`
	Data     []currencies.Currency `json:"data"`
}
