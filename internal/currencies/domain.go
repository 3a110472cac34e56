package currencies

const entity = "currency"

type Currency struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Code string `json:"code"`
}

type CurrencyDraft struct {
	Name *string
	Code *string
}

func (d CurrencyDraft) Apply(currency Currency) Currency {
	if d.Name != nil {
		currency.Name = *d.Name
	}
	if d.Code != nil {
		currency.Code = *d.Code
	}

	return currency
}
