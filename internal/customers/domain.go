package customers

const entity = "customer"

// Customer is a buyer with an outstanding debt.
type Customer struct {
	ID        int64   `json:"id"`
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Phone     string  `json:"phone"`
	Debt      float64 `json:"debt"`
}

// CustomerDraft carries the fields of a create request or an update patch.
// A nil field is absent.
type CustomerDraft struct {
	FirstName *string
	LastName  *string
	Phone     *string
	Debt      *float64
}

func (d CustomerDraft) Apply(customer Customer) Customer {
	if d.FirstName != nil {
		customer.FirstName = *d.FirstName
	}
	if d.LastName != nil {
		customer.LastName = *d.LastName
	}
	if d.Phone != nil {
		customer.Phone = *d.Phone
	}
	if d.Debt != nil {
		customer.Debt = *d.Debt
	}

	return customer
}
