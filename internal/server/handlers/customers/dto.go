package customers

import "github.com/tillbook/tillbook/internal/customers"

// CustomerRequest is the body of create and update requests.
type CustomerRequest struct {
	FirstName *string  `json:"firstName" validate:"omitempty,max=15"`
	LastName  *string  `json:"lastName"  validate:"omitempty,max=15"`
	Phone     *string  `json:"phone"     validate:"omitempty,max=15"`
	Debt      *float64 `json:"debt"`
}

func (r *CustomerRequest) toDraft() customers.CustomerDraft {
	return customers.CustomerDraft{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Phone:     r.Phone,
		Debt:      r.Debt,
	}
}

type CustomerResponse struct {
	Status   string             `json:"status"   example:"success"`
	Message  string             `json:"message"  example:"succeeded"`
	RowCount int                `json:"rowCount" example:"1"`
	Data     customers.Customer `json:"data"`
}

type CustomerListResponse struct {
	Status   string               `json:"status"   example:"success"`
	Message  string               `json:"message"  example:"succeeded"`
	RowCount int                  `json:"rowCount" example:"2"`
	Data     []customers.Customer `json:"data"`
}
