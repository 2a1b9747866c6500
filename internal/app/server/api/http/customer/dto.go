package customer

import "utilibill/internal/domain/customer"

type listOutput struct {
	Body listResponse
}

type listResponse struct {
	Items []customer.Customer `json:"items"`
}

type createInput struct {
	Body customer.Customer
}

type updateInput struct {
	ID   int64 `path:"id" example:"1"`
	Body customer.Customer
}

type deleteInput struct {
	ID int64 `path:"id" example:"1"`
}

type output struct {
	Body response
}

type response struct {
	ID     int64  `json:"id,omitempty"`
	Status string `json:"status"`
}
