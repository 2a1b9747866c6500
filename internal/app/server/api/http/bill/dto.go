package bill

import "utilibill/internal/domain/bill"

type listOutput struct {
	Body listResponse
}

type listResponse struct {
	Items []bill.Bill `json:"items"`
}

type createInput struct {
	Body bill.Bill
}

type updateInput struct {
	ID   int64 `path:"id" example:"1"`
	Body bill.Bill
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
