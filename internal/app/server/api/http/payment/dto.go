package payment

import "utilibill/internal/domain/payment"

type listOutput struct {
	Body listResponse
}

type listResponse struct {
	Items []payment.Payment `json:"items"`
}

type createInput struct {
	Body payment.Payment
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
