package demandtype

import "utilibill/internal/domain/demandtype"

type listOutput struct {
	Body listResponse
}

type listResponse struct {
	Items []demandtype.DemandType `json:"items"`
}

type createInput struct {
	Body demandtype.DemandType
}

type updateInput struct {
	ID   int64 `path:"id" example:"1"`
	Body demandtype.DemandType
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
