package branch

import "utilibill/internal/domain/branch"

type listOutput struct {
	Body listResponse
}

type listResponse struct {
	Items []branch.Branch `json:"items"`
}

type createInput struct {
	Body branch.Branch
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
