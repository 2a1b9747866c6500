package employee

import "utilibill/internal/domain/employee"

type listOutput struct {
	Body listResponse
}

type listResponse struct {
	Items []employee.Employee `json:"items"`
}

type createInput struct {
	Body employee.Employee
}

type updateInput struct {
	ID   int64 `path:"id" example:"1"`
	Body employee.Employee
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

type listTypesOutput struct {
	Body listTypesResponse
}

type listTypesResponse struct {
	Items []employee.EmployeeType `json:"items"`
}
