package employee

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "employees-list",
		Method:      http.MethodGet,
		Path:        "/api/employees",
		Summary:     "List employees",
		Tags:        []string{"employees"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID: "employees-create",
		Method:      http.MethodPost,
		Path:        "/api/employees",
		Summary:     "Create a employee",
		Tags:        []string{"employees"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) updateOp() huma.Operation {
	return huma.Operation{
		OperationID: "employees-update",
		Method:      http.MethodPut,
		Path:        "/api/employees/{id}",
		Summary:     "Update a employee",
		Tags:        []string{"employees"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID: "employees-delete",
		Method:      http.MethodDelete,
		Path:        "/api/employees/{id}",
		Summary:     "Delete a employee",
		Tags:        []string{"employees"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) listTypesOp() huma.Operation {
	return huma.Operation{
		OperationID: "employee-types-list",
		Method:      http.MethodGet,
		Path:        "/api/employee-types",
		Summary:     "List employee types",
		Tags:        []string{"employees"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}
