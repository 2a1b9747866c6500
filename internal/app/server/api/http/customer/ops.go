package customer

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "customers-list",
		Method:      http.MethodGet,
		Path:        "/api/customers",
		Summary:     "List customers",
		Tags:        []string{"customers"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID: "customers-create",
		Method:      http.MethodPost,
		Path:        "/api/customers",
		Summary:     "Create a customer",
		Tags:        []string{"customers"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) updateOp() huma.Operation {
	return huma.Operation{
		OperationID: "customers-update",
		Method:      http.MethodPut,
		Path:        "/api/customers/{id}",
		Summary:     "Update a customer",
		Tags:        []string{"customers"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID: "customers-delete",
		Method:      http.MethodDelete,
		Path:        "/api/customers/{id}",
		Summary:     "Delete a customer",
		Tags:        []string{"customers"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}
