package demandtype

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "demand-types-list",
		Method:      http.MethodGet,
		Path:        "/api/demand-types",
		Summary:     "List demand types",
		Tags:        []string{"demand-types"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID: "demand-types-create",
		Method:      http.MethodPost,
		Path:        "/api/demand-types",
		Summary:     "Create a demand type",
		Tags:        []string{"demand-types"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) updateOp() huma.Operation {
	return huma.Operation{
		OperationID: "demand-types-update",
		Method:      http.MethodPut,
		Path:        "/api/demand-types/{id}",
		Summary:     "Update a demand type",
		Tags:        []string{"demand-types"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID: "demand-types-delete",
		Method:      http.MethodDelete,
		Path:        "/api/demand-types/{id}",
		Summary:     "Delete a demand type",
		Tags:        []string{"demand-types"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}
