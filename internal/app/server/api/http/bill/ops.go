package bill

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "bills-list",
		Method:      http.MethodGet,
		Path:        "/api/bills",
		Summary:     "List bills",
		Tags:        []string{"bills"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID: "bills-create",
		Method:      http.MethodPost,
		Path:        "/api/bills",
		Summary:     "Create a bill",
		Tags:        []string{"bills"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) updateOp() huma.Operation {
	return huma.Operation{
		OperationID: "bills-update",
		Method:      http.MethodPut,
		Path:        "/api/bills/{id}",
		Summary:     "Update a bill",
		Tags:        []string{"bills"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID: "bills-delete",
		Method:      http.MethodDelete,
		Path:        "/api/bills/{id}",
		Summary:     "Delete a bill",
		Tags:        []string{"bills"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}
