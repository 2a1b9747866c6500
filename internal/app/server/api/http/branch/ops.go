package branch

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "branches-list",
		Method:      http.MethodGet,
		Path:        "/api/branches",
		Summary:     "List branches",
		Tags:        []string{"branches"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID: "branches-create",
		Method:      http.MethodPost,
		Path:        "/api/branches",
		Summary:     "Create a branch",
		Tags:        []string{"branches"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID: "branches-delete",
		Method:      http.MethodDelete,
		Path:        "/api/branches/{id}",
		Summary:     "Delete a branch",
		Tags:        []string{"branches"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}
