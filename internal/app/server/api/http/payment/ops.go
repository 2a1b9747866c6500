package payment

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "payments-list",
		Method:      http.MethodGet,
		Path:        "/api/payments",
		Summary:     "List payments",
		Tags:        []string{"payments"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID: "payments-create",
		Method:      http.MethodPost,
		Path:        "/api/payments",
		Summary:     "Create a payment",
		Tags:        []string{"payments"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID: "payments-delete",
		Method:      http.MethodDelete,
		Path:        "/api/payments/{id}",
		Summary:     "Delete a payment",
		Tags:        []string{"payments"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}
