package branch

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"utilibill/internal/domain/branch"
)

type Handler struct {
	service    branch.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service branch.Servicer, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.createOp(), h.create)
	huma.Register(api, h.deleteOp(), h.delete)
}

func (h *Handler) list(ctx context.Context, _ *struct{}) (*listOutput, error) {
	items, err := h.service.List(ctx)
	if err != nil {
		return nil, mapError(err)
	}

	return &listOutput{
		Body: listResponse{Items: items},
	}, nil
}

func (h *Handler) create(ctx context.Context, input *createInput) (*output, error) {
	id, err := h.service.Create(ctx, input.Body)
	if err != nil {
		return nil, mapError(err)
	}

	return &output{
		Body: response{ID: id, Status: "Ok"},
	}, nil
}

func (h *Handler) delete(ctx context.Context, input *deleteInput) (*output, error) {
	if err := h.service.Delete(ctx, input.ID); err != nil {
		return nil, mapError(err)
	}

	return &output{
		Body: response{ID: input.ID, Status: "Ok"},
	}, nil
}

func mapError(err error) error {
	switch {
	case errors.Is(err, branch.ErrInvalidData):
		return huma.Error422UnprocessableEntity(err.Error())
	case errors.Is(err, branch.ErrNotFound):
		return huma.Error404NotFound(err.Error())
	}
	return err
}
