package item

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"boxmate/internal/domain/item"
)

type Handler struct {
	service    item.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service item.Servicer, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.createOp(), h.create)
	huma.Register(api, h.patchOp(), h.patch)
	huma.Register(api, h.deleteOp(), h.delete)
}

func (h *Handler) list(ctx context.Context, _ *struct{}) (*listOutput, error) {
	items, err := h.service.List(ctx)
	if err != nil {
		return nil, err
	}

	// Пустая коллекция сериализуется как [], а не null
	if items == nil {
		items = []item.Item{}
	}

	return &listOutput{Body: items}, nil
}

func (h *Handler) create(ctx context.Context, input *createInput) (*itemOutput, error) {
	created, err := h.service.Create(ctx, item.Item{
		Name:          input.Body.Name,
		Desc:          input.Body.Desc,
		Box:           input.Body.Box,
		ParentID:      input.Body.ParentID,
		Image:         input.Body.Image,
		Collaborators: input.Body.Collaborators,
		CreatedAt:     input.Body.CreatedAt,
		UpdatedAt:     input.Body.UpdatedAt,
	})
	if err != nil {
		if errors.Is(err, item.ErrInvalidData) {
			return nil, huma.Error422UnprocessableEntity(err.Error())
		}
		return nil, err
	}

	return &itemOutput{Status: 201, Body: created}, nil
}

func (h *Handler) patch(ctx context.Context, input *patchInput) (*itemOutput, error) {
	updated, err := h.service.Update(ctx, input.ID, item.Patch{
		Name:          input.Body.Name,
		Desc:          input.Body.Desc,
		Box:           input.Body.Box,
		ParentID:      input.Body.ParentID,
		Image:         input.Body.Image,
		Collaborators: input.Body.Collaborators,
		UpdatedAt:     input.Body.UpdatedAt,
	})
	if err != nil {
		if errors.Is(err, item.ErrNotFound) {
			return nil, huma.Error404NotFound(err.Error())
		}
		return nil, err
	}

	return &itemOutput{Status: 200, Body: updated}, nil
}

func (h *Handler) delete(ctx context.Context, input *deleteInput) (*deleteOutput, error) {
	if err := h.service.Delete(ctx, input.ID); err != nil {
		if errors.Is(err, item.ErrNotFound) {
			return nil, huma.Error404NotFound(err.Error())
		}
		return nil, err
	}

	return &deleteOutput{Status: 204}, nil
}
