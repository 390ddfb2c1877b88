package space

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"boxmate/internal/domain/space"
)

type Handler struct {
	service    space.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service space.Servicer, log *slog.Logger, mws huma.Middlewares) *Handler {
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
}

func (h *Handler) list(ctx context.Context, _ *struct{}) (*listOutput, error) {
	spaces, err := h.service.List(ctx)
	if err != nil {
		return nil, err
	}

	// Пустая коллекция сериализуется как [], а не null
	if spaces == nil {
		spaces = []space.Space{}
	}

	return &listOutput{Body: spaces}, nil
}

func (h *Handler) create(ctx context.Context, input *createInput) (*spaceOutput, error) {
	created, err := h.service.Create(ctx, space.Space{
		ID:    input.Body.ID,
		Image: input.Body.Image,
		Alt:   input.Body.Alt,
	})
	if err != nil {
		switch {
		case errors.Is(err, space.ErrAlreadyExists):
			return nil, huma.Error409Conflict(err.Error())
		case errors.Is(err, space.ErrInvalidData):
			return nil, huma.Error422UnprocessableEntity(err.Error())
		}
		return nil, err
	}

	return &spaceOutput{Status: 201, Body: created}, nil
}

func (h *Handler) patch(ctx context.Context, input *patchInput) (*spaceOutput, error) {
	updated, err := h.service.Update(ctx, input.ID, space.Patch{
		Image: input.Body.Image,
		Alt:   input.Body.Alt,
	})
	if err != nil {
		if errors.Is(err, space.ErrNotFound) {
			return nil, huma.Error404NotFound(err.Error())
		}
		return nil, err
	}

	return &spaceOutput{Status: 200, Body: updated}, nil
}
