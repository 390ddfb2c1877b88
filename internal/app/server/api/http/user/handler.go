package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"boxmate/internal/app/server/api/http/middleware/auth"
	"boxmate/internal/domain/session"
	"boxmate/internal/domain/user"
)

type Handler struct {
	service    user.Servicer
	session    session.Servicer
	lookup     Lookup
	log        *slog.Logger
	middleware huma.Middlewares
	authMW     huma.Middlewares
}

// Lookup отдаёт пользователя по идентификатору для эндпоинта me
type Lookup func(ctx context.Context, id int) (user.User, error)

func NewHandler(service user.Servicer, session session.Servicer, lookup Lookup, log *slog.Logger, middleware, authMW huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		session:    session,
		lookup:     lookup,
		log:        log,
		middleware: middleware,
		authMW:     authMW,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.registerOp(), h.register)
	huma.Register(api, h.loginOp(), h.login)
	huma.Register(api, h.meOp(), h.me)
}

func (h *Handler) register(ctx context.Context, input *registerInput) (*authOutput, error) {
	u, err := h.service.Register(ctx, input.Body.Username, input.Body.Email, input.Body.Password)
	if err != nil {
		if errors.Is(err, user.ErrInvalidInput) {
			return nil, huma.Error422UnprocessableEntity(err.Error())
		}
		return nil, huma.Error409Conflict("registration failed")
	}

	return h.issueToken(ctx, u)
}

func (h *Handler) login(ctx context.Context, input *loginInput) (*authOutput, error) {
	u, err := h.service.Authenticate(ctx, input.Body.Email, input.Body.Password)
	if err != nil {
		h.log.Debug("authentication failed", "email", input.Body.Email)
		return nil, huma.Error401Unauthorized("Invalid credentials")
	}

	return h.issueToken(ctx, u)
}

func (h *Handler) issueToken(ctx context.Context, u user.User) (*authOutput, error) {
	token, err := h.session.Create(ctx, u.ID)
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	return &authOutput{
		Body: AuthResponse{
			Token:    token,
			Username: u.Username,
			Email:    u.Email,
		},
	}, nil
}

func (h *Handler) me(ctx context.Context, _ *struct{}) (*meOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	u, err := h.lookup(ctx, userID)
	if err != nil {
		return nil, huma.Error404NotFound("user not found")
	}

	return &meOutput{
		Body: MeResponse{
			Username: u.Username,
			Email:    u.Email,
		},
	}, nil
}
