package space

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/exp/slog"
)

type Servicer interface {
	List(ctx context.Context) ([]Space, error)
	Create(ctx context.Context, sp Space) (Space, error)
	Update(ctx context.Context, id string, patch Patch) (Space, error)
}

type Service struct {
	repo Repository
	log  *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log,
	}
}

func (s *Service) List(ctx context.Context) ([]Space, error) {
	spaces, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list spaces: %w", err)
	}
	return spaces, nil
}

func (s *Service) Create(ctx context.Context, sp Space) (Space, error) {
	if strings.TrimSpace(sp.ID) == "" {
		return Space{}, fmt.Errorf("%w: empty id", ErrInvalidData)
	}

	if err := s.repo.Create(ctx, sp); err != nil {
		return Space{}, err
	}

	s.log.Debug("space created", "id", sp.ID)
	return sp, nil
}

func (s *Service) Update(ctx context.Context, id string, patch Patch) (Space, error) {
	if err := s.repo.Update(ctx, id, patch); err != nil {
		return Space{}, err
	}

	return s.repo.Get(ctx, id)
}
