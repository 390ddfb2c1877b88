package item

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/exp/slog"
)

type Servicer interface {
	List(ctx context.Context) ([]Item, error)
	Create(ctx context.Context, it Item) (Item, error)
	Update(ctx context.Context, id string, patch Patch) (Item, error)
	Delete(ctx context.Context, id string) error
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

func (s *Service) List(ctx context.Context) ([]Item, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return items, nil
}

func (s *Service) Create(ctx context.Context, it Item) (Item, error) {
	if strings.TrimSpace(it.Name) == "" {
		return Item{}, fmt.Errorf("%w: empty name", ErrInvalidData)
	}

	id, err := s.repo.Create(ctx, it)
	if err != nil {
		return Item{}, fmt.Errorf("create item: %w", err)
	}

	it.ID = id
	s.log.Debug("item created", "id", id, "box", it.Box)
	return it, nil
}

func (s *Service) Update(ctx context.Context, id string, patch Patch) (Item, error) {
	if err := s.repo.Update(ctx, id, patch); err != nil {
		return Item{}, err
	}

	return s.repo.Get(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
