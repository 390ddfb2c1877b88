package space

import "context"

type Repository interface {
	List(ctx context.Context) ([]Space, error)
	Get(ctx context.Context, id string) (Space, error)
	Create(ctx context.Context, sp Space) error
	Update(ctx context.Context, id string, patch Patch) error
}
