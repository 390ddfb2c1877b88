package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/exp/slog"

	"boxmate/internal/domain/space"
)

type SpaceRepository struct {
	db  *Storage
	log *slog.Logger
}

func NewSpaceRepository(db *Storage, log *slog.Logger) *SpaceRepository {
	return &SpaceRepository{
		db:  db,
		log: log.With("component", "space_repository"),
	}
}

func (r *SpaceRepository) List(ctx context.Context) ([]space.Space, error) {
	rows, err := r.db.Pool().Query(ctx,
		`SELECT id, image, alt FROM spaces ORDER BY created_at, id`)
	if err != nil {
		r.log.Error("failed to list spaces", "error", err)
		return nil, fmt.Errorf("list spaces: %w", err)
	}
	defer rows.Close()

	var spaces []space.Space
	for rows.Next() {
		var sp space.Space
		if err := rows.Scan(&sp.ID, &sp.Image, &sp.Alt); err != nil {
			return nil, fmt.Errorf("scan space: %w", err)
		}
		spaces = append(spaces, sp)
	}

	return spaces, rows.Err()
}

func (r *SpaceRepository) Get(ctx context.Context, id string) (space.Space, error) {
	var sp space.Space
	err := r.db.Pool().QueryRow(ctx,
		`SELECT id, image, alt FROM spaces WHERE id = $1`, id).
		Scan(&sp.ID, &sp.Image, &sp.Alt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return sp, space.ErrNotFound
		}
		return sp, fmt.Errorf("get space: %w", err)
	}

	return sp, nil
}

func (r *SpaceRepository) Create(ctx context.Context, sp space.Space) error {
	_, err := r.db.Pool().Exec(ctx,
		`INSERT INTO spaces (id, image, alt) VALUES ($1, $2, $3)`,
		sp.ID, sp.Image, sp.Alt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return space.ErrAlreadyExists
		}
		r.log.Error("failed to create space", "id", sp.ID, "error", err)
		return fmt.Errorf("create space: %w", err)
	}

	return nil
}

func (r *SpaceRepository) Update(ctx context.Context, id string, patch space.Patch) error {
	sets := make([]string, 0, 2)
	args := make([]any, 0, 3)

	if patch.Image != nil {
		args = append(args, *patch.Image)
		sets = append(sets, fmt.Sprintf("image = $%d", len(args)))
	}
	if patch.Alt != nil {
		args = append(args, *patch.Alt)
		sets = append(sets, fmt.Sprintf("alt = $%d", len(args)))
	}

	if len(sets) == 0 {
		// Nothing to change, but the row must exist
		_, err := r.Get(ctx, id)
		return err
	}

	args = append(args, id)
	query := fmt.Sprintf("UPDATE spaces SET %s WHERE id = $%d",
		strings.Join(sets, ", "), len(args))

	result, err := r.db.Pool().Exec(ctx, query, args...)
	if err != nil {
		r.log.Error("failed to update space", "id", id, "error", err)
		return fmt.Errorf("update space: %w", err)
	}

	if result.RowsAffected() == 0 {
		return space.ErrNotFound
	}

	return nil
}
