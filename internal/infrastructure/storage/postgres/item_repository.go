package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"golang.org/x/exp/slog"

	"boxmate/internal/domain/item"
)

type ItemRepository struct {
	db  *Storage
	log *slog.Logger
}

func NewItemRepository(db *Storage, log *slog.Logger) *ItemRepository {
	return &ItemRepository{
		db:  db,
		log: log.With("component", "item_repository"),
	}
}

func (r *ItemRepository) List(ctx context.Context) ([]item.Item, error) {
	const query = `
		SELECT id, name, descr, box, parent_id, image, collaborators, created_at, updated_at
		FROM items
		ORDER BY inserted_at, id`

	rows, err := r.db.Pool().Query(ctx, query)
	if err != nil {
		r.log.Error("failed to list items", "error", err)
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	var items []item.Item
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}

	return items, rows.Err()
}

func (r *ItemRepository) Get(ctx context.Context, id string) (item.Item, error) {
	const query = `
		SELECT id, name, descr, box, parent_id, image, collaborators, created_at, updated_at
		FROM items
		WHERE id = $1`

	row := r.db.Pool().QueryRow(ctx, query, id)

	it, err := scanItem(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return it, item.ErrNotFound
		}
		return it, err
	}

	return it, nil
}

func (r *ItemRepository) Create(ctx context.Context, it item.Item) (string, error) {
	const query = `
		INSERT INTO items (name, descr, box, parent_id, image, collaborators, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`

	collab := it.Collaborators
	if collab == nil {
		collab = []string{}
	}

	var id string
	err := r.db.Pool().QueryRow(ctx, query,
		it.Name, it.Desc, it.Box, it.ParentID, it.Image, collab, it.CreatedAt, it.UpdatedAt,
	).Scan(&id)
	if err != nil {
		r.log.Error("failed to create item", "name", it.Name, "error", err)
		return "", fmt.Errorf("create item: %w", err)
	}

	return id, nil
}

func (r *ItemRepository) Update(ctx context.Context, id string, patch item.Patch) error {
	sets := make([]string, 0, 7)
	args := make([]any, 0, 8)

	add := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.Name != nil {
		add("name", *patch.Name)
	}
	if patch.Desc != nil {
		add("descr", *patch.Desc)
	}
	if patch.Box != nil {
		add("box", *patch.Box)
	}
	if patch.ParentID != nil {
		add("parent_id", *patch.ParentID)
	}
	if patch.Image != nil {
		add("image", *patch.Image)
	}
	if patch.Collaborators != nil {
		add("collaborators", *patch.Collaborators)
	}
	if patch.UpdatedAt != nil {
		add("updated_at", *patch.UpdatedAt)
	}

	if len(sets) == 0 {
		_, err := r.Get(ctx, id)
		return err
	}

	args = append(args, id)
	query := fmt.Sprintf("UPDATE items SET %s WHERE id = $%d",
		strings.Join(sets, ", "), len(args))

	result, err := r.db.Pool().Exec(ctx, query, args...)
	if err != nil {
		r.log.Error("failed to update item", "id", id, "error", err)
		return fmt.Errorf("update item: %w", err)
	}

	if result.RowsAffected() == 0 {
		return item.ErrNotFound
	}

	return nil
}

func (r *ItemRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.Pool().Exec(ctx, `DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		r.log.Error("failed to delete item", "id", id, "error", err)
		return fmt.Errorf("delete item: %w", err)
	}

	if result.RowsAffected() == 0 {
		return item.ErrNotFound
	}

	return nil
}

func scanItem(row pgx.Row) (item.Item, error) {
	var it item.Item
	err := row.Scan(&it.ID, &it.Name, &it.Desc, &it.Box, &it.ParentID,
		&it.Image, &it.Collaborators, &it.CreatedAt, &it.UpdatedAt)
	if err != nil {
		return it, fmt.Errorf("scan item: %w", err)
	}
	return it, nil
}
