package client

import (
	"context"
	"strings"
	"time"

	"golang.org/x/exp/slog"

	"boxmate/internal/utils/normalize"
)

// CreateSpace создаёт пространство по пользовательскому названию.
// Пустое после нормализации название - это не ошибка, а отсутствие
// операции: возвращается (nil, nil) без обращения к хранилищу.
func (a *App) CreateSpace(ctx context.Context, name string) (*Space, error) {
	id := normalize.Label(name)
	if id == "" {
		return nil, nil
	}

	created, err := a.store.CreateSpace(ctx, remoteSpace{
		ID:    id,
		Alt:   strings.TrimSpace(name),
		Image: "",
	})
	if err != nil {
		return nil, err
	}

	a.refresh(ctx)

	return &Space{
		ID:    normalize.Label(created.ID),
		DBID:  created.ID,
		Image: created.Image,
		Alt:   created.Alt,
	}, nil
}

// UpdateSpaceImage обновляет изображение пространства. Адресация идёт
// по DBID, если он известен, иначе по нормализованному идентификатору.
func (a *App) UpdateSpaceImage(ctx context.Context, sp Space, image string) error {
	target := sp.DBID
	if target == "" {
		target = sp.ID
	}

	if err := a.store.PatchSpace(ctx, target, map[string]any{"image": image}); err != nil {
		return err
	}

	a.refresh(ctx)
	return nil
}

// CreateProduct создаёт предмет, проставляя метки времени создания
// и обновления.
func (a *App) CreateProduct(ctx context.Context, p Product) (*Product, error) {
	now := time.Now().UTC().Format(time.RFC3339)

	created, err := a.store.CreateItem(ctx, remoteItem{
		Name:          p.Name,
		Desc:          p.Desc,
		Box:           p.Box,
		ParentID:      p.ParentID,
		Image:         p.Image,
		Collaborators: p.Collaborators,
		CreatedAt:     now,
		UpdatedAt:     now,
	})
	if err != nil {
		return nil, err
	}

	a.refresh(ctx)

	result := mapProducts([]remoteItem{*created})
	return &result[0], nil
}

// UpdateProduct обновляет предмет по идентификатору хранилища.
// Без идентификатора запрос не отправляется.
func (a *App) UpdateProduct(ctx context.Context, id string, p Product) error {
	if id == "" {
		return ErrMissingProductID
	}

	collab := p.Collaborators
	if collab == nil {
		collab = []string{}
	}

	patch := map[string]any{
		"name":          p.Name,
		"desc":          p.Desc,
		"box":           p.Box,
		"image":         p.Image,
		"collaborators": collab,
		"updatedAt":     time.Now().UTC().Format(time.RFC3339),
	}

	if err := a.store.PatchItem(ctx, id, patch); err != nil {
		return err
	}

	a.refresh(ctx)
	return nil
}

// DeleteProduct удаляет предмет по идентификатору хранилища.
// Без идентификатора запрос не отправляется.
func (a *App) DeleteProduct(ctx context.Context, id string) error {
	if id == "" {
		return ErrMissingProductID
	}

	if err := a.store.DeleteItem(ctx, id); err != nil {
		return err
	}

	a.refresh(ctx)
	return nil
}

// refresh перечитывает состояние после мутации. Сбой синхронизации
// не отменяет уже выполненную мутацию.
func (a *App) refresh(ctx context.Context) {
	if err := a.holder.Refresh(ctx); err != nil {
		a.log.Warn("не удалось обновить состояние после изменения",
			slog.String("error", err.Error()),
		)
	}
}
