package client

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/exp/slog"

	"boxmate/internal/utils/normalize"
)

// Synchronizer приводит локальное состояние в соответствие с удалённым
// хранилищем: досоздаёт пространства каталога по умолчанию, затем
// параллельно загружает обе коллекции.
type Synchronizer struct {
	store   *storeClient
	catalog []CatalogEntry
	log     *slog.Logger
}

func NewSynchronizer(store *storeClient, catalog []CatalogEntry, log *slog.Logger) *Synchronizer {
	return &Synchronizer{
		store:   store,
		catalog: catalog,
		log:     log,
	}
}

// Run выполняет полный цикл синхронизации и возвращает снимок состояния
func (s *Synchronizer) Run(ctx context.Context) (*Snapshot, error) {
	s.seedDefaults(ctx)

	spaces, items, err := s.fetchCollections(ctx)
	if err != nil {
		return nil, err
	}

	return &Snapshot{
		Spaces:   s.normalizeSpaces(spaces),
		Products: mapProducts(items),
	}, nil
}

// seedDefaults досоздаёт отсутствующие пространства каталога.
// Ошибки здесь не фатальны: синхронизация продолжится с тем, что есть.
func (s *Synchronizer) seedDefaults(ctx context.Context) {
	existing, err := s.store.ListSpaces(ctx)
	if err != nil {
		s.log.Warn("не удалось получить список пространств, пропускаем инициализацию каталога",
			slog.String("error", err.Error()),
		)
		return
	}

	present := make(map[string]struct{}, len(existing))
	for _, sp := range existing {
		present[normalize.Label(sp.ID)] = struct{}{}
	}

	var wg sync.WaitGroup
	for _, entry := range s.catalog {
		id := normalize.Label(entry.ID)
		if _, ok := present[id]; ok {
			continue
		}

		wg.Add(1)
		go func(entry CatalogEntry, id string) {
			defer wg.Done()

			_, err := s.store.CreateSpace(ctx, remoteSpace{
				ID:    id,
				Image: entry.Image,
				Alt:   entry.Alt,
			})
			if err != nil {
				s.log.Warn("не удалось создать пространство каталога",
					slog.String("space", id),
					slog.String("error", err.Error()),
				)
			}
		}(entry, id)
	}
	wg.Wait()
}

// fetchCollections параллельно загружает пространства и предметы.
// Сбой любой из загрузок делает весь снимок недействительным.
func (s *Synchronizer) fetchCollections(ctx context.Context) ([]remoteSpace, []remoteItem, error) {
	var (
		wg       sync.WaitGroup
		spaces   []remoteSpace
		items    []remoteItem
		spaceErr error
		itemErr  error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		spaces, spaceErr = s.store.ListSpaces(ctx)
	}()
	go func() {
		defer wg.Done()
		items, itemErr = s.store.ListItems(ctx)
	}()
	wg.Wait()

	if spaceErr != nil {
		return nil, nil, &SyncError{Op: "fetch spaces", Err: spaceErr}
	}
	if itemErr != nil {
		return nil, nil, &SyncError{Op: "fetch items", Err: itemErr}
	}

	return spaces, items, nil
}

// normalizeSpaces нормализует идентификаторы и устраняет дубликаты
// суффиксами -1, -2 в порядке получения. Суффиксированный идентификатор
// тоже занимает своё имя: кандидат перебирается, пока не станет
// уникальным среди уже выданных. Исходный идентификатор сохраняется
// в DBID для адресации записей хранилища.
func (s *Synchronizer) normalizeSpaces(spaces []remoteSpace) []Space {
	used := make(map[string]struct{}, len(spaces))
	result := make([]Space, 0, len(spaces))

	for _, sp := range spaces {
		base := normalize.Label(sp.ID)
		id := base
		for n := 1; ; n++ {
			if _, taken := used[id]; !taken {
				break
			}
			id = fmt.Sprintf("%s-%d", base, n)
		}
		used[id] = struct{}{}

		result = append(result, Space{
			ID:    id,
			DBID:  sp.ID,
			Image: sp.Image,
			Alt:   sp.Alt,
		})
	}

	return result
}

func mapProducts(items []remoteItem) []Product {
	result := make([]Product, 0, len(items))
	for _, it := range items {
		result = append(result, Product{
			ID:            it.ID,
			Name:          it.Name,
			Desc:          it.Desc,
			Box:           it.Box,
			ParentID:      it.ParentID,
			Image:         it.Image,
			Collaborators: it.Collaborators,
			CreatedAt:     it.CreatedAt,
			UpdatedAt:     it.UpdatedAt,
		})
	}
	return result
}
