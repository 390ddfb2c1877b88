package client

import (
	"context"
	"sync"

	"golang.org/x/exp/slog"
)

// SnapshotHolder хранит последний успешный снимок состояния и управляет
// его обновлением. Результат устаревшего прохода синхронизации, начатого
// до более нового, отбрасывается.
type SnapshotHolder struct {
	syncer *Synchronizer
	cache  *SnapshotCache
	log    *slog.Logger

	mu       sync.RWMutex
	snapshot *Snapshot
	loading  bool
	err      error
	trigger  any
	seq      uint64
}

func NewSnapshotHolder(syncer *Synchronizer, cache *SnapshotCache, log *slog.Logger) *SnapshotHolder {
	h := &SnapshotHolder{
		syncer: syncer,
		cache:  cache,
		log:    log,
	}

	if cache != nil {
		snap, err := cache.Load()
		if err != nil {
			log.Warn("не удалось прочитать локальный кэш", slog.String("error", err.Error()))
		} else if snap != nil {
			h.snapshot = snap
		}
	}

	return h
}

// Refresh запускает проход синхронизации и при успехе заменяет снимок.
// При ошибке предыдущий снимок сохраняется, а ошибка становится доступна
// через Err.
func (h *SnapshotHolder) Refresh(ctx context.Context) error {
	h.mu.Lock()
	h.seq++
	pass := h.seq
	h.loading = true
	h.mu.Unlock()

	snap, err := h.syncer.Run(ctx)

	h.mu.Lock()
	defer h.mu.Unlock()

	if pass != h.seq {
		// Результат устаревшего прохода: состояние не трогаем.
		h.log.Debug("результат устаревшего прохода синхронизации отброшен",
			slog.Uint64("pass", pass),
			slog.Uint64("current", h.seq),
		)
		return err
	}

	h.loading = false
	if err != nil {
		h.err = err
		return err
	}

	h.err = nil
	h.snapshot = snap

	if h.cache != nil {
		if cacheErr := h.cache.Save(snap); cacheErr != nil {
			h.log.Warn("не удалось сохранить локальный кэш", slog.String("error", cacheErr.Error()))
		}
	}

	return nil
}

// SetTrigger обновляет значение-триггер и при его изменении запускает
// синхронизацию. Повторная установка того же значения ничего не делает.
func (h *SnapshotHolder) SetTrigger(ctx context.Context, v any) error {
	h.mu.Lock()
	if h.trigger == v {
		h.mu.Unlock()
		return nil
	}
	h.trigger = v
	h.mu.Unlock()

	return h.Refresh(ctx)
}

// Snapshot возвращает последний успешный снимок (может быть nil)
func (h *SnapshotHolder) Snapshot() *Snapshot {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.snapshot
}

// Loading сообщает, выполняется ли сейчас синхронизация
func (h *SnapshotHolder) Loading() bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.loading
}

// Err возвращает ошибку последнего завершившегося прохода
func (h *SnapshotHolder) Err() error {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.err
}
