package client

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotHolder_RefreshReplacesSnapshot(t *testing.T) {
	f := newFakeStore(t)
	f.spaces = []remoteSpace{{ID: "garage"}}
	f.items = []remoteItem{{ID: "1", Name: "Drill", Box: "garage"}}

	h := NewSnapshotHolder(NewSynchronizer(testStoreClient(f), nil, testLogger()), nil, testLogger())
	require.Nil(t, h.Snapshot())

	require.NoError(t, h.Refresh(context.Background()))

	snap := h.Snapshot()
	require.NotNil(t, snap)
	assert.Len(t, snap.Spaces, 1)
	assert.Len(t, snap.Products, 1)
	assert.False(t, h.Loading())
	assert.NoError(t, h.Err())
}

func TestSnapshotHolder_FailureRetainsPreviousSnapshot(t *testing.T) {
	f := newFakeStore(t)
	f.spaces = []remoteSpace{{ID: "garage"}}
	f.items = []remoteItem{{ID: "1", Name: "Drill", Box: "garage"}}

	h := NewSnapshotHolder(NewSynchronizer(testStoreClient(f), nil, testLogger()), nil, testLogger())
	require.NoError(t, h.Refresh(context.Background()))
	first := h.Snapshot()

	f.mu.Lock()
	f.failItems = true
	f.mu.Unlock()

	err := h.Refresh(context.Background())
	require.Error(t, err)

	// Предыдущий снимок остаётся доступен, ошибка зафиксирована
	assert.Same(t, first, h.Snapshot())
	assert.Error(t, h.Err())
	assert.False(t, h.Loading())

	// Успешный проход сбрасывает ошибку
	f.mu.Lock()
	f.failItems = false
	f.mu.Unlock()

	require.NoError(t, h.Refresh(context.Background()))
	assert.NoError(t, h.Err())
}

func TestSnapshotHolder_SetTrigger(t *testing.T) {
	f := newFakeStore(t)

	h := NewSnapshotHolder(NewSynchronizer(testStoreClient(f), nil, testLogger()), nil, testLogger())

	require.NoError(t, h.SetTrigger(context.Background(), "v1"))
	after := f.totalRequests()
	assert.Greater(t, after, 0)

	// Повторная установка того же значения не вызывает запросов
	require.NoError(t, h.SetTrigger(context.Background(), "v1"))
	assert.Equal(t, after, f.totalRequests())

	// Новое значение запускает синхронизацию
	require.NoError(t, h.SetTrigger(context.Background(), "v2"))
	assert.Greater(t, f.totalRequests(), after)
}

func TestSnapshotHolder_StalePassDiscarded(t *testing.T) {
	f := newFakeStore(t)
	f.items = []remoteItem{{ID: "old", Name: "Old", Box: "garage"}}

	release := make(chan struct{})
	var first atomic.Bool
	blocked := make(chan struct{})

	f.mu.Lock()
	f.onListItems = func() bool {
		if first.CompareAndSwap(false, true) {
			close(blocked)
			<-release
			// Первый запрос после разблокировки завершается ошибкой
			return true
		}
		return false
	}
	f.mu.Unlock()

	h := NewSnapshotHolder(NewSynchronizer(testStoreClient(f), nil, testLogger()), nil, testLogger())

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_ = h.Refresh(context.Background())
	}()

	// Дожидаемся, пока первый проход застрянет на загрузке предметов
	select {
	case <-blocked:
	case <-time.After(5 * time.Second):
		t.Fatal("первый проход не дошёл до загрузки предметов")
	}

	// Второй проход завершается с новыми данными
	f.mu.Lock()
	f.items = []remoteItem{{ID: "new", Name: "New", Box: "garage"}}
	f.mu.Unlock()

	require.NoError(t, h.Refresh(context.Background()))

	// Отпускаем первый проход: он завершится ошибкой, но его результат
	// устарел и не должен затронуть состояние
	close(release)
	wg.Wait()

	snap := h.Snapshot()
	require.NotNil(t, snap)
	require.Len(t, snap.Products, 1)
	assert.Equal(t, "new", snap.Products[0].ID)
	assert.NoError(t, h.Err())
	assert.False(t, h.Loading())
}
