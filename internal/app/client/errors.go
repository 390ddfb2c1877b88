package client

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingProductID возвращается при попытке изменить или удалить
	// предмет без идентификатора удалённого хранилища.
	ErrMissingProductID = errors.New("cannot edit: missing product ID")

	// ErrNotAuthenticated возвращается для операций, требующих входа.
	ErrNotAuthenticated = errors.New("not authenticated")
)

// RemoteStoreError - ошибка, возвращённая удалённым хранилищем.
type RemoteStoreError struct {
	Status int
	Body   string
}

func (e *RemoteStoreError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("remote store: status %d", e.Status)
	}
	return fmt.Sprintf("remote store: status %d: %s", e.Status, e.Body)
}

// SyncError - ошибка этапа синхронизации с указанием операции.
type SyncError struct {
	Op  string
	Err error
}

func (e *SyncError) Error() string {
	return fmt.Sprintf("sync: %s: %v", e.Op, e.Err)
}

func (e *SyncError) Unwrap() error {
	return e.Err
}
