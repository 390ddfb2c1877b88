package user

import "errors"

var (
	ErrNotFound     = errors.New("account not found")
	ErrInvalidAuth  = errors.New("wrong email or password")
	ErrInvalidInput = errors.New("invalid registration data")
)
