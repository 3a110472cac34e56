package storage

import "errors"

var (
	ErrUnsupportedDriver = errors.New("unsupported storage driver")
	ErrConflict          = errors.New("concurrent modification")
	ErrInvalidSchema     = errors.New("invalid schema")
)
