package badgerfx

import "errors"

var ErrNotFound = errors.New("entity not found")

// Entity is a value that knows its own storage encoding.
type Entity interface {
	MarshalStorage() ([]byte, error)
	UnmarshalStorage(data []byte) error
}
