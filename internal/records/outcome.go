package records

import (
	"errors"
)

type outcomeState uint8

const (
	stateFailed outcomeState = iota
	stateAbsent
	stateFound
)

// Outcome is the result of a single storage operation. It holds exactly one of
// three shapes: a found value, an explicit absence of the requested record, or
// a failure.
//
// The zero value is a failure without a cause.
type Outcome[T any] struct {
	state outcomeState
	value T
	cause error
}

// Found wraps a value produced by a successful storage operation. An empty
// slice is still Found.
func Found[T any](value T) Outcome[T] {
	return Outcome[T]{state: stateFound, value: value, cause: nil}
}

// Absent reports that the record with the requested identity does not exist.
func Absent[T any]() Outcome[T] {
	var zero T
	return Outcome[T]{state: stateAbsent, value: zero, cause: nil}
}

// Failed reports that the operation could not complete. The cause is kept for
// diagnostics only.
func Failed[T any](cause error) Outcome[T] {
	var zero T
	return Outcome[T]{state: stateFailed, value: zero, cause: cause}
}

// OutcomeOf converts a conventional (value, error) pair. Errors matching
// ErrNotFound become Absent, every other error becomes Failed.
func OutcomeOf[T any](value T, err error) Outcome[T] {
	switch {
	case err == nil:
		return Found(value)
	case errors.Is(err, ErrNotFound):
		return Absent[T]()
	default:
		return Failed[T](err)
	}
}

func (o Outcome[T]) IsFound() bool  { return o.state == stateFound }
func (o Outcome[T]) IsAbsent() bool { return o.state == stateAbsent }
func (o Outcome[T]) IsFailed() bool { return o.state == stateFailed }

// Value returns the found value and true, or the zero value and false.
func (o Outcome[T]) Value() (T, bool) {
	return o.value, o.state == stateFound
}

// Err returns the failure cause, if any.
func (o Outcome[T]) Err() error {
	return o.cause
}

func (o Outcome[T]) String() string {
	switch o.state {
	case stateFound:
		return "found"
	case stateAbsent:
		return "absent"
	default:
		return "failed"
	}
}
