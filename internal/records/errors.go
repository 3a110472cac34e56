package records

import "errors"

// ErrNotFound is wrapped by stores when the record with the requested identity
// does not exist.
var ErrNotFound = errors.New("record not found")

// ValidationError is a violated create rule. Its message is shown to the
// caller as is.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Invalid returns a ValidationError with the given message.
func Invalid(message string) error {
	return &ValidationError{Message: message}
}

// IsValidationError reports whether err is a ValidationError.
func IsValidationError(err error) bool {
	var validationError *ValidationError
	return errors.As(err, &validationError)
}
