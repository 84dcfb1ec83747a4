package service

import (
	"errors"
	"fmt"
)

// ErrNotOwner is returned when a record exists but belongs to another user.
// Handlers map it to a 401.
var ErrNotOwner = errors.New("record belongs to another user")

// ValidationError reports malformed or missing input, checked before any
// store access. Handlers map it to a 400.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

func invalidf(format string, args ...any) *ValidationError {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
