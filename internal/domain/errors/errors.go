package errors

import (
	"errors"
	"strings"
)

var (
	ErrAlreadyExists      = errors.New("already exists")
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountNotLinked   = errors.New("no connected account linked to user")
	ErrDemoDisabled       = errors.New("demo mode disabled")
)

// ValidationError aggregates every field violation found in a request
// instead of stopping at the first one.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, "; ")
}

// NewValidation builds ValidationError from collected messages.
// Returns nil when there is nothing to report.
func NewValidation(messages []string) error {
	if len(messages) == 0 {
		return nil
	}
	return &ValidationError{Messages: messages}
}

// AsValidation reports whether err carries aggregated validation messages.
func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
