package service

import (
	"errors"
	"fmt"

	"flowfinance/finance"
)

// ValidationError is returned when an input is outside the ranges the calculator accepts.
// Its message is meant for the end user.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func invalid(message string) error {
	return &ValidationError{Message: message}
}

func invalidf(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// ErrorKind classifies err for responses and metrics.
func ErrorKind(err error) string {
	var v *ValidationError
	if errors.As(err, &v) {
		return "validation"
	}
	if kind := finance.Kind(err); kind != "" {
		return kind
	}
	return "internal"
}
