package apihelp

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidClass is returned when a registration names no usable class
	// (nil, or a type without a name such as []int or struct{}).
	ErrInvalidClass = errors.New("invalid class")

	// ErrEmptyName is returned when a registration has a blank method name
	ErrEmptyName = errors.New("method name is empty")

	// ErrPanic wraps a panic recovered while recording a registration
	ErrPanic = errors.New("registration panicked")
)

// RegistrationError describes a failed registration
type RegistrationError struct {
	Class  string
	Method string
	Err    error
}

// Error implements the error interface
func (e *RegistrationError) Error() string {
	class := e.Class
	if class == "" {
		class = "<nil>"
	}
	return fmt.Sprintf("api help: register %s.%s: %v", class, e.Method, e.Err)
}

// Unwrap returns the underlying cause
func (e *RegistrationError) Unwrap() error {
	return e.Err
}
