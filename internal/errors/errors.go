package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common error conditions
var (
	// ErrServiceNotFound is returned when a listing is not found
	ErrServiceNotFound = errors.New("service not found")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")
)

// ServiceNotFoundError represents a listing not found error with context
type ServiceNotFoundError struct {
	ServiceID string
}

func (e *ServiceNotFoundError) Error() string {
	return fmt.Sprintf("service with ID '%s' not found", e.ServiceID)
}

func (e *ServiceNotFoundError) Is(target error) bool {
	return target == ErrServiceNotFound
}

// NewServiceNotFoundError creates a new ServiceNotFoundError
func NewServiceNotFoundError(serviceID string) *ServiceNotFoundError {
	return &ServiceNotFoundError{ServiceID: serviceID}
}

// ValidationError represents an input validation error with context
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error for field '%s': %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
