package domain

import "fmt"

type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// Is makes DomainError work with errors.Is by comparing codes.
func (e *DomainError) Is(target error) bool {
	if t, ok := target.(*DomainError); ok {
		return e.Code == t.Code
	}
	return false
}

var (
	// ErrNotFound - lookup by id found nothing
	ErrNotFound = &DomainError{
		Code:    "NOT_FOUND",
		Message: "resource not found",
	}

	// ErrValidation - malformed or missing required input
	ErrValidation = &DomainError{
		Code:    "VALIDATION",
		Message: "invalid request",
	}
)

// NewNotFoundError creates a NOT_FOUND error naming the missing resource.
func NewNotFoundError(resource string) *DomainError {
	return &DomainError{
		Code:    "NOT_FOUND",
		Message: fmt.Sprintf("%s not found", resource),
	}
}

// NewValidationError creates a VALIDATION error with the given message.
func NewValidationError(message string) *DomainError {
	return &DomainError{
		Code:    "VALIDATION",
		Message: message,
	}
}
