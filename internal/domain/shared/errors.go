package shared

import "errors"

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// Is reports whether target carries the same code, so wrapped copies of the
// common errors below still match with errors.Is.
func (e *DomainError) Is(target error) bool {
	var other *DomainError
	if !errors.As(target, &other) {
		return false
	}
	return e.Code == other.Code
}

// Expected marks domain errors as caller mistakes rather than faults
func (e *DomainError) Expected() bool {
	return true
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrNotFound        = NewDomainError("NOT_FOUND", "Resource not found")
	ErrAlreadyExists   = NewDomainError("ALREADY_EXISTS", "Resource already exists")
	ErrInvalidInput    = NewDomainError("INVALID_INPUT", "Invalid input provided")
	ErrConflict        = NewDomainError("CONFLICT", "Resource is referenced by other records")
	ErrUnauthorized    = NewDomainError("UNAUTHORIZED", "Not authorized to perform this action")
	ErrValidation      = NewDomainError("VALIDATION_ERROR", "Validation failed")
	ErrDuplicateRecord = NewDomainError("DUPLICATE_REQUEST", "Request has already been processed")
)

// IsNotFound reports whether err is, or wraps, a not-found domain error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
