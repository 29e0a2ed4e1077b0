package dto

import "net/http"

// Error code constants organized by category
// Format: ERR_<CATEGORY>_<DESCRIPTION>

// General error codes
const (
	// ErrCodeUnknown is used when the error type is unknown
	ErrCodeUnknown = "ERR_UNKNOWN"
	// ErrCodeInternal is used for internal server errors
	ErrCodeInternal = "ERR_INTERNAL"
)

// Validation error codes
const (
	ErrCodeValidation         = "ERR_VALIDATION"
	ErrCodeValidationRequired = "ERR_VALIDATION_REQUIRED"
	ErrCodeValidationFormat   = "ERR_VALIDATION_FORMAT"
	ErrCodeValidationRange    = "ERR_VALIDATION_RANGE"
	ErrCodeValidationLength   = "ERR_VALIDATION_LENGTH"
)

// Authentication error codes
const (
	// ErrCodeUnauthorized is used when authentication is required but missing
	ErrCodeUnauthorized = "ERR_UNAUTHORIZED"
	// ErrCodeForbidden is used when the caller is known but not allowed
	ErrCodeForbidden = "ERR_FORBIDDEN"
	// ErrCodeInvalidCredentials is returned by login for a bad username or password
	ErrCodeInvalidCredentials = "ERR_INVALID_CREDENTIALS"
	ErrCodeTokenExpired       = "ERR_TOKEN_EXPIRED"
	ErrCodeTokenInvalid       = "ERR_TOKEN_INVALID"
	// ErrCodeTokenRevoked is used for tokens invalidated by logout
	ErrCodeTokenRevoked = "ERR_TOKEN_REVOKED"
)

// Resource error codes
const (
	ErrCodeNotFound      = "ERR_NOT_FOUND"
	ErrCodeAlreadyExists = "ERR_ALREADY_EXISTS"
	// ErrCodeConflict is used when a resource is still referenced, e.g. a tenant with bills
	ErrCodeConflict = "ERR_CONFLICT"
	// ErrCodeDuplicateRequest is used when an Idempotency-Key was already seen
	ErrCodeDuplicateRequest = "ERR_DUPLICATE_REQUEST"
)

// Input error codes
const (
	// ErrCodeBadRequest is used for malformed requests
	ErrCodeBadRequest = "ERR_BAD_REQUEST"
	// ErrCodeInvalidInput is used for input that references missing data
	ErrCodeInvalidInput = "ERR_INVALID_INPUT"
	// ErrCodeRequestTooLarge is used when the body exceeds the configured limit
	ErrCodeRequestTooLarge = "ERR_REQUEST_TOO_LARGE"
)

// Rate limiting error codes
const (
	ErrCodeRateLimited = "ERR_RATE_LIMITED"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeUnknown:  http.StatusInternalServerError,
	ErrCodeInternal: http.StatusInternalServerError,

	// Validation errors -> 400 Bad Request
	ErrCodeValidation:         http.StatusBadRequest,
	ErrCodeValidationRequired: http.StatusBadRequest,
	ErrCodeValidationFormat:   http.StatusBadRequest,
	ErrCodeValidationRange:    http.StatusBadRequest,
	ErrCodeValidationLength:   http.StatusBadRequest,

	// Auth errors
	ErrCodeUnauthorized:       http.StatusUnauthorized,
	ErrCodeForbidden:          http.StatusForbidden,
	ErrCodeInvalidCredentials: http.StatusUnauthorized,
	ErrCodeTokenExpired:       http.StatusUnauthorized,
	ErrCodeTokenInvalid:       http.StatusUnauthorized,
	ErrCodeTokenRevoked:       http.StatusUnauthorized,

	// Resource errors
	ErrCodeNotFound:         http.StatusNotFound,
	ErrCodeAlreadyExists:    http.StatusConflict,
	ErrCodeConflict:         http.StatusConflict,
	ErrCodeDuplicateRequest: http.StatusConflict,

	// Input errors
	ErrCodeBadRequest:      http.StatusBadRequest,
	ErrCodeInvalidInput:    http.StatusBadRequest,
	ErrCodeRequestTooLarge: http.StatusRequestEntityTooLarge,

	ErrCodeRateLimited: http.StatusTooManyRequests,
}

// GetHTTPStatus returns the HTTP status code for an error code
// Returns 500 Internal Server Error if the error code is not found
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// LegacyErrorCodeMapping maps domain error codes to the API codes
var LegacyErrorCodeMapping = map[string]string{
	"NOT_FOUND":           ErrCodeNotFound,
	"ALREADY_EXISTS":      ErrCodeAlreadyExists,
	"INVALID_INPUT":       ErrCodeInvalidInput,
	"CONFLICT":            ErrCodeConflict,
	"DUPLICATE_REQUEST":   ErrCodeDuplicateRequest,
	"UNAUTHORIZED":        ErrCodeUnauthorized,
	"INVALID_CREDENTIALS": ErrCodeInvalidCredentials,
	"VALIDATION_ERROR":    ErrCodeValidation,
	"VALIDATION_REQUIRED": ErrCodeValidationRequired,
	"VALIDATION_FORMAT":   ErrCodeValidationFormat,
	"VALIDATION_RANGE":    ErrCodeValidationRange,
	"VALIDATION_LENGTH":   ErrCodeValidationLength,
	"BAD_REQUEST":         ErrCodeBadRequest,
	"INTERNAL_ERROR":      ErrCodeInternal,
}

// NormalizeErrorCode converts a domain error code to the standardized format
// If the code is already in the new format or unknown, returns it as-is
func NormalizeErrorCode(code string) string {
	if newCode, ok := LegacyErrorCodeMapping[code]; ok {
		return newCode
	}
	return code
}
