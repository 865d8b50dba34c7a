package shiperrors

import (
	"fmt"
	"net/http"

	"github.com/launchdarkly/go-sdk-common/v3/ldvalue"
)

// ErrorType is the closed set of error kinds used across the platform. Adding a kind
// requires extending this enumeration and providing a matching factory; no other kind
// strings may appear on the wire.
type ErrorType string

const (
	// ErrorTypeValidation means an input failed a format or constraint check.
	ErrorTypeValidation ErrorType = "validation"

	// ErrorTypeNotFound means the requested resource does not exist.
	ErrorTypeNotFound ErrorType = "not_found"

	// ErrorTypeRateLimit means the caller exceeded a request quota.
	ErrorTypeRateLimit ErrorType = "rate_limit"

	// ErrorTypeAuthentication means the request had missing or invalid credentials.
	ErrorTypeAuthentication ErrorType = "authentication"

	// ErrorTypeBusiness means the request was well-formed but violates a business rule.
	ErrorTypeBusiness ErrorType = "business"

	// ErrorTypeAPI is a generic server-side fault.
	ErrorTypeAPI ErrorType = "api"

	// ErrorTypeNetwork means the request never completed at the transport level.
	ErrorTypeNetwork ErrorType = "network"

	// ErrorTypeCancelled means the operation was cancelled by the caller.
	ErrorTypeCancelled ErrorType = "cancelled"

	// ErrorTypeFile means a local file could not be read or was rejected.
	ErrorTypeFile ErrorType = "file"

	// ErrorTypeConfig means client or project configuration is invalid.
	ErrorTypeConfig ErrorType = "config"
)

// IsValid is true if the value is one of the defined error kinds.
func (t ErrorType) IsValid() bool {
	switch t {
	case ErrorTypeValidation, ErrorTypeNotFound, ErrorTypeRateLimit, ErrorTypeAuthentication,
		ErrorTypeBusiness, ErrorTypeAPI, ErrorTypeNetwork, ErrorTypeCancelled,
		ErrorTypeFile, ErrorTypeConfig:
		return true
	}
	return false
}

const (
	defaultRateLimitMessage      = "rate limit exceeded"
	defaultAuthenticationMessage = "authentication required"
	defaultCancelledMessage      = "operation cancelled"
)

// Error is the unified error value. Construction is pure data assembly and never
// fails; components signal failure by returning an *Error.
type Error struct {
	// Type is the error kind; always one of the ErrorType constants.
	Type ErrorType

	// Message is the human-readable description.
	Message string

	// Status is the associated HTTP status code, or 0 if none applies.
	Status int

	// Details is an optional opaque payload; ldvalue.Null() when absent.
	Details ldvalue.Value

	cause error
}

// Error returns the message.
func (e *Error) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause, if the error wraps one (network errors may).
func (e *Error) Unwrap() error {
	return e.cause
}

// ShipErrorType returns the wire string of the kind. Together with StatusCode it forms
// the structural shape that IsShipError recognizes; see the ShipError interface.
func (e *Error) ShipErrorType() string {
	return string(e.Type)
}

// StatusCode returns the associated HTTP status code, or 0 if none applies.
func (e *Error) StatusCode() int {
	return e.Status
}

// NewValidationError creates a Validation error. Pass ldvalue.Null() when there is no
// details payload.
func NewValidationError(message string, details ldvalue.Value) *Error {
	return &Error{
		Type:    ErrorTypeValidation,
		Message: message,
		Status:  http.StatusBadRequest,
		Details: details,
	}
}

// NewNotFoundError creates a NotFound error with the message "{resource} {id} not
// found", or "{resource} not found" when id is empty.
func NewNotFoundError(resource, id string) *Error {
	message := fmt.Sprintf("%s not found", resource)
	if id != "" {
		message = fmt.Sprintf("%s %s not found", resource, id)
	}
	return &Error{
		Type:    ErrorTypeNotFound,
		Message: message,
		Status:  http.StatusNotFound,
	}
}

// NewRateLimitError creates a RateLimit error, using a default message when message
// is empty.
func NewRateLimitError(message string) *Error {
	if message == "" {
		message = defaultRateLimitMessage
	}
	return &Error{
		Type:    ErrorTypeRateLimit,
		Message: message,
		Status:  http.StatusTooManyRequests,
	}
}

// NewAuthenticationError creates an Authentication error, using a default message when
// message is empty.
func NewAuthenticationError(message string) *Error {
	if message == "" {
		message = defaultAuthenticationMessage
	}
	return &Error{
		Type:    ErrorTypeAuthentication,
		Message: message,
		Status:  http.StatusUnauthorized,
	}
}

// NewBusinessError creates a Business error. A zero status defaults to 400.
func NewBusinessError(message string, status int) *Error {
	if status == 0 {
		status = http.StatusBadRequest
	}
	return &Error{
		Type:    ErrorTypeBusiness,
		Message: message,
		Status:  status,
	}
}

// NewAPIError creates a generic server-fault error. A zero status defaults to 500.
func NewAPIError(message string, status int) *Error {
	if status == 0 {
		status = http.StatusInternalServerError
	}
	return &Error{
		Type:    ErrorTypeAPI,
		Message: message,
		Status:  status,
	}
}

// NewNetworkError creates a Network error, optionally wrapping the transport-level
// cause. The cause is available through errors.Unwrap but never serialized.
func NewNetworkError(message string, cause error) *Error {
	return &Error{
		Type:    ErrorTypeNetwork,
		Message: message,
		cause:   cause,
	}
}

// NewCancelledError creates a Cancelled error, using a default message when message
// is empty.
func NewCancelledError(message string) *Error {
	if message == "" {
		message = defaultCancelledMessage
	}
	return &Error{
		Type:    ErrorTypeCancelled,
		Message: message,
	}
}

// NewFileError creates a File error. Pass ldvalue.Null() when there is no details
// payload.
func NewFileError(message string, details ldvalue.Value) *Error {
	return &Error{
		Type:    ErrorTypeFile,
		Message: message,
		Details: details,
	}
}

// NewConfigError creates a Config error.
func NewConfigError(message string) *Error {
	return &Error{
		Type:    ErrorTypeConfig,
		Message: message,
	}
}
