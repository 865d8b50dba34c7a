package shiperrors

import (
	"errors"

	"github.com/launchdarkly/go-sdk-common/v3/ldvalue"
)

// internalDetailKey marks a details payload as internal-only. Authentication errors
// carrying it have their details stripped before serialization so that internals are
// never leaked to clients.
const internalDetailKey = "internal"

// ErrorResponse is the JSON wire shape of an Error:
// {"error": kind, "message": ..., "status"?: ..., "details"?: ...}.
type ErrorResponse struct {
	Error   string         `json:"error"`
	Message string         `json:"message"`
	Status  int            `json:"status,omitempty"`
	Details *ldvalue.Value `json:"details,omitempty"`
}

// ToResponse converts the error to its wire shape. For all kinds except
// Authentication-with-internal-details, FromResponse(e.ToResponse()) reconstructs an
// equivalent error.
func (e *Error) ToResponse() ErrorResponse {
	resp := ErrorResponse{
		Error:   string(e.Type),
		Message: e.Message,
		Status:  e.Status,
	}
	details := e.Details
	if e.Type == ErrorTypeAuthentication && hasInternalMarker(details) {
		details = ldvalue.Null()
	}
	if !details.IsNull() {
		resp.Details = details.AsPointer()
	}
	return resp
}

// FromResponse reconstructs an Error from its wire shape. An unrecognized kind string
// normalizes to ErrorTypeAPI rather than introducing a kind outside the enumeration.
func FromResponse(resp ErrorResponse) *Error {
	kind := ErrorType(resp.Error)
	if !kind.IsValid() {
		kind = ErrorTypeAPI
	}
	e := &Error{
		Type:    kind,
		Message: resp.Message,
		Status:  resp.Status,
	}
	if resp.Details != nil {
		e.Details = *resp.Details
	}
	return e
}

func hasInternalMarker(details ldvalue.Value) bool {
	if details.Type() != ldvalue.ObjectType {
		return false
	}
	_, found := details.TryGetByKey(internalDetailKey)
	return found
}

// ShipError is the structural capability surface that identifies a platform error.
//
// It is deliberately expressed with built-in types only, so that an Error constructed
// by an independently vendored copy of this package still satisfies it; recognition
// never depends on nominal type identity.
type ShipError interface {
	error

	// ShipErrorType returns the wire string of the error kind.
	ShipErrorType() string

	// StatusCode returns the associated HTTP status code, or 0 if none applies.
	StatusCode() int
}

// IsShipError reports whether err (or anything in its wrap chain) is a platform error:
// it must expose the ShipError shape and its kind string must be one of the defined
// ErrorType values.
func IsShipError(err error) bool {
	_, ok := AsShipError(err)
	return ok
}

// AsShipError returns the platform-error view of err. When err carries an *Error from
// this package instance it is returned directly; when it merely satisfies the
// ShipError shape (for example, from a duplicate copy of the package), an equivalent
// *Error is reconstructed from the shape.
func AsShipError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	var shaped ShipError
	if errors.As(err, &shaped) {
		kind := ErrorType(shaped.ShipErrorType())
		if kind.IsValid() {
			return &Error{
				Type:    kind,
				Message: shaped.Error(),
				Status:  shaped.StatusCode(),
			}, true
		}
	}
	return nil, false
}
