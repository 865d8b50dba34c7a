package shiperrors

// errorCategory classifies kinds for the coarse-grained predicates. The mapping is a
// fixed property of each kind, not per-instance state.
type errorCategory int

const (
	categoryNone errorCategory = iota
	categoryClient
	categoryNetwork
	categoryAuth
)

var kindCategories = map[ErrorType]errorCategory{
	ErrorTypeValidation:     categoryClient,
	ErrorTypeBusiness:       categoryClient,
	ErrorTypeConfig:         categoryClient,
	ErrorTypeFile:           categoryClient,
	ErrorTypeNetwork:        categoryNetwork,
	ErrorTypeAuthentication: categoryAuth,
	ErrorTypeNotFound:       categoryNone,
	ErrorTypeRateLimit:      categoryNone,
	ErrorTypeAPI:            categoryNone,
	ErrorTypeCancelled:      categoryNone,
}

func categoryOf(err error) errorCategory {
	if e, ok := AsShipError(err); ok {
		return kindCategories[e.Type]
	}
	return categoryNone
}

// IsType is true if err is a platform error of the given kind.
func IsType(err error, kind ErrorType) bool {
	if e, ok := AsShipError(err); ok {
		return e.Type == kind
	}
	return false
}

// IsClientError is true for kinds caused by the caller's own input or environment:
// business, config, file, and validation.
func IsClientError(err error) bool {
	return categoryOf(err) == categoryClient
}

// IsNetworkError is true for transport-level failures.
func IsNetworkError(err error) bool {
	return categoryOf(err) == categoryNetwork
}

// IsAuthError is true for authentication failures.
func IsAuthError(err error) bool {
	return categoryOf(err) == categoryAuth
}

// IsValidationError is true for validation failures.
func IsValidationError(err error) bool {
	return IsType(err, ErrorTypeValidation)
}

// IsFileError is true for local file failures.
func IsFileError(err error) bool {
	return IsType(err, ErrorTypeFile)
}

// IsConfigError is true for configuration failures.
func IsConfigError(err error) bool {
	return IsType(err, ErrorTypeConfig)
}
