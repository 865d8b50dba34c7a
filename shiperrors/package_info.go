// Package shiperrors defines the unified error representation shared by the Shipstatic
// API service, SDKs, CLI, and web clients.
//
// Every failure crossing the platform's wire is an Error carrying one of a closed set
// of ErrorType kinds, a human-readable message, an optional HTTP-ish status code, and
// an optional opaque details payload. Callers branch on the kind or on the category
// predicates (IsClientError, IsNetworkError, ...) rather than on message text.
//
// Errors convert to and from the wire shape with Error.ToResponse and FromResponse.
// Recognition of "one of our errors" is structural (see IsShipError), so errors built
// by an independently vendored copy of this package are still recognized.
package shiperrors
