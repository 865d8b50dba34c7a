// Package validate provides the pure format checks for Shipstatic credentials,
// identifiers, and endpoint URLs.
//
// Validators return nil for acceptable input and a *shiperrors.Error of the
// Validation kind naming the violated rule otherwise. No foreign error type ever
// crosses this package's boundary.
package validate
