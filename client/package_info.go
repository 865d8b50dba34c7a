// Package client is a reference HTTP implementation of the Shipstatic resource
// contracts, exercising the wire formats defined by the api and shiperrors packages.
//
// It is intentionally minimal: no retries, no caching, and no upload pipeline. Its
// job is to demonstrate the contract surface and to pin the wire behavior with tests;
// full-featured SDKs live elsewhere.
package client
