// Package api defines the entity representations and status enumerations that make up
// the Shipstatic wire contract.
//
// Every type here is a plain data record mirroring the JSON payloads exchanged between
// the API service, the SDKs, the CLI, and web clients. Entities are constructed and
// mutated exclusively by the API service; this package only describes shape. Fields
// documented as stable are never re-sent as mutated by a client.
package api
