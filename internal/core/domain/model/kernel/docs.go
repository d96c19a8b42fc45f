// Package kernel contains the shared value objects of the fulfillment domain:
// UUID identifiers and geographic points. All types in this package are
// immutable, validated at construction, and safe for concurrent use.
//
// The zero value of every kernel type is invalid; instances must be created
// through the package constructors. Aggregates embed kernel types for their
// identities and coordinates so that validation lives in exactly one place.
package kernel
