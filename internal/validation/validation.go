// Package validation binds request data and validates it.
//
// Rules live in `validate` struct tags on the payload types; failures
// are turned into field-level errors the client can act on.
package validation
