// Package handler is the HTTP layer. Each endpoint binds and validates
// its payload, calls the repositories, and picks the status code; the
// shared pipeline in base.go adds logging and New Relic attributes.
package handler
