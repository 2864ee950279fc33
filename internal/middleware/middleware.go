// Package middleware holds the echo middleware shared by every route:
// rate limiting, CORS, request ids, request-scoped logging, New Relic
// tracing and panic recovery, plus the global error handler.
package middleware
