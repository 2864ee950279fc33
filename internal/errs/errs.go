// Package errs defines the error types returned to API clients.
//
// Every failure that reaches the HTTP layer is rendered as an HTTPError
// so clients always receive the same JSON shape:
//
//	{"code": "NOT_FOUND", "message": "...", "status": 404, ...}
package errs
