// Package service holds the work that surrounds a request without
// deciding its response. Today that is notifying new users.
package service
