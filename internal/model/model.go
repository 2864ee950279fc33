// Package model defines the health tracker records and the request
// payloads the handlers bind into.
//
// Records carry `json` tags for the wire format and `db` tags so pgx can
// scan rows straight into them with RowToStructByName.
package model

import "github.com/deppfellow/health-tracker/internal/validation"

// IDPayload is bound from the ":id" path parameter.
type IDPayload struct {
	ID int `param:"id" json:"-"`
}

func (p *IDPayload) Validate() error {
	return validation.Struct(p)
}

// UserIDPayload is bound from "/users/:id/..." routes, where the id names the parent user.
type UserIDPayload struct {
	UserID int `param:"id" json:"-"`
}

func (p *UserIDPayload) Validate() error {
	return validation.Struct(p)
}

// ListPayload is the empty request of the list-all endpoints.
type ListPayload struct{}

func (p *ListPayload) Validate() error {
	return nil
}
