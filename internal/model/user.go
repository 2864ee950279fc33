package model

import "github.com/deppfellow/health-tracker/internal/validation"

type User struct {
	ID    int    `json:"id" db:"id"`
	Name  string `json:"name" db:"name"`
	Email string `json:"email" db:"email"`
}

// UserFields are the client-writable user attributes.
type UserFields struct {
	Name  string `json:"name" validate:"required,max=100"`
	Email string `json:"email" validate:"required,email,max=255"`
}

func (f UserFields) User(id int) User {
	return User{ID: id, Name: f.Name, Email: f.Email}
}

type CreateUserPayload struct {
	UserFields
}

func (p *CreateUserPayload) Validate() error {
	return validation.Struct(p)
}

type UpdateUserPayload struct {
	ID int `param:"id" json:"-"`
	UserFields
}

func (p *UpdateUserPayload) Validate() error {
	return validation.Struct(p)
}

type UserEmailPayload struct {
	Email string `param:"email" json:"-" validate:"required"`
}

func (p *UserEmailPayload) Validate() error {
	return validation.Struct(p)
}
