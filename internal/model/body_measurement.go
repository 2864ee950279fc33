package model

import "github.com/deppfellow/health-tracker/internal/validation"

// BodyMeasurement values are stored as given; no units are enforced.
type BodyMeasurement struct {
	ID     int     `json:"id" db:"id"`
	Weight float64 `json:"weight" db:"weight"`
	Height float64 `json:"height" db:"height"`
	Waist  float64 `json:"waist" db:"waist"`
	Chest  float64 `json:"chest" db:"chest"`
	UserID int     `json:"userId" db:"user_id"`
}

func (b BodyMeasurement) OwnerID() int { return b.UserID }

type BodyMeasurementFields struct {
	Weight float64 `json:"weight" validate:"min=0"`
	Height float64 `json:"height" validate:"min=0"`
	Waist  float64 `json:"waist" validate:"min=0"`
	Chest  float64 `json:"chest" validate:"min=0"`
	UserID int     `json:"userId"`
}

func (f BodyMeasurementFields) BodyMeasurement(id int) BodyMeasurement {
	return BodyMeasurement{
		ID:     id,
		Weight: f.Weight,
		Height: f.Height,
		Waist:  f.Waist,
		Chest:  f.Chest,
		UserID: f.UserID,
	}
}

type CreateBodyMeasurementPayload struct {
	BodyMeasurementFields
}

func (p *CreateBodyMeasurementPayload) Validate() error {
	return validation.Struct(p)
}

type UpdateBodyMeasurementPayload struct {
	ID int `param:"id" json:"-"`
	BodyMeasurementFields
}

func (p *UpdateBodyMeasurementPayload) Validate() error {
	return validation.Struct(p)
}
