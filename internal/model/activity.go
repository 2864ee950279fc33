package model

import (
	"time"

	"github.com/deppfellow/health-tracker/internal/validation"
)

// Activity is a single logged activity. Started is held in UTC at
// microsecond precision, the resolution of a timestamptz column.
type Activity struct {
	ID          int       `json:"id" db:"id"`
	Description string    `json:"description" db:"description"`
	Duration    float64   `json:"duration" db:"duration"`
	Calories    int       `json:"calories" db:"calories"`
	Started     time.Time `json:"started" db:"started"`
	UserID      int       `json:"userId" db:"user_id"`
}

func (a Activity) OwnerID() int { return a.UserID }

type ActivityFields struct {
	Description string    `json:"description" validate:"max=100"`
	Duration    float64   `json:"duration" validate:"min=0"`
	Calories    int       `json:"calories" validate:"min=0"`
	Started     time.Time `json:"started"`
	UserID      int       `json:"userId"`
}

// Activity builds the stored form of the fields, so a created activity
// reads back unchanged.
func (f ActivityFields) Activity(id int) Activity {
	return Activity{
		ID:          id,
		Description: f.Description,
		Duration:    f.Duration,
		Calories:    f.Calories,
		Started:     f.Started.UTC().Truncate(time.Microsecond),
		UserID:      f.UserID,
	}
}

type CreateActivityPayload struct {
	ActivityFields
}

func (p *CreateActivityPayload) Validate() error {
	return validation.Struct(p)
}

type UpdateActivityPayload struct {
	ID int `param:"id" json:"-"`
	ActivityFields
}

func (p *UpdateActivityPayload) Validate() error {
	return validation.Struct(p)
}
