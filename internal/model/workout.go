package model

import "github.com/deppfellow/health-tracker/internal/validation"

// Workout counts repetitions in Numbers.
type Workout struct {
	ID          int     `json:"id" db:"id"`
	Description string  `json:"description" db:"description"`
	Duration    float64 `json:"duration" db:"duration"`
	Numbers     int     `json:"numbers" db:"numbers"`
	UserID      int     `json:"userId" db:"user_id"`
}

func (w Workout) OwnerID() int { return w.UserID }

type WorkoutFields struct {
	Description string  `json:"description" validate:"max=100"`
	Duration    float64 `json:"duration" validate:"min=0"`
	Numbers     int     `json:"numbers" validate:"min=0"`
	UserID      int     `json:"userId"`
}

func (f WorkoutFields) Workout(id int) Workout {
	return Workout{
		ID:          id,
		Description: f.Description,
		Duration:    f.Duration,
		Numbers:     f.Numbers,
		UserID:      f.UserID,
	}
}

type CreateWorkoutPayload struct {
	WorkoutFields
}

func (p *CreateWorkoutPayload) Validate() error {
	return validation.Struct(p)
}

type UpdateWorkoutPayload struct {
	ID int `param:"id" json:"-"`
	WorkoutFields
}

func (p *UpdateWorkoutPayload) Validate() error {
	return validation.Struct(p)
}
