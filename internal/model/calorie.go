package model

import "github.com/deppfellow/health-tracker/internal/validation"

// Calorie is one day's intake split per meal.
type Calorie struct {
	ID        int     `json:"id" db:"id"`
	Breakfast float64 `json:"breakfast" db:"breakfast"`
	Lunch     float64 `json:"lunch" db:"lunch"`
	Dinner    float64 `json:"dinner" db:"dinner"`
	Snack     float64 `json:"snack" db:"snack"`
	UserID    int     `json:"userId" db:"user_id"`
}

func (c Calorie) OwnerID() int { return c.UserID }

type CalorieFields struct {
	Breakfast float64 `json:"breakfast" validate:"min=0"`
	Lunch     float64 `json:"lunch" validate:"min=0"`
	Dinner    float64 `json:"dinner" validate:"min=0"`
	Snack     float64 `json:"snack" validate:"min=0"`
	UserID    int     `json:"userId"`
}

func (f CalorieFields) Calorie(id int) Calorie {
	return Calorie{
		ID:        id,
		Breakfast: f.Breakfast,
		Lunch:     f.Lunch,
		Dinner:    f.Dinner,
		Snack:     f.Snack,
		UserID:    f.UserID,
	}
}

type CreateCaloriePayload struct {
	CalorieFields
}

func (p *CreateCaloriePayload) Validate() error {
	return validation.Struct(p)
}

type UpdateCaloriePayload struct {
	ID int `param:"id" json:"-"`
	CalorieFields
}

func (p *UpdateCaloriePayload) Validate() error {
	return validation.Struct(p)
}
