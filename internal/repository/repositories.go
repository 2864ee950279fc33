package repository

import (
	"github.com/deppfellow/health-tracker/internal/model"
	"github.com/deppfellow/health-tracker/internal/server"
)

// Repositories is the container handed to handlers and services.
//
// Fields are interfaces so tests can swap in the in-memory set from
// the memstore package.
type Repositories struct {
	Users            UserStore
	Activities       ChildStore[model.Activity]
	BodyMeasurements ChildStore[model.BodyMeasurement]
	Calories         ChildStore[model.Calorie]
	Workouts         ChildStore[model.Workout]
}

// NewRepositories builds the PostgreSQL-backed repositories on s.DB.Pool.
func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Users:            NewUserRepository(s),
		Activities:       NewActivityRepository(s),
		BodyMeasurements: NewBodyMeasurementRepository(s),
		Calories:         NewCalorieRepository(s),
		Workouts:         NewWorkoutRepository(s),
	}
}

var (
	_ UserStore                         = (*UserRepository)(nil)
	_ ChildStore[model.Activity]        = (*ActivityRepository)(nil)
	_ ChildStore[model.BodyMeasurement] = (*BodyMeasurementRepository)(nil)
	_ ChildStore[model.Calorie]         = (*CalorieRepository)(nil)
	_ ChildStore[model.Workout]         = (*WorkoutRepository)(nil)
)
