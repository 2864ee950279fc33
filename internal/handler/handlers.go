package handler

import (
	"github.com/deppfellow/health-tracker/internal/repository"
	"github.com/deppfellow/health-tracker/internal/server"
	"github.com/deppfellow/health-tracker/internal/service"
)

// Handlers groups every handler so the router receives one value.
type Handlers struct {
	Health          *HealthHandler
	User            *UserHandler
	Activity        *ActivityHandler
	BodyMeasurement *BodyMeasurementHandler
	Calorie         *CalorieHandler
	Workout         *WorkoutHandler
}

// NewHandlers builds the handlers on top of the injected repositories.
func NewHandlers(s *server.Server, repos *repository.Repositories, services *service.Services) *Handlers {
	return &Handlers{
		Health:          NewHealthHandler(s),
		User:            NewUserHandler(s, repos, services),
		Activity:        NewActivityHandler(s, repos),
		BodyMeasurement: NewBodyMeasurementHandler(s, repos),
		Calorie:         NewCalorieHandler(s, repos),
		Workout:         NewWorkoutHandler(s, repos),
	}
}
