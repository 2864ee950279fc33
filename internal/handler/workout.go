package handler

import (
	"github.com/deppfellow/health-tracker/internal/model"
	"github.com/deppfellow/health-tracker/internal/repository"
	"github.com/deppfellow/health-tracker/internal/server"
	"github.com/labstack/echo/v4"
)

type WorkoutHandler struct {
	*ChildHandler[model.Workout]
}

func NewWorkoutHandler(s *server.Server, repos *repository.Repositories) *WorkoutHandler {
	return &WorkoutHandler{
		ChildHandler: newChildHandler(s, "workout", repos.Users, repos.Workouts),
	}
}

func (h *WorkoutHandler) Create(c echo.Context, req *model.CreateWorkoutPayload) (*model.Workout, error) {
	return h.create(c, req.UserID, req.Workout)
}

func (h *WorkoutHandler) Update(c echo.Context, req *model.UpdateWorkoutPayload) error {
	return h.update(c, req.ID, req.Workout(req.ID))
}
