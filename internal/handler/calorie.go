package handler

import (
	"github.com/deppfellow/health-tracker/internal/model"
	"github.com/deppfellow/health-tracker/internal/repository"
	"github.com/deppfellow/health-tracker/internal/server"
	"github.com/labstack/echo/v4"
)

type CalorieHandler struct {
	*ChildHandler[model.Calorie]
}

func NewCalorieHandler(s *server.Server, repos *repository.Repositories) *CalorieHandler {
	return &CalorieHandler{
		ChildHandler: newChildHandler(s, "calorie", repos.Users, repos.Calories),
	}
}

func (h *CalorieHandler) Create(c echo.Context, req *model.CreateCaloriePayload) (*model.Calorie, error) {
	return h.create(c, req.UserID, req.Calorie)
}

func (h *CalorieHandler) Update(c echo.Context, req *model.UpdateCaloriePayload) error {
	return h.update(c, req.ID, req.Calorie(req.ID))
}
