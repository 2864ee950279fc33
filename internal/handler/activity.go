package handler

import (
	"github.com/deppfellow/health-tracker/internal/model"
	"github.com/deppfellow/health-tracker/internal/repository"
	"github.com/deppfellow/health-tracker/internal/server"
	"github.com/labstack/echo/v4"
)

type ActivityHandler struct {
	*ChildHandler[model.Activity]
}

func NewActivityHandler(s *server.Server, repos *repository.Repositories) *ActivityHandler {
	return &ActivityHandler{
		ChildHandler: newChildHandler(s, "activity", repos.Users, repos.Activities),
	}
}

func (h *ActivityHandler) Create(c echo.Context, req *model.CreateActivityPayload) (*model.Activity, error) {
	return h.create(c, req.UserID, req.Activity)
}

func (h *ActivityHandler) Update(c echo.Context, req *model.UpdateActivityPayload) error {
	return h.update(c, req.ID, req.Activity(req.ID))
}
