package handler

import (
	"github.com/deppfellow/health-tracker/internal/model"
	"github.com/deppfellow/health-tracker/internal/repository"
	"github.com/deppfellow/health-tracker/internal/server"
	"github.com/labstack/echo/v4"
)

type BodyMeasurementHandler struct {
	*ChildHandler[model.BodyMeasurement]
}

func NewBodyMeasurementHandler(s *server.Server, repos *repository.Repositories) *BodyMeasurementHandler {
	return &BodyMeasurementHandler{
		ChildHandler: newChildHandler(s, "body measurement", repos.Users, repos.BodyMeasurements),
	}
}

func (h *BodyMeasurementHandler) Create(c echo.Context, req *model.CreateBodyMeasurementPayload) (*model.BodyMeasurement, error) {
	return h.create(c, req.UserID, req.BodyMeasurement)
}

func (h *BodyMeasurementHandler) Update(c echo.Context, req *model.UpdateBodyMeasurementPayload) error {
	return h.update(c, req.ID, req.BodyMeasurement(req.ID))
}
