package router

import (
	"net/http"

	"github.com/deppfellow/health-tracker/internal/handler"
	"github.com/deppfellow/health-tracker/internal/model"
	"github.com/labstack/echo/v4"
)

func registerUserRoutes(api *echo.Group, h *handler.Handlers) {
	u := h.User

	users := api.Group("/users")
	users.GET("", handler.HandleList(u.Handler, u.GetAll, &model.ListPayload{}))
	users.POST("", handler.Handle(u.Handler, u.Create, http.StatusCreated, &model.CreateUserPayload{}))
	users.GET("/email/:email", handler.Handle(u.Handler, u.GetByEmail, http.StatusOK, &model.UserEmailPayload{}))
	users.GET("/:id", handler.Handle(u.Handler, u.GetByID, http.StatusOK, &model.IDPayload{}))
	users.PATCH("/:id", handler.HandleNoContent(u.Handler, u.Update, http.StatusNoContent, &model.UpdateUserPayload{}))
	users.DELETE("/:id", handler.HandleNoContent(u.Handler, u.Delete, http.StatusNoContent, &model.IDPayload{}))
}

func registerActivityRoutes(api *echo.Group, h *handler.Handlers) {
	a := h.Activity

	activities := api.Group("/activities")
	activities.GET("", handler.HandleList(a.Handler, a.GetAll, &model.ListPayload{}))
	activities.POST("", handler.Handle(a.Handler, a.Create, http.StatusCreated, &model.CreateActivityPayload{}))
	activities.GET("/:id", handler.Handle(a.Handler, a.GetByID, http.StatusOK, &model.IDPayload{}))
	activities.PATCH("/:id", handler.HandleNoContent(a.Handler, a.Update, http.StatusNoContent, &model.UpdateActivityPayload{}))
	activities.DELETE("/:id", handler.HandleNoContent(a.Handler, a.DeleteByID, http.StatusNoContent, &model.IDPayload{}))

	api.GET("/users/:id/activities", handler.Handle(a.Handler, a.GetByUserID, http.StatusOK, &model.UserIDPayload{}))
	api.DELETE("/users/:id/activities", handler.HandleNoContent(a.Handler, a.DeleteByUserID, http.StatusNoContent, &model.UserIDPayload{}))
}

func registerBodyMeasurementRoutes(api *echo.Group, h *handler.Handlers) {
	b := h.BodyMeasurement

	measurements := api.Group("/bodyMeasurements")
	measurements.GET("", handler.HandleList(b.Handler, b.GetAll, &model.ListPayload{}))
	measurements.POST("", handler.Handle(b.Handler, b.Create, http.StatusCreated, &model.CreateBodyMeasurementPayload{}))
	measurements.GET("/:id", handler.Handle(b.Handler, b.GetByID, http.StatusOK, &model.IDPayload{}))
	measurements.PATCH("/:id", handler.HandleNoContent(b.Handler, b.Update, http.StatusNoContent, &model.UpdateBodyMeasurementPayload{}))
	measurements.DELETE("/:id", handler.HandleNoContent(b.Handler, b.DeleteByID, http.StatusNoContent, &model.IDPayload{}))

	api.GET("/users/:id/bodyMeasurements", handler.Handle(b.Handler, b.GetByUserID, http.StatusOK, &model.UserIDPayload{}))
	api.DELETE("/users/:id/bodyMeasurements", handler.HandleNoContent(b.Handler, b.DeleteByUserID, http.StatusNoContent, &model.UserIDPayload{}))
}

func registerCalorieRoutes(api *echo.Group, h *handler.Handlers) {
	cal := h.Calorie

	calories := api.Group("/calories")
	calories.GET("", handler.HandleList(cal.Handler, cal.GetAll, &model.ListPayload{}))
	calories.POST("", handler.Handle(cal.Handler, cal.Create, http.StatusCreated, &model.CreateCaloriePayload{}))
	calories.GET("/:id", handler.Handle(cal.Handler, cal.GetByID, http.StatusOK, &model.IDPayload{}))
	calories.PATCH("/:id", handler.HandleNoContent(cal.Handler, cal.Update, http.StatusNoContent, &model.UpdateCaloriePayload{}))
	calories.DELETE("/:id", handler.HandleNoContent(cal.Handler, cal.DeleteByID, http.StatusNoContent, &model.IDPayload{}))

	api.GET("/users/:id/calories", handler.Handle(cal.Handler, cal.GetByUserID, http.StatusOK, &model.UserIDPayload{}))
	api.DELETE("/users/:id/calories", handler.HandleNoContent(cal.Handler, cal.DeleteByUserID, http.StatusNoContent, &model.UserIDPayload{}))
}

func registerWorkoutRoutes(api *echo.Group, h *handler.Handlers) {
	w := h.Workout

	workouts := api.Group("/workouts")
	workouts.GET("", handler.HandleList(w.Handler, w.GetAll, &model.ListPayload{}))
	workouts.POST("", handler.Handle(w.Handler, w.Create, http.StatusCreated, &model.CreateWorkoutPayload{}))
	workouts.GET("/:id", handler.Handle(w.Handler, w.GetByID, http.StatusOK, &model.IDPayload{}))
	workouts.PATCH("/:id", handler.HandleNoContent(w.Handler, w.Update, http.StatusNoContent, &model.UpdateWorkoutPayload{}))
	workouts.DELETE("/:id", handler.HandleNoContent(w.Handler, w.DeleteByID, http.StatusNoContent, &model.IDPayload{}))

	api.GET("/users/:id/workouts", handler.Handle(w.Handler, w.GetByUserID, http.StatusOK, &model.UserIDPayload{}))
	api.DELETE("/users/:id/workouts", handler.HandleNoContent(w.Handler, w.DeleteByUserID, http.StatusNoContent, &model.UserIDPayload{}))
}
