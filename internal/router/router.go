// Package router builds the echo instance: middleware order, the system
// routes and the /api routes.
package router

import (
	"github.com/deppfellow/health-tracker/internal/handler"
	"github.com/deppfellow/health-tracker/internal/middleware"
	"github.com/deppfellow/health-tracker/internal/server"
	"github.com/labstack/echo/v4"
)

// NewRouter returns the configured echo instance.
//
// Middleware runs in this order: rate limit, CORS, secure headers,
// request id, New Relic transaction, tracing attributes, context logger,
// request logger, panic recovery.
func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true

	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	router.Use(
		middlewares.RateLimit.Limit(),
		middlewares.Global.CORS(),
		middlewares.Global.Secure(),
		middleware.RequestID(),
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Global.RequestLogger(),
		middlewares.Global.Recover(),
	)

	registerSystemRoutes(router, h)

	api := router.Group("/api")
	registerUserRoutes(api, h)
	registerActivityRoutes(api, h)
	registerBodyMeasurementRoutes(api, h)
	registerCalorieRoutes(api, h)
	registerWorkoutRoutes(api, h)

	return router
}
