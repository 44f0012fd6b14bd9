package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"github.com/iliyamo/license-activation/internal/handler"    // import the handlers that implement business logic
	"github.com/iliyamo/license-activation/internal/middleware" // import middleware for bearer-token authentication
)

// RegisterRoutes wires every endpoint onto the provided Echo instance.
// /ping, /api/register and /api/login are public; /api/activate and
// /api/status sit behind the bearer-token gate, which runs first and
// short-circuits on failure.
func RegisterRoutes(e *echo.Echo, a *handler.AuthHandler, act *handler.ActivationHandler, jwtSecret string) {
	e.GET("/ping", handler.Ping)

	api := e.Group("/api")
	api.POST("/register", a.Register)
	api.POST("/login", a.Login)

	protected := e.Group("/api")
	protected.Use(middleware.BearerAuth(jwtSecret))
	protected.POST("/activate", act.Activate)
	protected.GET("/status", act.Status)
}
