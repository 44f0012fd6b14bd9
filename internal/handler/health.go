package handler // declare the package name; contains HTTP handlers

import (
	"net/http" // net/http provides status codes and response helpers

	"github.com/labstack/echo/v4" // echo is the web framework used for this project
)

// Ping is the liveness endpoint uptime monitors hit to keep the process
// awake. It answers unconditionally, independent of store state, and
// requires no authentication.
func Ping(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"status":  "ok",
		"message": "Server is awake and running.",
	})
}
