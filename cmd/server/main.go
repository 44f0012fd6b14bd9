package main // Entry point package

import (
	"log" // Logging library

	"github.com/joho/godotenv"    // Optional .env loading for local runs
	"github.com/labstack/echo/v4" // Echo web framework
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/iliyamo/license-activation/internal/config"     // Internal config loader
	"github.com/iliyamo/license-activation/internal/handler"    // HTTP handlers
	"github.com/iliyamo/license-activation/internal/repository" // In-memory stores
	"github.com/iliyamo/license-activation/internal/router"     // Internal router setup
)

func main() {
	// A missing .env file is fine; every config value has a default.
	_ = godotenv.Load()
	cfg := config.Load()

	users := repository.NewUserStore()
	keys := repository.NewKeyStore(cfg.Catalog())

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Logger())
	e.Use(echomw.Recover()) // unexpected panics become 500s instead of killing the process
	e.Use(echomw.CORS())    // the dashboard is served from a different origin

	auth := handler.NewAuthHandler(cfg, users)
	activation := handler.NewActivationHandler(keys)
	router.RegisterRoutes(e, auth, activation, cfg.JWTSecret)

	addr := ":" + cfg.Port
	log.Printf("secure server running on http://localhost%s", addr)

	if err := e.Start(addr); err != nil { // Start HTTP server
		log.Fatal(err)
	}
}
