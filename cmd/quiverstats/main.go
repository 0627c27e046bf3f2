package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/quiverstats/backend/cmd/quiverstats/container"
	"github.com/quiverstats/backend/cmd/quiverstats/routes"
	"github.com/quiverstats/backend/common/bootstrap"
	"github.com/quiverstats/backend/common/db"
	"github.com/quiverstats/backend/common/server"
)

func main() {
	ctx := context.Background()

	// Bootstrap common components (config, logger, DB) and make sure the
	// schema exists before serving traffic
	components, err := bootstrap.Setup(ctx, "quiverstats",
		bootstrap.WithDBInitHook(db.EnsureSchema),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to bootstrap quiverstats: %v\n", err)
		os.Exit(1)
	}
	defer components.Shutdown(ctx)

	// Initialize service container (singleton pattern - all services created once)
	serviceContainer := container.NewContainer(components)

	// Initialize Echo server
	e := setupEcho()

	// Setup middleware
	setupMiddleware(e)

	// Setup health check
	setupHealthCheck(e, components)

	// Register all routes
	registerRoutes(e, serviceContainer)

	// Start with graceful shutdown
	srv := server.New("quiverstats", components.Config.Service.Port, e, components.Logger)
	if err := srv.Start(); err != nil {
		components.Logger.Error("server error", "error", err)
		os.Exit(1)
	}
}

// setupEcho initializes the Echo server with basic configuration
func setupEcho() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	return e
}

// setupMiddleware configures all middleware for the Echo server.
// CORS stays fully open: the API is consumed by browser frontends served
// from arbitrary origins.
func setupMiddleware(e *echo.Echo) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
}

// setupHealthCheck registers the health check endpoint
func setupHealthCheck(e *echo.Echo, components *bootstrap.Components) {
	e.GET("/health", func(c echo.Context) error {
		if err := components.Health(c.Request().Context()); err != nil {
			return c.JSON(http.StatusServiceUnavailable, map[string]string{
				"status":  "unhealthy",
				"service": "quiverstats",
			})
		}
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "ok",
			"service": "quiverstats",
		})
	})
}

// registerRoutes registers all application routes using the service container
func registerRoutes(e *echo.Echo, serviceContainer *container.Container) {
	routes.RegisterQuiverRoutes(e, serviceContainer)
	routes.RegisterArrowRoutes(e, serviceContainer)
	routes.RegisterScoreRoutes(e, serviceContainer)
}
