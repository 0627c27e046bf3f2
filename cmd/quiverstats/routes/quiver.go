package routes

import (
	"github.com/labstack/echo/v4"
	"github.com/quiverstats/backend/cmd/quiverstats/container"
	"github.com/quiverstats/backend/cmd/quiverstats/handlers"
)

// RegisterQuiverRoutes registers all quiver CRUD routes
func RegisterQuiverRoutes(e *echo.Echo, c *container.Container) {
	h := handlers.NewQuiverHandler(c.Components, c.QuiverService)

	quivers := e.Group("/api/quivers")
	{
		quivers.GET("", h.ListQuivers)          // GET /api/quivers
		quivers.POST("", h.CreateQuiver)        // POST /api/quivers
		quivers.GET("/:id", h.GetQuiver)        // GET /api/quivers/1
		quivers.PUT("/:id", h.RenameQuiver)     // PUT /api/quivers/1
		quivers.DELETE("/:id", h.DeleteQuiver)  // DELETE /api/quivers/1
	}
}
