package routes

import (
	"github.com/labstack/echo/v4"
	"github.com/quiverstats/backend/cmd/quiverstats/container"
	"github.com/quiverstats/backend/cmd/quiverstats/handlers"
)

// RegisterArrowRoutes registers all arrow CRUD routes. Collection routes
// live under the owning quiver; item routes address arrows directly.
func RegisterArrowRoutes(e *echo.Echo, c *container.Container) {
	h := handlers.NewArrowHandler(c.Components, c.ArrowService)

	e.GET("/api/quivers/:id/arrows", h.ListArrows)   // GET /api/quivers/1/arrows
	e.POST("/api/quivers/:id/arrows", h.CreateArrow) // POST /api/quivers/1/arrows

	arrows := e.Group("/api/arrows")
	{
		arrows.PUT("/:id", h.RenameArrow)    // PUT /api/arrows/1
		arrows.DELETE("/:id", h.DeleteArrow) // DELETE /api/arrows/1
	}
}
