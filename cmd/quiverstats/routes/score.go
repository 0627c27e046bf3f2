package routes

import (
	"github.com/labstack/echo/v4"
	"github.com/quiverstats/backend/cmd/quiverstats/container"
	"github.com/quiverstats/backend/cmd/quiverstats/handlers"
)

// RegisterScoreRoutes registers all score routes
func RegisterScoreRoutes(e *echo.Echo, c *container.Container) {
	h := handlers.NewScoreHandler(c.Components, c.ScoreService)

	e.GET("/api/arrows/:id/scores", h.ListScores)        // GET /api/arrows/1/scores
	e.POST("/api/arrows/:id/scores", h.CreateScore)      // POST /api/arrows/1/scores
	e.DELETE("/api/arrows/scores/:id", h.DeleteScore)    // DELETE /api/arrows/scores/1
}
