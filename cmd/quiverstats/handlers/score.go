package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/quiverstats/backend/cmd/quiverstats/service"
	"github.com/quiverstats/backend/common/bootstrap"
)

// ScoreHandler handles arrow score requests
type ScoreHandler struct {
	components *bootstrap.Components
	scoreSvc   *service.ScoreService
}

// NewScoreHandler creates a new score handler
func NewScoreHandler(components *bootstrap.Components, scoreSvc *service.ScoreService) *ScoreHandler {
	return &ScoreHandler{
		components: components,
		scoreSvc:   scoreSvc,
	}
}

// ListScores lists all scores of an arrow
// GET /api/arrows/:id/scores
func (h *ScoreHandler) ListScores(c echo.Context) error {
	arrowID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	scores, err := h.scoreSvc.List(c.Request().Context(), arrowID)
	if err != nil {
		return respondError(h.components.Logger, "failed to list scores", err)
	}

	return c.JSON(http.StatusOK, newScoreListResponse(scores))
}

// CreateScore records a new score for an arrow
// POST /api/arrows/:id/scores
func (h *ScoreHandler) CreateScore(c echo.Context) error {
	arrowID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req createScoreRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	score, err := h.scoreSvc.Create(c.Request().Context(), arrowID, req.Score)
	if err != nil {
		return respondError(h.components.Logger, "failed to create score", err)
	}

	return c.JSON(http.StatusCreated, newScoreResponse(score))
}

// DeleteScore deletes a score
// DELETE /api/arrows/scores/:id
func (h *ScoreHandler) DeleteScore(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.scoreSvc.Delete(c.Request().Context(), id); err != nil {
		return respondError(h.components.Logger, "failed to delete score", err)
	}

	return c.NoContent(http.StatusNoContent)
}
