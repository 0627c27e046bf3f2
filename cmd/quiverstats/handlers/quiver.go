package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/quiverstats/backend/cmd/quiverstats/service"
	"github.com/quiverstats/backend/common/bootstrap"
)

// QuiverHandler handles quiver-related requests
type QuiverHandler struct {
	components *bootstrap.Components
	quiverSvc  *service.QuiverService
}

// NewQuiverHandler creates a new quiver handler
func NewQuiverHandler(components *bootstrap.Components, quiverSvc *service.QuiverService) *QuiverHandler {
	return &QuiverHandler{
		components: components,
		quiverSvc:  quiverSvc,
	}
}

// ListQuivers lists all quivers
// GET /api/quivers
func (h *QuiverHandler) ListQuivers(c echo.Context) error {
	quivers, err := h.quiverSvc.List(c.Request().Context())
	if err != nil {
		return respondError(h.components.Logger, "failed to list quivers", err)
	}

	return c.JSON(http.StatusOK, newQuiverListResponse(quivers))
}

// CreateQuiver creates a new quiver
// POST /api/quivers
func (h *QuiverHandler) CreateQuiver(c echo.Context) error {
	var req createQuiverRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	quiver, err := h.quiverSvc.Create(c.Request().Context(), req.Name)
	if err != nil {
		return respondError(h.components.Logger, "failed to create quiver", err)
	}

	return c.JSON(http.StatusCreated, newQuiverResponse(quiver))
}

// GetQuiver retrieves a quiver and its arrows
// GET /api/quivers/:id
func (h *QuiverHandler) GetQuiver(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	quiver, arrows, err := h.quiverSvc.Get(c.Request().Context(), id)
	if err != nil {
		return respondError(h.components.Logger, "failed to get quiver", err)
	}

	return c.JSON(http.StatusOK, newQuiverDetailResponse(quiver, arrows))
}

// RenameQuiver updates a quiver's name
// PUT /api/quivers/:id
func (h *QuiverHandler) RenameQuiver(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req renameQuiverRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	quiver, err := h.quiverSvc.Rename(c.Request().Context(), id, req.Name)
	if err != nil {
		return respondError(h.components.Logger, "failed to rename quiver", err)
	}

	return c.JSON(http.StatusOK, newQuiverResponse(quiver))
}

// DeleteQuiver deletes a quiver together with its arrows and scores
// DELETE /api/quivers/:id
func (h *QuiverHandler) DeleteQuiver(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.quiverSvc.Delete(c.Request().Context(), id); err != nil {
		return respondError(h.components.Logger, "failed to delete quiver", err)
	}

	return c.NoContent(http.StatusNoContent)
}
