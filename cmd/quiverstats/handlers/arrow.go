package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/quiverstats/backend/cmd/quiverstats/service"
	"github.com/quiverstats/backend/common/bootstrap"
)

// ArrowHandler handles arrow-related requests
type ArrowHandler struct {
	components *bootstrap.Components
	arrowSvc   *service.ArrowService
}

// NewArrowHandler creates a new arrow handler
func NewArrowHandler(components *bootstrap.Components, arrowSvc *service.ArrowService) *ArrowHandler {
	return &ArrowHandler{
		components: components,
		arrowSvc:   arrowSvc,
	}
}

// ListArrows lists all arrows of a quiver
// GET /api/quivers/:id/arrows
func (h *ArrowHandler) ListArrows(c echo.Context) error {
	quiverID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	arrows, err := h.arrowSvc.List(c.Request().Context(), quiverID)
	if err != nil {
		return respondError(h.components.Logger, "failed to list arrows", err)
	}

	return c.JSON(http.StatusOK, newArrowListResponse(arrows))
}

// CreateArrow creates a new arrow under a quiver
// POST /api/quivers/:id/arrows
func (h *ArrowHandler) CreateArrow(c echo.Context) error {
	quiverID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req createArrowRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	arrow, err := h.arrowSvc.Create(c.Request().Context(), quiverID, req.Name)
	if err != nil {
		return respondError(h.components.Logger, "failed to create arrow", err)
	}

	return c.JSON(http.StatusCreated, newArrowResponse(arrow))
}

// RenameArrow updates an arrow's name
// PUT /api/arrows/:id
func (h *ArrowHandler) RenameArrow(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req renameArrowRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	arrow, err := h.arrowSvc.Rename(c.Request().Context(), id, req.Name)
	if err != nil {
		return respondError(h.components.Logger, "failed to rename arrow", err)
	}

	return c.JSON(http.StatusOK, newArrowResponse(arrow))
}

// DeleteArrow deletes an arrow together with its scores
// DELETE /api/arrows/:id
func (h *ArrowHandler) DeleteArrow(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.arrowSvc.Delete(c.Request().Context(), id); err != nil {
		return respondError(h.components.Logger, "failed to delete arrow", err)
	}

	return c.NoContent(http.StatusNoContent)
}
