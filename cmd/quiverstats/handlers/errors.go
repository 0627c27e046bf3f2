package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/quiverstats/backend/common/apperr"
	"github.com/quiverstats/backend/common/logger"
)

// respondError translates domain errors into transport responses.
// Validation failures become 400 with the message, missing records become
// 404; both are expected traffic and are not logged as faults. Anything
// else is a store fault: logged, surfaced as a generic 500.
func respondError(log *logger.Logger, msg string, err error) error {
	var validationErr *apperr.ValidationError
	if errors.As(err, &validationErr) {
		return echo.NewHTTPError(http.StatusBadRequest, validationErr.Message)
	}

	var notFoundErr *apperr.NotFoundError
	if errors.As(err, &notFoundErr) {
		return echo.NewHTTPError(http.StatusNotFound, notFoundErr.Error())
	}

	log.Error(msg, "error", err)
	return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
}
