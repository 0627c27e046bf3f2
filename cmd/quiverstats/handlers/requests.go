package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

// Typed request bodies, one per endpoint. Pointer fields distinguish an
// absent key from a zero value.

type createQuiverRequest struct {
	Name *string `json:"name"`
}

type renameQuiverRequest struct {
	Name *string `json:"name"`
}

type createArrowRequest struct {
	Name *string `json:"name"`
}

type renameArrowRequest struct {
	Name *string `json:"name"`
}

type createScoreRequest struct {
	Score *float64 `json:"score"`
}

// bindJSON decodes the request body into v. An absent or empty body is
// treated as an empty record; unknown fields are rejected.
func bindJSON(c echo.Context, v any) error {
	body := c.Request().Body
	if body == nil {
		return nil
	}

	decoder := json.NewDecoder(body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	return nil
}

// pathID parses a numeric path parameter. A non-numeric id can never
// reference a record, so it surfaces as 404 like an unmatched route.
func pathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusNotFound)
	}
	return id, nil
}
