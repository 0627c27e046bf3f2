package handlers_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/quiverstats/backend/cmd/quiverstats/container"
	"github.com/quiverstats/backend/cmd/quiverstats/routes"
	"github.com/quiverstats/backend/common/bootstrap"
	"github.com/quiverstats/backend/common/config"
	"github.com/quiverstats/backend/common/db"
	"github.com/quiverstats/backend/common/logger"
	"github.com/stretchr/testify/require"
)

// newTestApp spins up the full router over an ephemeral in-memory store
func newTestApp(t *testing.T) *echo.Echo {
	t.Helper()

	cfg := &config.Config{
		Service: config.ServiceConfig{
			Name:        "quiverstats-test",
			Environment: "test",
		},
		Database: config.DatabaseConfig{
			URL: ":memory:",
		},
	}

	components, err := bootstrap.Setup(context.Background(), "quiverstats-test",
		bootstrap.WithCustomConfig(cfg),
		bootstrap.WithCustomLogger(logger.New("error", "text")),
		bootstrap.WithDBInitHook(db.EnsureSchema),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = components.Shutdown(context.Background())
	})

	serviceContainer := container.NewContainer(components)

	e := echo.New()
	routes.RegisterQuiverRoutes(e, serviceContainer)
	routes.RegisterArrowRoutes(e, serviceContainer)
	routes.RegisterScoreRoutes(e, serviceContainer)

	return e
}

// do issues a request against the test app; body may be empty
func do(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

// createQuiver creates a quiver and returns its id
func createQuiver(t *testing.T, e *echo.Echo, name string) int64 {
	t.Helper()

	rec := do(e, http.MethodPost, "/api/quivers", fmt.Sprintf(`{"name":%q}`, name))
	require.Equal(t, http.StatusCreated, rec.Code)

	var created struct {
		ID int64 `json:"id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	return created.ID
}

// createArrow creates an arrow under a quiver and returns its id
func createArrow(t *testing.T, e *echo.Echo, quiverID int64, name string) int64 {
	t.Helper()

	path := fmt.Sprintf("/api/quivers/%d/arrows", quiverID)
	rec := do(e, http.MethodPost, path, fmt.Sprintf(`{"name":%q}`, name))
	require.Equal(t, http.StatusCreated, rec.Code)

	var created struct {
		ID int64 `json:"id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	return created.ID
}

// createScore records a score for an arrow and returns its id
func createScore(t *testing.T, e *echo.Echo, arrowID int64, score float64) int64 {
	t.Helper()

	path := fmt.Sprintf("/api/arrows/%d/scores", arrowID)
	rec := do(e, http.MethodPost, path, fmt.Sprintf(`{"score":%g}`, score))
	require.Equal(t, http.StatusCreated, rec.Code)

	var created struct {
		ID int64 `json:"id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	return created.ID
}
