package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreLifecycle(t *testing.T) {
	e := newTestApp(t)
	quiverID := createQuiver(t, e, "Q1")
	arrowID := createArrow(t, e, quiverID, "A1")

	// Create
	rec := do(e, http.MethodPost, fmt.Sprintf("/api/arrows/%d/scores", arrowID), `{"score":9}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"id":1,"arrow_id":1,"score":9}`, rec.Body.String())

	// List carries id and score only
	rec = do(e, http.MethodGet, fmt.Sprintf("/api/arrows/%d/scores", arrowID), "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"id":1,"score":9}]`, rec.Body.String())

	// Delete
	rec = do(e, http.MethodDelete, "/api/arrows/scores/1", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(e, http.MethodGet, fmt.Sprintf("/api/arrows/%d/scores", arrowID), "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestCreateScoreZeroIsValid(t *testing.T) {
	e := newTestApp(t)
	quiverID := createQuiver(t, e, "Q1")
	arrowID := createArrow(t, e, quiverID, "A1")

	rec := do(e, http.MethodPost, fmt.Sprintf("/api/arrows/%d/scores", arrowID), `{"score":0}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"id":1,"arrow_id":1,"score":0}`, rec.Body.String())
}

func TestCreateScorePreservesFraction(t *testing.T) {
	e := newTestApp(t)
	quiverID := createQuiver(t, e, "Q1")
	arrowID := createArrow(t, e, quiverID, "A1")

	rec := do(e, http.MethodPost, fmt.Sprintf("/api/arrows/%d/scores", arrowID), `{"score":8.75}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"id":1,"arrow_id":1,"score":8.75}`, rec.Body.String())

	rec = do(e, http.MethodGet, fmt.Sprintf("/api/arrows/%d/scores", arrowID), "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"id":1,"score":8.75}]`, rec.Body.String())
}

func TestCreateScoreValidation(t *testing.T) {
	e := newTestApp(t)
	quiverID := createQuiver(t, e, "Q1")
	arrowID := createArrow(t, e, quiverID, "A1")

	// Missing score field
	rec := do(e, http.MethodPost, fmt.Sprintf("/api/arrows/%d/scores", arrowID), `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Missing arrow beats missing score
	rec = do(e, http.MethodPost, "/api/arrows/999/scores", `{}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// Nothing was written
	rec = do(e, http.MethodGet, fmt.Sprintf("/api/arrows/%d/scores", arrowID), "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestDeleteScoreNotFound(t *testing.T) {
	e := newTestApp(t)

	assert.Equal(t, http.StatusNotFound, do(e, http.MethodDelete, "/api/arrows/scores/999", "").Code)
}

func TestDeleteQuiverCascades(t *testing.T) {
	e := newTestApp(t)
	quiverID := createQuiver(t, e, "Q1")
	arrowID := createArrow(t, e, quiverID, "A1")
	createScore(t, e, arrowID, 9)

	rec := do(e, http.MethodDelete, fmt.Sprintf("/api/quivers/%d", quiverID), "")
	require.Equal(t, http.StatusNoContent, rec.Code)

	// The quiver, its arrow, and the arrow's scores are all gone
	assert.Equal(t, http.StatusNotFound, do(e, http.MethodGet, fmt.Sprintf("/api/quivers/%d", quiverID), "").Code)
	assert.Equal(t, http.StatusNotFound, do(e, http.MethodGet, fmt.Sprintf("/api/arrows/%d/scores", arrowID), "").Code)
	assert.Equal(t, http.StatusNotFound, do(e, http.MethodDelete, "/api/arrows/scores/1", "").Code)
}

func TestDeleteArrowCascadesToScores(t *testing.T) {
	e := newTestApp(t)
	quiverID := createQuiver(t, e, "Q1")
	arrowID := createArrow(t, e, quiverID, "A1")
	scoreID := createScore(t, e, arrowID, 7.5)

	rec := do(e, http.MethodDelete, fmt.Sprintf("/api/arrows/%d", arrowID), "")
	require.Equal(t, http.StatusNoContent, rec.Code)

	assert.Equal(t, http.StatusNotFound, do(e, http.MethodDelete, fmt.Sprintf("/api/arrows/scores/%d", scoreID), "").Code)

	// The owning quiver survives
	rec = do(e, http.MethodGet, fmt.Sprintf("/api/quivers/%d", quiverID), "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":1,"name":"Q1","arrows":[]}`, rec.Body.String())
}
