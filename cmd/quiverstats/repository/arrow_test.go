package repository

import (
	"context"
	"testing"

	"github.com/quiverstats/backend/common/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArrowCreateListScoped(t *testing.T) {
	database := newTestDB(t)
	quivers := NewQuiverRepository(database)
	arrows := NewArrowRepository(database)
	ctx := context.Background()

	first, err := quivers.Create(ctx, "first")
	require.NoError(t, err)
	second, err := quivers.Create(ctx, "second")
	require.NoError(t, err)

	a1, err := arrows.Create(ctx, first.ID, "a1")
	require.NoError(t, err)
	_, err = arrows.Create(ctx, second.ID, "b1")
	require.NoError(t, err)
	a2, err := arrows.Create(ctx, first.ID, "a2")
	require.NoError(t, err)

	listed, err := arrows.ListByQuiver(ctx, first.ID)
	require.NoError(t, err)
	require.Len(t, listed, 2)
	assert.Equal(t, a1.ID, listed[0].ID)
	assert.Equal(t, a2.ID, listed[1].ID)
	for _, a := range listed {
		assert.Equal(t, first.ID, a.QuiverID)
	}
}

func TestArrowRenameAndNotFound(t *testing.T) {
	database := newTestDB(t)
	quivers := NewQuiverRepository(database)
	arrows := NewArrowRepository(database)
	ctx := context.Background()

	quiver, err := quivers.Create(ctx, "q")
	require.NoError(t, err)
	arrow, err := arrows.Create(ctx, quiver.ID, "before")
	require.NoError(t, err)

	renamed, err := arrows.UpdateName(ctx, arrow.ID, "after")
	require.NoError(t, err)
	assert.Equal(t, "after", renamed.Name)
	assert.Equal(t, quiver.ID, renamed.QuiverID)

	_, err = arrows.UpdateName(ctx, 999, "x")
	assert.True(t, apperr.IsNotFound(err))

	err = arrows.Delete(ctx, 999)
	assert.True(t, apperr.IsNotFound(err))
}

func TestArrowDeleteCascadesToScores(t *testing.T) {
	database := newTestDB(t)
	quivers := NewQuiverRepository(database)
	arrows := NewArrowRepository(database)
	scores := NewScoreRepository(database)
	ctx := context.Background()

	quiver, err := quivers.Create(ctx, "q")
	require.NoError(t, err)
	arrow, err := arrows.Create(ctx, quiver.ID, "a")
	require.NoError(t, err)
	score, err := scores.Create(ctx, arrow.ID, 10)
	require.NoError(t, err)

	require.NoError(t, arrows.Delete(ctx, arrow.ID))

	err = scores.Delete(ctx, score.ID)
	assert.True(t, apperr.IsNotFound(err))

	// The owning quiver is untouched
	_, err = quivers.GetByID(ctx, quiver.ID)
	require.NoError(t, err)
}
