package repository

import (
	"context"
	"testing"

	"github.com/quiverstats/backend/common/config"
	"github.com/quiverstats/backend/common/db"
	"github.com/quiverstats/backend/common/logger"
	"github.com/stretchr/testify/require"
)

// newTestDB opens an ephemeral in-memory store with the full schema
func newTestDB(t *testing.T) *db.DB {
	t.Helper()

	cfg := &config.Config{
		Database: config.DatabaseConfig{URL: ":memory:"},
	}

	database, err := db.New(context.Background(), cfg, logger.New("error", "text"))
	require.NoError(t, err)
	require.NoError(t, db.EnsureSchema(database))

	t.Cleanup(func() {
		database.Close()
	})

	return database
}
