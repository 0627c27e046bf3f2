package db

import (
	"fmt"

	"github.com/quiverstats/backend/common/config"
)

// EnsureSchema creates all tables needed by the service.
// Safe to call multiple times - uses IF NOT EXISTS. Statements run one at
// a time because not every driver accepts multi-statement scripts. Schema
// evolution beyond this bootstrap belongs to an external migration tool.
func EnsureSchema(db *DB) error {
	statements := sqliteSchema
	if db.Driver() == config.DriverPostgres {
		statements = postgresSchema
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
	}

	return nil
}

var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS quiver (
		id BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
		name TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS arrow (
		id BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
		quiver_id BIGINT NOT NULL REFERENCES quiver(id),
		name TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS arrow_score (
		id BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
		arrow_id BIGINT NOT NULL REFERENCES arrow(id),
		score DOUBLE PRECISION NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_arrow_quiver_id ON arrow(quiver_id)`,
	`CREATE INDEX IF NOT EXISTS idx_arrow_score_arrow_id ON arrow_score(arrow_id)`,
}

var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS quiver (
		id INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS arrow (
		id INTEGER PRIMARY KEY,
		quiver_id INTEGER NOT NULL REFERENCES quiver(id),
		name TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS arrow_score (
		id INTEGER PRIMARY KEY,
		arrow_id INTEGER NOT NULL REFERENCES arrow(id),
		score DOUBLE PRECISION NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_arrow_quiver_id ON arrow(quiver_id)`,
	`CREATE INDEX IF NOT EXISTS idx_arrow_score_arrow_id ON arrow_score(arrow_id)`,
}
