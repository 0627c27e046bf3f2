package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/quiverstats/backend/common/config"
	"github.com/quiverstats/backend/common/logger"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// DB wraps database/sql with common operations. Repository queries use
// ordered $1..$n placeholders, which both registered drivers accept.
type DB struct {
	*sql.DB
	driver config.Driver
	log    *logger.Logger
}

// New creates a new database handle for the store selected by the config URL
func New(ctx context.Context, cfg *config.Config, log *logger.Logger) (*DB, error) {
	driver := cfg.Driver()

	sqlDB, err := sql.Open(string(driver), cfg.Database.URL)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if driver == config.DriverSQLite {
		// A single connection keeps ":memory:" databases coherent; SQLite
		// serializes writers anyway.
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(cfg.Database.MaxConns)
		sqlDB.SetMaxIdleConns(cfg.Database.MinConns)
		sqlDB.SetConnMaxIdleTime(cfg.Database.MaxIdleTime)
		sqlDB.SetConnMaxLifetime(cfg.Database.MaxLifetime)
	}

	// Test connection
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(pingCtx); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	log.Info("database connected", "driver", driver)

	return &DB{
		DB:     sqlDB,
		driver: driver,
		log:    log,
	}, nil
}

// Driver returns the driver backing this handle
func (db *DB) Driver() config.Driver {
	return db.driver
}

// Close closes the database handle
func (db *DB) Close() {
	db.log.Info("closing database connection")
	if err := db.DB.Close(); err != nil {
		db.log.Error("closing database connection failed", "error", err)
	}
}

// Health checks database health
func (db *DB) Health(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	return db.PingContext(ctx)
}

// WithTx runs fn inside a transaction, committing on success and rolling
// back in full on any error so no partial writes are ever visible.
func (db *DB) WithTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			db.log.Error("transaction rollback failed", "error", rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}
