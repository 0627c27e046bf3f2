package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/quiverstats/backend/cmd/quiverstats/models"
	"github.com/quiverstats/backend/common/apperr"
	"github.com/quiverstats/backend/common/db"
)

// QuiverRepository handles database operations for quivers
type QuiverRepository struct {
	db *db.DB
}

// NewQuiverRepository creates a new quiver repository
func NewQuiverRepository(db *db.DB) *QuiverRepository {
	return &QuiverRepository{db: db}
}

// List returns all quivers in insertion order
func (r *QuiverRepository) List(ctx context.Context) ([]models.Quiver, error) {
	query := `
		SELECT id, name
		FROM quiver
		ORDER BY id ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list quivers: %w", err)
	}
	defer rows.Close()

	quivers := make([]models.Quiver, 0)
	for rows.Next() {
		var q models.Quiver
		if err := rows.Scan(&q.ID, &q.Name); err != nil {
			return nil, fmt.Errorf("failed to scan quiver: %w", err)
		}
		quivers = append(quivers, q)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read quivers: %w", err)
	}

	return quivers, nil
}

// Create inserts a new quiver and returns it with the generated id
func (r *QuiverRepository) Create(ctx context.Context, name string) (*models.Quiver, error) {
	query := `
		INSERT INTO quiver (name)
		VALUES ($1)
		RETURNING id, name
	`

	quiver := &models.Quiver{}
	err := r.db.QueryRowContext(ctx, query, name).Scan(&quiver.ID, &quiver.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to create quiver: %w", err)
	}

	return quiver, nil
}

// GetByID retrieves a quiver by id
func (r *QuiverRepository) GetByID(ctx context.Context, id int64) (*models.Quiver, error) {
	query := `
		SELECT id, name
		FROM quiver
		WHERE id = $1
	`

	quiver := &models.Quiver{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&quiver.ID, &quiver.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound("quiver", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get quiver: %w", err)
	}

	return quiver, nil
}

// UpdateName renames a quiver
func (r *QuiverRepository) UpdateName(ctx context.Context, id int64, name string) (*models.Quiver, error) {
	query := `
		UPDATE quiver
		SET name = $1
		WHERE id = $2
		RETURNING id, name
	`

	quiver := &models.Quiver{}
	err := r.db.QueryRowContext(ctx, query, name, id).Scan(&quiver.ID, &quiver.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound("quiver", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to rename quiver: %w", err)
	}

	return quiver, nil
}

// Delete removes a quiver, cascading to its arrows and their scores in
// one transaction
func (r *QuiverRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		scoreQuery := `
			DELETE FROM arrow_score
			WHERE arrow_id IN (SELECT id FROM arrow WHERE quiver_id = $1)
		`
		if _, err := tx.ExecContext(ctx, scoreQuery, id); err != nil {
			return fmt.Errorf("failed to delete quiver scores: %w", err)
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM arrow WHERE quiver_id = $1`, id); err != nil {
			return fmt.Errorf("failed to delete quiver arrows: %w", err)
		}

		result, err := tx.ExecContext(ctx, `DELETE FROM quiver WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("failed to delete quiver: %w", err)
		}

		affected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to read delete result: %w", err)
		}
		if affected == 0 {
			return apperr.NotFound("quiver", id)
		}

		return nil
	})
}
