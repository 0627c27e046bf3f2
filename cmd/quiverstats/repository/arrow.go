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

// ArrowRepository handles database operations for arrows
type ArrowRepository struct {
	db *db.DB
}

// NewArrowRepository creates a new arrow repository
func NewArrowRepository(db *db.DB) *ArrowRepository {
	return &ArrowRepository{db: db}
}

// ListByQuiver returns all arrows of a quiver in insertion order
func (r *ArrowRepository) ListByQuiver(ctx context.Context, quiverID int64) ([]models.Arrow, error) {
	query := `
		SELECT id, name, quiver_id
		FROM arrow
		WHERE quiver_id = $1
		ORDER BY id ASC
	`

	rows, err := r.db.QueryContext(ctx, query, quiverID)
	if err != nil {
		return nil, fmt.Errorf("failed to list arrows: %w", err)
	}
	defer rows.Close()

	arrows := make([]models.Arrow, 0)
	for rows.Next() {
		var a models.Arrow
		if err := rows.Scan(&a.ID, &a.Name, &a.QuiverID); err != nil {
			return nil, fmt.Errorf("failed to scan arrow: %w", err)
		}
		arrows = append(arrows, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read arrows: %w", err)
	}

	return arrows, nil
}

// Create inserts a new arrow under a quiver and returns it with the
// generated id
func (r *ArrowRepository) Create(ctx context.Context, quiverID int64, name string) (*models.Arrow, error) {
	query := `
		INSERT INTO arrow (quiver_id, name)
		VALUES ($1, $2)
		RETURNING id, name, quiver_id
	`

	arrow := &models.Arrow{}
	err := r.db.QueryRowContext(ctx, query, quiverID, name).Scan(&arrow.ID, &arrow.Name, &arrow.QuiverID)
	if err != nil {
		return nil, fmt.Errorf("failed to create arrow: %w", err)
	}

	return arrow, nil
}

// GetByID retrieves an arrow by id
func (r *ArrowRepository) GetByID(ctx context.Context, id int64) (*models.Arrow, error) {
	query := `
		SELECT id, name, quiver_id
		FROM arrow
		WHERE id = $1
	`

	arrow := &models.Arrow{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&arrow.ID, &arrow.Name, &arrow.QuiverID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound("arrow", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get arrow: %w", err)
	}

	return arrow, nil
}

// UpdateName renames an arrow
func (r *ArrowRepository) UpdateName(ctx context.Context, id int64, name string) (*models.Arrow, error) {
	query := `
		UPDATE arrow
		SET name = $1
		WHERE id = $2
		RETURNING id, name, quiver_id
	`

	arrow := &models.Arrow{}
	err := r.db.QueryRowContext(ctx, query, name, id).Scan(&arrow.ID, &arrow.Name, &arrow.QuiverID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound("arrow", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to rename arrow: %w", err)
	}

	return arrow, nil
}

// Delete removes an arrow, cascading to its scores in one transaction
func (r *ArrowRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM arrow_score WHERE arrow_id = $1`, id); err != nil {
			return fmt.Errorf("failed to delete arrow scores: %w", err)
		}

		result, err := tx.ExecContext(ctx, `DELETE FROM arrow WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("failed to delete arrow: %w", err)
		}

		affected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to read delete result: %w", err)
		}
		if affected == 0 {
			return apperr.NotFound("arrow", id)
		}

		return nil
	})
}
