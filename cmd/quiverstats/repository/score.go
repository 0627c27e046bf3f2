package repository

import (
	"context"
	"fmt"

	"github.com/quiverstats/backend/cmd/quiverstats/models"
	"github.com/quiverstats/backend/common/apperr"
	"github.com/quiverstats/backend/common/db"
)

// ScoreRepository handles database operations for arrow scores
type ScoreRepository struct {
	db *db.DB
}

// NewScoreRepository creates a new score repository
func NewScoreRepository(db *db.DB) *ScoreRepository {
	return &ScoreRepository{db: db}
}

// ListByArrow returns all scores of an arrow in insertion order
func (r *ScoreRepository) ListByArrow(ctx context.Context, arrowID int64) ([]models.ArrowScore, error) {
	query := `
		SELECT id, arrow_id, score
		FROM arrow_score
		WHERE arrow_id = $1
		ORDER BY id ASC
	`

	rows, err := r.db.QueryContext(ctx, query, arrowID)
	if err != nil {
		return nil, fmt.Errorf("failed to list scores: %w", err)
	}
	defer rows.Close()

	scores := make([]models.ArrowScore, 0)
	for rows.Next() {
		var s models.ArrowScore
		if err := rows.Scan(&s.ID, &s.ArrowID, &s.Score); err != nil {
			return nil, fmt.Errorf("failed to scan score: %w", err)
		}
		scores = append(scores, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read scores: %w", err)
	}

	return scores, nil
}

// Create inserts a new score for an arrow and returns it with the
// generated id
func (r *ScoreRepository) Create(ctx context.Context, arrowID int64, score float64) (*models.ArrowScore, error) {
	query := `
		INSERT INTO arrow_score (arrow_id, score)
		VALUES ($1, $2)
		RETURNING id, arrow_id, score
	`

	s := &models.ArrowScore{}
	err := r.db.QueryRowContext(ctx, query, arrowID, score).Scan(&s.ID, &s.ArrowID, &s.Score)
	if err != nil {
		return nil, fmt.Errorf("failed to create score: %w", err)
	}

	return s, nil
}

// Delete removes a score by id
func (r *ScoreRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM arrow_score WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete score: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if affected == 0 {
		return apperr.NotFound("score", id)
	}

	return nil
}
