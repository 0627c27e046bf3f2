package service

import (
	"context"

	"github.com/quiverstats/backend/cmd/quiverstats/models"
	"github.com/quiverstats/backend/cmd/quiverstats/repository"
	"github.com/quiverstats/backend/common/apperr"
	"github.com/quiverstats/backend/common/logger"
)

// ScoreService handles arrow score operations
type ScoreService struct {
	scores *repository.ScoreRepository
	arrows *repository.ArrowRepository
	log    *logger.Logger
}

// NewScoreService creates a new score service
func NewScoreService(scores *repository.ScoreRepository, arrows *repository.ArrowRepository, log *logger.Logger) *ScoreService {
	return &ScoreService{
		scores: scores,
		arrows: arrows,
		log:    log,
	}
}

// List returns all scores of an arrow, resolving the arrow first
func (s *ScoreService) List(ctx context.Context, arrowID int64) ([]models.ArrowScore, error) {
	if _, err := s.arrows.GetByID(ctx, arrowID); err != nil {
		return nil, err
	}

	return s.scores.ListByArrow(ctx, arrowID)
}

// Create validates and inserts a new score for an arrow. Presence is the
// only requirement: a score of zero is valid.
func (s *ScoreService) Create(ctx context.Context, arrowID int64, score *float64) (*models.ArrowScore, error) {
	if _, err := s.arrows.GetByID(ctx, arrowID); err != nil {
		return nil, err
	}

	if score == nil {
		return nil, apperr.Validation("score is required")
	}

	created, err := s.scores.Create(ctx, arrowID, *score)
	if err != nil {
		return nil, err
	}

	s.log.Info("created score", "score_id", created.ID, "arrow_id", arrowID)
	return created, nil
}

// Delete removes a score
func (s *ScoreService) Delete(ctx context.Context, id int64) error {
	if err := s.scores.Delete(ctx, id); err != nil {
		return err
	}

	s.log.Info("deleted score", "score_id", id)
	return nil
}
