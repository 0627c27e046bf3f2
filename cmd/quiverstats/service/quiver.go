package service

import (
	"context"
	"strings"

	"github.com/quiverstats/backend/cmd/quiverstats/models"
	"github.com/quiverstats/backend/cmd/quiverstats/repository"
	"github.com/quiverstats/backend/common/apperr"
	"github.com/quiverstats/backend/common/logger"
)

// QuiverService handles quiver CRUD operations
type QuiverService struct {
	quivers *repository.QuiverRepository
	arrows  *repository.ArrowRepository
	log     *logger.Logger
}

// NewQuiverService creates a new quiver service
func NewQuiverService(quivers *repository.QuiverRepository, arrows *repository.ArrowRepository, log *logger.Logger) *QuiverService {
	return &QuiverService{
		quivers: quivers,
		arrows:  arrows,
		log:     log,
	}
}

// List returns all quivers in insertion order
func (s *QuiverService) List(ctx context.Context) ([]models.Quiver, error) {
	return s.quivers.List(ctx)
}

// Create validates and inserts a new quiver. Validation happens before
// any write so a failure leaves the store unmodified.
func (s *QuiverService) Create(ctx context.Context, name *string) (*models.Quiver, error) {
	trimmed, err := requireName(name)
	if err != nil {
		return nil, err
	}

	quiver, err := s.quivers.Create(ctx, trimmed)
	if err != nil {
		return nil, err
	}

	s.log.Info("created quiver", "quiver_id", quiver.ID)
	return quiver, nil
}

// Get returns a quiver and its arrows
func (s *QuiverService) Get(ctx context.Context, id int64) (*models.Quiver, []models.Arrow, error) {
	quiver, err := s.quivers.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	arrows, err := s.arrows.ListByQuiver(ctx, quiver.ID)
	if err != nil {
		return nil, nil, err
	}

	return quiver, arrows, nil
}

// Rename updates a quiver's name. A request without the name key leaves
// the record unchanged and returns the current state; an explicitly empty
// name is rejected, consistent with creation.
func (s *QuiverService) Rename(ctx context.Context, id int64, name *string) (*models.Quiver, error) {
	if name == nil {
		return s.quivers.GetByID(ctx, id)
	}

	trimmed, err := requireName(name)
	if err != nil {
		return nil, err
	}

	quiver, err := s.quivers.UpdateName(ctx, id, trimmed)
	if err != nil {
		return nil, err
	}

	s.log.Info("renamed quiver", "quiver_id", quiver.ID)
	return quiver, nil
}

// Delete removes a quiver and cascades to its arrows and their scores
func (s *QuiverService) Delete(ctx context.Context, id int64) error {
	if err := s.quivers.Delete(ctx, id); err != nil {
		return err
	}

	s.log.Info("deleted quiver", "quiver_id", id)
	return nil
}

// requireName enforces presence of a non-empty name after trimming
func requireName(name *string) (string, error) {
	if name == nil {
		return "", apperr.Validation("name is required")
	}

	trimmed := strings.TrimSpace(*name)
	if trimmed == "" {
		return "", apperr.Validation("name must not be empty")
	}

	return trimmed, nil
}
