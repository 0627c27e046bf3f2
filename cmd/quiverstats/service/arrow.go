package service

import (
	"context"

	"github.com/quiverstats/backend/cmd/quiverstats/models"
	"github.com/quiverstats/backend/cmd/quiverstats/repository"
	"github.com/quiverstats/backend/common/logger"
)

// ArrowService handles arrow CRUD operations
type ArrowService struct {
	arrows  *repository.ArrowRepository
	quivers *repository.QuiverRepository
	log     *logger.Logger
}

// NewArrowService creates a new arrow service
func NewArrowService(arrows *repository.ArrowRepository, quivers *repository.QuiverRepository, log *logger.Logger) *ArrowService {
	return &ArrowService{
		arrows:  arrows,
		quivers: quivers,
		log:     log,
	}
}

// List returns all arrows of a quiver, resolving the quiver first
func (s *ArrowService) List(ctx context.Context, quiverID int64) ([]models.Arrow, error) {
	if _, err := s.quivers.GetByID(ctx, quiverID); err != nil {
		return nil, err
	}

	return s.arrows.ListByQuiver(ctx, quiverID)
}

// Create validates and inserts a new arrow under a quiver. The quiver is
// resolved before the name is validated so a missing parent surfaces as
// NotFound rather than a validation failure.
func (s *ArrowService) Create(ctx context.Context, quiverID int64, name *string) (*models.Arrow, error) {
	if _, err := s.quivers.GetByID(ctx, quiverID); err != nil {
		return nil, err
	}

	trimmed, err := requireName(name)
	if err != nil {
		return nil, err
	}

	arrow, err := s.arrows.Create(ctx, quiverID, trimmed)
	if err != nil {
		return nil, err
	}

	s.log.Info("created arrow", "arrow_id", arrow.ID, "quiver_id", quiverID)
	return arrow, nil
}

// Rename updates an arrow's name with the same missing-vs-empty policy
// as quivers
func (s *ArrowService) Rename(ctx context.Context, id int64, name *string) (*models.Arrow, error) {
	if name == nil {
		return s.arrows.GetByID(ctx, id)
	}

	trimmed, err := requireName(name)
	if err != nil {
		return nil, err
	}

	arrow, err := s.arrows.UpdateName(ctx, id, trimmed)
	if err != nil {
		return nil, err
	}

	s.log.Info("renamed arrow", "arrow_id", arrow.ID)
	return arrow, nil
}

// Delete removes an arrow and cascades to its scores
func (s *ArrowService) Delete(ctx context.Context, id int64) error {
	if err := s.arrows.Delete(ctx, id); err != nil {
		return err
	}

	s.log.Info("deleted arrow", "arrow_id", id)
	return nil
}
