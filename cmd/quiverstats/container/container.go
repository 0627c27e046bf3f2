package container

import (
	"github.com/quiverstats/backend/cmd/quiverstats/repository"
	"github.com/quiverstats/backend/cmd/quiverstats/service"
	"github.com/quiverstats/backend/common/bootstrap"
)

// Container holds all initialized services and repositories (singleton pattern)
type Container struct {
	Components *bootstrap.Components

	// Repositories
	QuiverRepo *repository.QuiverRepository
	ArrowRepo  *repository.ArrowRepository
	ScoreRepo  *repository.ScoreRepository

	// Services
	QuiverService *service.QuiverService
	ArrowService  *service.ArrowService
	ScoreService  *service.ScoreService
}

// NewContainer initializes all services and repositories once
func NewContainer(components *bootstrap.Components) *Container {
	// Initialize repositories
	quiverRepo := repository.NewQuiverRepository(components.DB)
	arrowRepo := repository.NewArrowRepository(components.DB)
	scoreRepo := repository.NewScoreRepository(components.DB)

	// Initialize services (bottom-up: dependencies first)
	quiverService := service.NewQuiverService(quiverRepo, arrowRepo, components.Logger)
	arrowService := service.NewArrowService(arrowRepo, quiverRepo, components.Logger)
	scoreService := service.NewScoreService(scoreRepo, arrowRepo, components.Logger)

	return &Container{
		Components: components,

		QuiverRepo: quiverRepo,
		ArrowRepo:  arrowRepo,
		ScoreRepo:  scoreRepo,

		QuiverService: quiverService,
		ArrowService:  arrowService,
		ScoreService:  scoreService,
	}
}
