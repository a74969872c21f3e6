package port

import (
	"context"

	"github.com/google/uuid"

	"recettes/internal/domain"
)

// RecipeFilter narrows recipe listings.
type RecipeFilter struct {
	Status string
	Search string
	Offset int
	Limit  int
}

// RecipeRepository persists the recipe index. A rescan replaces the whole
// index atomically; records are never updated in place.
type RecipeRepository interface {
	ReplaceAll(ctx context.Context, scanRunID uuid.UUID, records []domain.RecipeRecord) error
	List(ctx context.Context, filter RecipeFilter) ([]domain.RecipeRecord, int, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.RecipeRecord, error)
	ListAll(ctx context.Context) ([]domain.RecipeRecord, error)
}

// ScanRunRepository tracks rescan executions.
type ScanRunRepository interface {
	Create(ctx context.Context, run *domain.ScanRun) error
	Update(ctx context.Context, run *domain.ScanRun) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ScanRun, error)
	List(ctx context.Context, limit int) ([]domain.ScanRun, error)
}

// StatsRepository aggregates index-level figures.
type StatsRepository interface {
	IndexStats(ctx context.Context) (*domain.Stats, error)
}

// DuplicateFinder computes the duplicate report over the stored index.
type DuplicateFinder interface {
	Find(ctx context.Context) (*domain.DuplicateReport, error)
}
