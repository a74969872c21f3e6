package service

import (
	"context"

	"github.com/google/uuid"

	"recettes/internal/domain"
	"recettes/internal/port"
)

// RecipeService exposes read access to the stored index.
type RecipeService struct {
	recipes    port.RecipeRepository
	duplicates port.DuplicateFinder
}

// NewRecipeService creates a RecipeService.
func NewRecipeService(recipes port.RecipeRepository, duplicates port.DuplicateFinder) *RecipeService {
	return &RecipeService{recipes: recipes, duplicates: duplicates}
}

// List returns a page of recipes plus the total matching count.
func (s *RecipeService) List(ctx context.Context, filter port.RecipeFilter) ([]domain.RecipeRecord, int, error) {
	return s.recipes.List(ctx, filter)
}

// Get returns one recipe by ID.
func (s *RecipeService) Get(ctx context.Context, id uuid.UUID) (*domain.RecipeRecord, error) {
	return s.recipes.GetByID(ctx, id)
}

// ListAll returns the full index, used by the export endpoints.
func (s *RecipeService) ListAll(ctx context.Context) ([]domain.RecipeRecord, error) {
	return s.recipes.ListAll(ctx)
}

// Duplicates computes the duplicate report over the stored index.
func (s *RecipeService) Duplicates(ctx context.Context) (*domain.DuplicateReport, error) {
	return s.duplicates.Find(ctx)
}
