package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"recettes/internal/domain"
	"recettes/internal/port"
)

// MockRecipeService is a mock implementation of handler.RecipeService.
type MockRecipeService struct {
	mock.Mock
}

func (m *MockRecipeService) List(ctx context.Context, filter port.RecipeFilter) ([]domain.RecipeRecord, int, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.RecipeRecord), args.Int(1), args.Error(2)
}

func (m *MockRecipeService) Get(ctx context.Context, id uuid.UUID) (*domain.RecipeRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RecipeRecord), args.Error(1)
}

func (m *MockRecipeService) ListAll(ctx context.Context) ([]domain.RecipeRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RecipeRecord), args.Error(1)
}

func (m *MockRecipeService) Duplicates(ctx context.Context) (*domain.DuplicateReport, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DuplicateReport), args.Error(1)
}
