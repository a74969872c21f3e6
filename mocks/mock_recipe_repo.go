package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"recettes/internal/domain"
	"recettes/internal/port"
)

// MockRecipeRepo is a mock implementation of port.RecipeRepository.
type MockRecipeRepo struct {
	mock.Mock
}

func (m *MockRecipeRepo) ReplaceAll(ctx context.Context, scanRunID uuid.UUID, records []domain.RecipeRecord) error {
	args := m.Called(ctx, scanRunID, records)
	return args.Error(0)
}

func (m *MockRecipeRepo) List(ctx context.Context, filter port.RecipeFilter) ([]domain.RecipeRecord, int, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.RecipeRecord), args.Int(1), args.Error(2)
}

func (m *MockRecipeRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.RecipeRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RecipeRecord), args.Error(1)
}

func (m *MockRecipeRepo) ListAll(ctx context.Context) ([]domain.RecipeRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RecipeRecord), args.Error(1)
}
