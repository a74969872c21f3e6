package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"recettes/internal/domain"
)

// MockDuplicateFinder is a mock implementation of port.DuplicateFinder.
type MockDuplicateFinder struct {
	mock.Mock
}

func (m *MockDuplicateFinder) Find(ctx context.Context) (*domain.DuplicateReport, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DuplicateReport), args.Error(1)
}
