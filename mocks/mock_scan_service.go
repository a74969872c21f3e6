package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"recettes/internal/domain"
)

// MockScanService is a mock implementation of handler.ScanService.
type MockScanService struct {
	mock.Mock
}

func (m *MockScanService) Start(ctx context.Context) (*domain.ScanRun, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ScanRun), args.Error(1)
}

func (m *MockScanService) GetRun(ctx context.Context, id uuid.UUID) (*domain.ScanRun, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ScanRun), args.Error(1)
}

func (m *MockScanService) ListRuns(ctx context.Context, limit int) ([]domain.ScanRun, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ScanRun), args.Error(1)
}
