package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"recettes/internal/domain"
)

// MockScanRunRepo is a mock implementation of port.ScanRunRepository.
type MockScanRunRepo struct {
	mock.Mock
}

func (m *MockScanRunRepo) Create(ctx context.Context, run *domain.ScanRun) error {
	args := m.Called(ctx, run)
	return args.Error(0)
}

func (m *MockScanRunRepo) Update(ctx context.Context, run *domain.ScanRun) error {
	args := m.Called(ctx, run)
	return args.Error(0)
}

func (m *MockScanRunRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.ScanRun, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ScanRun), args.Error(1)
}

func (m *MockScanRunRepo) List(ctx context.Context, limit int) ([]domain.ScanRun, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ScanRun), args.Error(1)
}
