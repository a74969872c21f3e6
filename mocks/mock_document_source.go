package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"recettes/internal/domain"
)

// MockDocumentSource is a mock implementation of port.DocumentSource.
type MockDocumentSource struct {
	mock.Mock
}

func (m *MockDocumentSource) List(ctx context.Context) ([]domain.RawDocument, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RawDocument), args.Error(1)
}

func (m *MockDocumentSource) Text(ctx context.Context, doc domain.RawDocument) (string, error) {
	args := m.Called(ctx, doc)
	return args.String(0), args.Error(1)
}
