package mocks

import (
	"github.com/stretchr/testify/mock"

	"recettes/internal/service"
)

// MockAuthService is a mock implementation of handler.AuthService.
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(username, password string) (*service.TokenPair, error) {
	args := m.Called(username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.TokenPair), args.Error(1)
}

func (m *MockAuthService) Refresh(refreshToken string) (*service.TokenPair, error) {
	args := m.Called(refreshToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.TokenPair), args.Error(1)
}
