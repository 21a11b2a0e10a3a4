package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"medibill/internal/domain"
)

// MockDetailsAPI is a mock implementation of port.DetailsAPI.
type MockDetailsAPI struct {
	mock.Mock
}

func (m *MockDetailsAPI) CreateDetails(ctx context.Context, userID int64, d *domain.Details) (*domain.Details, error) {
	args := m.Called(ctx, userID, d)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Details), args.Error(1)
}

func (m *MockDetailsAPI) GetDetails(ctx context.Context, userID int64) (*domain.Details, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Details), args.Error(1)
}

func (m *MockDetailsAPI) EditDetails(ctx context.Context, userID int64, d *domain.Details) (*domain.Details, error) {
	args := m.Called(ctx, userID, d)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Details), args.Error(1)
}

func (m *MockDetailsAPI) DeleteDetails(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}
