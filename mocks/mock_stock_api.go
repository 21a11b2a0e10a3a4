package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"medibill/internal/domain"
)

// MockStockAPI is a mock implementation of port.StockAPI.
type MockStockAPI struct {
	mock.Mock
}

func (m *MockStockAPI) AddStock(ctx context.Context, batch *domain.StockBatch) (*domain.StockBatch, error) {
	args := m.Called(ctx, batch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StockBatch), args.Error(1)
}

func (m *MockStockAPI) GetStock(ctx context.Context, userID int64) ([]domain.StockBatch, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StockBatch), args.Error(1)
}

func (m *MockStockAPI) UpdateStock(ctx context.Context, upd domain.StockUpdate) (*domain.StockBatch, error) {
	args := m.Called(ctx, upd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StockBatch), args.Error(1)
}

func (m *MockStockAPI) SearchStock(ctx context.Context, req domain.SearchRequest) (*domain.StockPage, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StockPage), args.Error(1)
}
