package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"medibill/internal/domain"
)

// MockBillAPI is a mock implementation of port.BillAPI.
type MockBillAPI struct {
	mock.Mock
}

func (m *MockBillAPI) CreateBill(ctx context.Context, header *domain.BillHeaderDraft) (*domain.Bill, error) {
	args := m.Called(ctx, header)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Bill), args.Error(1)
}

func (m *MockBillAPI) AddBillItem(ctx context.Context, billID int64, line *domain.BillLineDraft) (*domain.BillItem, error) {
	args := m.Called(ctx, billID, line)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BillItem), args.Error(1)
}

func (m *MockBillAPI) GetBill(ctx context.Context, billID int64) (*domain.Bill, error) {
	args := m.Called(ctx, billID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Bill), args.Error(1)
}

func (m *MockBillAPI) GetBills(ctx context.Context, userID int64) ([]domain.Bill, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Bill), args.Error(1)
}
