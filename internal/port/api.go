// Package port defines the contracts the workflow layer holds against the
// billing backend. The apiclient package provides the HTTP implementations;
// mocks live in the top-level mocks package.
package port

import (
	"context"

	"medibill/internal/domain"
)

// AuthAPI covers account endpoints. Login returns the authenticated user and
// the bearer token issued in the Authorization response header.
type AuthAPI interface {
	Login(ctx context.Context, username, password string) (*domain.User, string, error)
	Register(ctx context.Context, username, password, name string) (*domain.User, error)
	RefreshToken(ctx context.Context) (string, error)
}

// ProductAPI covers the product catalog endpoints.
type ProductAPI interface {
	AddProduct(ctx context.Context, p *domain.Product) (*domain.Product, error)
	GetProducts(ctx context.Context) ([]domain.Product, error)
	GetProduct(ctx context.Context, productID int64) (*domain.Product, error)
	EditProduct(ctx context.Context, productID int64, p *domain.Product) (*domain.Product, error)
	DeleteProduct(ctx context.Context, productID int64) error
	SearchProducts(ctx context.Context, req domain.SearchRequest) (*domain.ProductPage, error)
}

// StockAPI covers the stock batch endpoints. UpdateStock is the decrement
// call issued after a bill line posts; the backend remains authoritative.
type StockAPI interface {
	AddStock(ctx context.Context, batch *domain.StockBatch) (*domain.StockBatch, error)
	GetStock(ctx context.Context, userID int64) ([]domain.StockBatch, error)
	UpdateStock(ctx context.Context, upd domain.StockUpdate) (*domain.StockBatch, error)
	SearchStock(ctx context.Context, req domain.SearchRequest) (*domain.StockPage, error)
}

// BillAPI covers invoice creation and readback.
type BillAPI interface {
	CreateBill(ctx context.Context, header *domain.BillHeaderDraft) (*domain.Bill, error)
	AddBillItem(ctx context.Context, billID int64, line *domain.BillLineDraft) (*domain.BillItem, error)
	GetBill(ctx context.Context, billID int64) (*domain.Bill, error)
	GetBills(ctx context.Context, userID int64) ([]domain.Bill, error)
}

// DetailsAPI covers the distributor profile printed on invoices.
type DetailsAPI interface {
	CreateDetails(ctx context.Context, userID int64, d *domain.Details) (*domain.Details, error)
	GetDetails(ctx context.Context, userID int64) (*domain.Details, error)
	EditDetails(ctx context.Context, userID int64, d *domain.Details) (*domain.Details, error)
	DeleteDetails(ctx context.Context, userID int64) error
}
