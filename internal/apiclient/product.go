package apiclient

import (
	"context"
	"fmt"
	"net/http"

	"medibill/internal/domain"
)

// ProductClient implements port.ProductAPI.
type ProductClient struct {
	c *Client
}

// NewProductClient wraps the shared transport for product endpoints.
func NewProductClient(c *Client) *ProductClient { return &ProductClient{c: c} }

// AddProduct creates a catalog entry.
func (p *ProductClient) AddProduct(ctx context.Context, in *domain.Product) (*domain.Product, error) {
	var out domain.Product
	if _, err := p.c.do(ctx, http.MethodPost, "api/product/add", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetProducts lists the full catalog.
func (p *ProductClient) GetProducts(ctx context.Context) ([]domain.Product, error) {
	var out []domain.Product
	if _, err := p.c.do(ctx, http.MethodGet, "api/product/all", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetProduct fetches one product by id.
func (p *ProductClient) GetProduct(ctx context.Context, productID int64) (*domain.Product, error) {
	var out domain.Product
	if _, err := p.c.do(ctx, http.MethodGet, fmt.Sprintf("api/product/%d", productID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// EditProduct updates one product.
func (p *ProductClient) EditProduct(ctx context.Context, productID int64, in *domain.Product) (*domain.Product, error) {
	var out domain.Product
	if _, err := p.c.do(ctx, http.MethodPut, fmt.Sprintf("api/product/edit/%d", productID), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteProduct removes one product.
func (p *ProductClient) DeleteProduct(ctx context.Context, productID int64) error {
	_, err := p.c.do(ctx, http.MethodDelete, fmt.Sprintf("api/product/delete/%d", productID), nil, nil)
	return err
}

// SearchProducts runs a paginated typeahead search. It bypasses the loading
// indicator so the overlay does not flicker while the user types.
func (p *ProductClient) SearchProducts(ctx context.Context, req domain.SearchRequest) (*domain.ProductPage, error) {
	var out domain.ProductPage
	if _, err := p.c.do(ctx, http.MethodPost, "api/product/search", req, &out, WithoutLoading()); err != nil {
		return nil, err
	}
	return &out, nil
}
