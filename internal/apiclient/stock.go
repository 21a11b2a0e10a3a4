package apiclient

import (
	"context"
	"fmt"
	"net/http"

	"medibill/internal/domain"
)

// StockClient implements port.StockAPI.
type StockClient struct {
	c *Client
}

// NewStockClient wraps the shared transport for stock endpoints.
func NewStockClient(c *Client) *StockClient { return &StockClient{c: c} }

// AddStock records a received batch.
func (s *StockClient) AddStock(ctx context.Context, batch *domain.StockBatch) (*domain.StockBatch, error) {
	var out domain.StockBatch
	if _, err := s.c.do(ctx, http.MethodPost, "api/stock/add", batch, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetStock lists all batches held by a user.
func (s *StockClient) GetStock(ctx context.Context, userID int64) ([]domain.StockBatch, error) {
	var out []domain.StockBatch
	if _, err := s.c.do(ctx, http.MethodGet, fmt.Sprintf("api/stock/user/%d", userID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateStock sets a batch's remaining quantity after billing.
func (s *StockClient) UpdateStock(ctx context.Context, upd domain.StockUpdate) (*domain.StockBatch, error) {
	var out domain.StockBatch
	if _, err := s.c.do(ctx, http.MethodPost, "api/stock/update", upd, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SearchStock runs a paginated typeahead search over batches. Decoded rows
// are validated so malformed backend records fail at the boundary instead
// of surfacing later in the billing flow.
func (s *StockClient) SearchStock(ctx context.Context, req domain.SearchRequest) (*domain.StockPage, error) {
	var out domain.StockPage
	if _, err := s.c.do(ctx, http.MethodPost, "api/stock/search", req, &out, WithoutLoading()); err != nil {
		return nil, err
	}
	for i := range out.Content {
		if err := out.Content[i].Validate(); err != nil {
			return nil, fmt.Errorf("apiclient: stock search: %w", err)
		}
	}
	return &out, nil
}
