package apiclient

import (
	"context"
	"fmt"
	"net/http"

	"medibill/internal/domain"
)

// DetailsClient implements port.DetailsAPI.
type DetailsClient struct {
	c *Client
}

// NewDetailsClient wraps the shared transport for profile endpoints.
func NewDetailsClient(c *Client) *DetailsClient { return &DetailsClient{c: c} }

// CreateDetails stores the distributor profile for a user.
func (d *DetailsClient) CreateDetails(ctx context.Context, userID int64, in *domain.Details) (*domain.Details, error) {
	var out domain.Details
	if _, err := d.c.do(ctx, http.MethodPost, fmt.Sprintf("api/details/create/%d", userID), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetDetails fetches the distributor profile for a user.
func (d *DetailsClient) GetDetails(ctx context.Context, userID int64) (*domain.Details, error) {
	var out domain.Details
	if _, err := d.c.do(ctx, http.MethodGet, fmt.Sprintf("api/details/%d", userID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// EditDetails updates the distributor profile.
func (d *DetailsClient) EditDetails(ctx context.Context, userID int64, in *domain.Details) (*domain.Details, error) {
	var out domain.Details
	if _, err := d.c.do(ctx, http.MethodPut, fmt.Sprintf("api/details/update/%d", userID), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteDetails removes the distributor profile.
func (d *DetailsClient) DeleteDetails(ctx context.Context, userID int64) error {
	_, err := d.c.do(ctx, http.MethodDelete, fmt.Sprintf("api/details/delete/%d", userID), nil, nil)
	return err
}
