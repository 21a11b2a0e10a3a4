package apiclient

import (
	"context"
	"fmt"
	"net/http"

	"medibill/internal/domain"
)

// BillClient implements port.BillAPI.
type BillClient struct {
	c *Client
}

// NewBillClient wraps the shared transport for invoice endpoints.
func NewBillClient(c *Client) *BillClient { return &BillClient{c: c} }

// billItemRequest is the add-item payload: the draft line plus the resolved
// bill and product ids.
type billItemRequest struct {
	domain.BillLineDraft
	BillID int64 `json:"billId"`
}

// CreateBill posts the header draft; the backend assigns the bill identity.
func (b *BillClient) CreateBill(ctx context.Context, header *domain.BillHeaderDraft) (*domain.Bill, error) {
	var out domain.Bill
	if _, err := b.c.do(ctx, http.MethodPost, "api/bill/add", header, &out); err != nil {
		return nil, err
	}
	if out.ID == 0 {
		return nil, fmt.Errorf("apiclient: bill add: backend returned no bill id")
	}
	return &out, nil
}

// AddBillItem posts one line of an existing bill.
func (b *BillClient) AddBillItem(ctx context.Context, billID int64, line *domain.BillLineDraft) (*domain.BillItem, error) {
	var out domain.BillItem
	req := billItemRequest{BillLineDraft: *line, BillID: billID}
	if _, err := b.c.do(ctx, http.MethodPost, "api/bill_items/add", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetBill fetches a full bill for preview.
func (b *BillClient) GetBill(ctx context.Context, billID int64) (*domain.Bill, error) {
	var out domain.Bill
	if _, err := b.c.do(ctx, http.MethodGet, fmt.Sprintf("api/bill/%d", billID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetBills lists a user's bills.
func (b *BillClient) GetBills(ctx context.Context, userID int64) ([]domain.Bill, error) {
	var out []domain.Bill
	if _, err := b.c.do(ctx, http.MethodGet, fmt.Sprintf("api/bill/user/%d", userID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
