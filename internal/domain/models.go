package domain

import "fmt"

// Product is a catalog entry owned by the backend. CGST and SGST are the two
// GST halves as percentages applied when the product is billed.
type Product struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	HSN         string  `json:"hsn"`
	MRP         float64 `json:"mrp"`
	CGSTPercent float64 `json:"cgst"`
	SGSTPercent float64 `json:"sgst"`
	Packing     string  `json:"packing"`
}

// BatchKey identifies a stock batch: one product received under one batch number.
type BatchKey struct {
	ProductID int64
	BatchNo   string
}

// StockBatch is the client's read-only snapshot of a stock row returned by
// search. It is mutated only by the backend; the client refreshes it by
// searching again.
type StockBatch struct {
	Product    Product `json:"product"`
	BatchNo    string  `json:"batchNo"`
	ExpiryDate string  `json:"expiryDate"`
	Quantity   int     `json:"quantity"`
	UserID     int64   `json:"userId,omitempty"`
}

// Key returns the batch identity (productId, batchNo).
func (s *StockBatch) Key() BatchKey {
	return BatchKey{ProductID: s.Product.ID, BatchNo: s.BatchNo}
}

// Validate checks the required fields of a batch decoded from backend JSON.
func (s *StockBatch) Validate() error {
	switch {
	case s.Product.ID == 0:
		return fmt.Errorf("stock batch: product id: %w", ErrMissingField)
	case s.Product.Name == "":
		return fmt.Errorf("stock batch: product name: %w", ErrMissingField)
	case s.BatchNo == "":
		return fmt.Errorf("stock batch: batch number: %w", ErrMissingField)
	case s.Quantity < 0:
		return fmt.Errorf("stock batch %s: negative quantity", s.BatchNo)
	}
	return nil
}

// BillHeaderDraft carries the step-one fields of a bill under creation.
// The Identifier field is sent on the wire as "gstin" whatever its declared
// type, matching the backend contract.
type BillHeaderDraft struct {
	PurchaserName  string         `json:"purchaserName"`
	DL1            string         `json:"dl1"`
	DL2            string         `json:"dl2"`
	Identifier     string         `json:"gstin"`
	IdentifierType IdentifierType `json:"-"`
	InvoiceDate    string         `json:"invoiceDate"`
	UserID         int64          `json:"userId"`
}

// BillLineDraft is one pending invoice line. Amount is derived; nil means the
// line is not computable yet, which is distinct from a zero-value line.
type BillLineDraft struct {
	ProductName string   `json:"productName"`
	ProductID   int64    `json:"productId"`
	BatchNo     string   `json:"batchNo"`
	Quantity    int      `json:"quantity"`
	Free        int      `json:"free"`
	ExpiryDate  string   `json:"expiryDate"`
	Rate        float64  `json:"rate"`
	Amount      *float64 `json:"amount,omitempty"`
}

// Units returns the stock units the line consumes: billable plus free.
func (l *BillLineDraft) Units() int { return l.Quantity + l.Free }

// BillItem is a posted invoice line read back from the backend.
type BillItem struct {
	ID          int64   `json:"id"`
	BillID      int64   `json:"billId"`
	ProductID   int64   `json:"productId"`
	ProductName string  `json:"productName"`
	BatchNo     string  `json:"batchNo"`
	Quantity    int     `json:"quantity"`
	Free        int     `json:"free"`
	ExpiryDate  string  `json:"expiryDate"`
	Rate        float64 `json:"rate"`
	Amount      float64 `json:"amount"`
}

// Bill is a server-owned invoice; its identity is assigned by the backend on
// creation and never fabricated client-side.
type Bill struct {
	ID            int64      `json:"id"`
	PurchaserName string     `json:"purchaserName"`
	DL1           string     `json:"dl1"`
	DL2           string     `json:"dl2"`
	Identifier    string     `json:"gstin"`
	InvoiceDate   string     `json:"invoiceDate"`
	UserID        int64      `json:"userId"`
	TotalAmount   float64    `json:"totalAmount"`
	Items         []BillItem `json:"items,omitempty"`
}

// StockUpdate is the payload for a stock decrement after a line is billed.
type StockUpdate struct {
	UserID     int64  `json:"userId"`
	ProductID  int64  `json:"productId"`
	BatchNo    string `json:"batchNo"`
	ExpiryDate string `json:"expiryDate"`
	Quantity   int    `json:"quantity"`
}

// User is the account record returned by authentication.
type User struct {
	UserID   int64    `json:"userId"`
	Username string   `json:"username"`
	Name     string   `json:"name,omitempty"`
	Role     UserRole `json:"role"`
}

// Details is the distributor profile printed on invoices.
type Details struct {
	UserID   int64  `json:"userId"`
	FirmName string `json:"firmName"`
	Address  string `json:"address"`
	GSTIN    string `json:"gstin"`
	DL1      string `json:"dl1"`
	DL2      string `json:"dl2"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
}

// SearchRequest is the paginated typeahead query sent to search endpoints.
type SearchRequest struct {
	SearchText string `json:"searchText"`
	Page       int    `json:"page"`
	Size       int    `json:"size"`
}

// StockPage is one page of stock search results.
type StockPage struct {
	Content    []StockBatch `json:"content"`
	TotalPages int          `json:"totalPages"`
	Number     int          `json:"number"`
	Last       bool         `json:"last"`
}

// ProductPage is one page of product search results.
type ProductPage struct {
	Content    []Product `json:"content"`
	TotalPages int       `json:"totalPages"`
	Number     int       `json:"number"`
	Last       bool      `json:"last"`
}
