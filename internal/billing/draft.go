package billing

import (
	"fmt"

	"medibill/internal/domain"
)

// NewLineEntry returns a blank entry-form line with defaults applied
// (free units zero, everything else empty).
func NewLineEntry() domain.BillLineDraft {
	return domain.BillLineDraft{Free: 0}
}

// Draft accumulates a bill under creation: the step-one header and the
// pending line list. Lines may be appended or removed before submit, never
// mutated in place. The draft lives only for the duration of the flow.
type Draft struct {
	header    domain.BillHeaderDraft
	headerSet bool
	lines     []domain.BillLineDraft

	catalog *Catalog
	calc    *Calculator
	userID  int64
}

// NewDraft starts a creation flow for the given user. The session/user
// context is passed in explicitly at flow start rather than read from
// global state.
func NewDraft(catalog *Catalog, userID int64) *Draft {
	return &Draft{
		catalog: catalog,
		calc:    NewCalculator(catalog),
		userID:  userID,
	}
}

// SetHeader validates and stores the step-one fields. Calling it again
// overwrites the previous header; it does not touch the line list.
func (d *Draft) SetHeader(h domain.BillHeaderDraft) error {
	h.UserID = d.userID
	if err := h.Validate(); err != nil {
		return err
	}
	d.header = h
	d.headerSet = true
	return nil
}

// Header returns the stored header. The second return is false until
// SetHeader has succeeded.
func (d *Draft) Header() (domain.BillHeaderDraft, bool) {
	return d.header, d.headerSet
}

// UserID returns the user the flow was started for.
func (d *Draft) UserID() int64 { return d.userID }

// ValidateLine checks a candidate line against the catalog snapshot. It is
// a client-side pre-check only; the backend may still reject, for example
// when stock changed between search and submit.
func (d *Draft) ValidateLine(line *domain.BillLineDraft) error {
	switch {
	case line.ProductName == "":
		return fmt.Errorf("product: %w", domain.ErrMissingField)
	case line.BatchNo == "":
		return fmt.Errorf("batch number: %w", domain.ErrMissingField)
	case line.Quantity <= 0:
		return fmt.Errorf("quantity: %w", domain.ErrMissingField)
	case line.Free < 0:
		return fmt.Errorf("free quantity: %w", domain.ErrMissingField)
	case line.Rate <= 0:
		return fmt.Errorf("rate: %w", domain.ErrMissingField)
	}

	batch, ok := d.catalog.Find(line.ProductName, line.BatchNo)
	if !ok {
		return domain.ErrBatchNotInCatalog
	}
	if line.Units() > batch.Quantity {
		return fmt.Errorf("%w: want %d, available %d", domain.ErrInvalidQuantity, line.Units(), batch.Quantity)
	}
	return nil
}

// AddLine recomputes the amount, validates, resolves the product id and
// expiry from the catalog, and appends a copy of the line. The returned
// entry is the reset form for the next line.
func (d *Draft) AddLine(line domain.BillLineDraft) (domain.BillLineDraft, error) {
	d.calc.Recompute(&line)
	if err := d.ValidateLine(&line); err != nil {
		return line, err
	}
	if line.Amount == nil {
		return line, domain.ErrAmountNotComputable
	}

	batch, _ := d.catalog.Find(line.ProductName, line.BatchNo)
	line.ProductID = batch.Product.ID
	if line.ExpiryDate == "" {
		line.ExpiryDate = batch.ExpiryDate
	}

	d.lines = append(d.lines, line)
	return NewLineEntry(), nil
}

// RemoveLine deletes the line at index i.
func (d *Draft) RemoveLine(i int) error {
	if i < 0 || i >= len(d.lines) {
		return fmt.Errorf("remove line %d: %w", i, domain.ErrNotFound)
	}
	d.lines = append(d.lines[:i], d.lines[i+1:]...)
	return nil
}

// Lines returns a copy of the pending line list.
func (d *Draft) Lines() []domain.BillLineDraft {
	return append([]domain.BillLineDraft(nil), d.lines...)
}

// LineCount returns the number of pending lines.
func (d *Draft) LineCount() int { return len(d.lines) }

// Total sums the computed amounts of all pending lines.
func (d *Draft) Total() float64 {
	var total float64
	for i := range d.lines {
		if d.lines[i].Amount != nil {
			total += *d.lines[i].Amount
		}
	}
	return total
}
