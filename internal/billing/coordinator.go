package billing

import (
	"context"
	"log"
	"sync"

	"golang.org/x/sync/errgroup"

	"medibill/internal/domain"
	"medibill/internal/port"
)

// BillRecorder persists the created bill id so the preview screen can find
// it after the flow ends.
type BillRecorder interface {
	SaveBillID(id int64) error
}

// LineResult reports what happened to one draft line during submission.
type LineResult struct {
	Index       int
	ProductName string
	BatchNo     string
	// Item is set when the add-item call succeeded.
	Item *domain.BillItem
	// ItemErr is the add-item failure, if any. A failed add-item skips the
	// stock decrement for this line.
	ItemErr error
	// StockErr is the stock decrement failure, if any.
	StockErr error
	// Skipped is true when the line's batch was no longer in the catalog
	// snapshot and no request was attempted for it.
	Skipped bool
}

// Result is the outcome of one submission: the created bill and the
// per-line report. Partial failure is reported, not rolled back.
type Result struct {
	Bill  *domain.Bill
	Lines []LineResult
}

// Failed returns the indices of lines whose add-item or stock update failed.
func (r *Result) Failed() []int {
	var out []int
	for _, lr := range r.Lines {
		if lr.ItemErr != nil || lr.StockErr != nil || lr.Skipped {
			out = append(out, lr.Index)
		}
	}
	return out
}

// Coordinator commits a draft: one header create strictly before the line
// fan-out, then per line an add-item followed on success by a stock
// decrement. Line sub-chains run concurrently and unordered with respect to
// each other; the terminal transition is the join over all of them, so no
// shared completion counter is involved. Commit is best-effort by design: a
// failed sub-step is logged, not retried, and never blocks siblings.
type Coordinator struct {
	bills    port.BillAPI
	stock    port.StockAPI
	catalog  *Catalog
	recorder BillRecorder

	mu    sync.Mutex
	state domain.SubmissionState
}

// NewCoordinator creates a coordinator in the Idle state. recorder may be nil.
func NewCoordinator(bills port.BillAPI, stock port.StockAPI, catalog *Catalog, recorder BillRecorder) *Coordinator {
	return &Coordinator{
		bills:    bills,
		stock:    stock,
		catalog:  catalog,
		recorder: recorder,
		state:    domain.SubmissionIdle,
	}
}

// State returns the coordinator's current state.
func (c *Coordinator) State() domain.SubmissionState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Coordinator) setState(s domain.SubmissionState) {
	c.mu.Lock()
	c.state = s
	c.mu.Unlock()
}

// Submit runs the full submission sequence. On header failure the error is
// returned, the draft is untouched, and the coordinator is back in Idle. On
// header success a Result is always returned, whatever happened to the
// individual lines.
func (c *Coordinator) Submit(ctx context.Context, draft *Draft) (*Result, error) {
	header, ok := draft.Header()
	if !ok {
		return nil, domain.ErrMissingField
	}
	lines := draft.Lines()
	if len(lines) == 0 {
		return nil, domain.ErrEmptyBill
	}

	c.mu.Lock()
	if c.state != domain.SubmissionIdle && c.state != domain.SubmissionDone {
		c.mu.Unlock()
		return nil, domain.ErrSubmissionInFlight
	}
	c.state = domain.SubmissionHeaderSubmitting
	c.mu.Unlock()

	bill, err := c.bills.CreateBill(ctx, &header)
	if err != nil {
		log.Printf("coordinator: bill header create failed: %v", err)
		c.setState(domain.SubmissionIdle)
		return nil, err
	}
	if c.recorder != nil {
		if err := c.recorder.SaveBillID(bill.ID); err != nil {
			log.Printf("coordinator: could not persist bill id %d: %v", bill.ID, err)
		}
	}

	c.setState(domain.SubmissionItemsSubmitting)

	results := make([]LineResult, len(lines))
	g, ctx := errgroup.WithContext(ctx)
	for i := range lines {
		i, line := i, lines[i]
		g.Go(func() error {
			results[i] = c.submitLine(ctx, bill, &line, i, header.UserID)
			// Best-effort: line failures are reported, never propagated,
			// so one bad line cannot cancel its siblings.
			return nil
		})
	}
	_ = g.Wait()

	c.setState(domain.SubmissionDone)
	return &Result{Bill: bill, Lines: results}, nil
}

// submitLine runs one line's sub-chain: add-item, then on success the stock
// decrement for its batch.
func (c *Coordinator) submitLine(ctx context.Context, bill *domain.Bill, line *domain.BillLineDraft, idx int, userID int64) LineResult {
	res := LineResult{Index: idx, ProductName: line.ProductName, BatchNo: line.BatchNo}

	batch, ok := c.catalog.Find(line.ProductName, line.BatchNo)
	if !ok {
		log.Printf("coordinator: line %d (%s/%s): batch gone from catalog, skipping", idx, line.ProductName, line.BatchNo)
		res.Skipped = true
		return res
	}

	item, err := c.bills.AddBillItem(ctx, bill.ID, line)
	if err != nil {
		log.Printf("coordinator: line %d (%s/%s): add item failed: %v", idx, line.ProductName, line.BatchNo, err)
		res.ItemErr = err
		return res
	}
	res.Item = item

	upd := domain.StockUpdate{
		UserID:     userID,
		ProductID:  batch.Product.ID,
		BatchNo:    batch.BatchNo,
		ExpiryDate: batch.ExpiryDate,
		Quantity:   batch.Quantity - line.Units(),
	}
	if _, err := c.stock.UpdateStock(ctx, upd); err != nil {
		log.Printf("coordinator: line %d (%s/%s): stock update failed: %v", idx, line.ProductName, line.BatchNo, err)
		res.StockErr = err
	}
	return res
}
