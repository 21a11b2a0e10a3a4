// Package billing holds the bill-creation workflow: the searched stock
// catalog, line amount calculation, the draft under construction, and the
// submission coordinator that commits a draft to the backend.
package billing

import (
	"context"
	"sync"

	"medibill/internal/domain"
	"medibill/internal/port"
)

// Catalog is the in-memory snapshot of stock batches returned by the last
// search. It is refreshed only by explicit searches, never by polling, so
// it can go stale between search and submit; the backend resolves that by
// rejecting, not the client by locking.
type Catalog struct {
	mu      sync.RWMutex
	batches []domain.StockBatch
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog { return &Catalog{} }

// Replace swaps in the batches from a fresh search result.
func (c *Catalog) Replace(batches []domain.StockBatch) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.batches = append(c.batches[:0:0], batches...)
}

// Refresh runs a stock search and replaces the snapshot with its first page.
func (c *Catalog) Refresh(ctx context.Context, api port.StockAPI, req domain.SearchRequest) (*domain.StockPage, error) {
	page, err := api.SearchStock(ctx, req)
	if err != nil {
		return nil, err
	}
	c.Replace(page.Content)
	return page, nil
}

// Find looks up a batch by product name and batch number, the keys the
// entry form works with. The second return is false when the pair is not
// in the snapshot.
func (c *Catalog) Find(productName, batchNo string) (domain.StockBatch, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for i := range c.batches {
		if c.batches[i].Product.Name == productName && c.batches[i].BatchNo == batchNo {
			return c.batches[i], true
		}
	}
	return domain.StockBatch{}, false
}

// FindByKey looks up a batch by its (productId, batchNo) identity.
func (c *Catalog) FindByKey(key domain.BatchKey) (domain.StockBatch, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for i := range c.batches {
		if c.batches[i].Key() == key {
			return c.batches[i], true
		}
	}
	return domain.StockBatch{}, false
}

// Products returns the distinct products in the snapshot, first occurrence
// wins, preserving search order. This is the typeahead dropdown source.
func (c *Catalog) Products() []domain.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()
	seen := make(map[string]bool, len(c.batches))
	var out []domain.Product
	for i := range c.batches {
		name := c.batches[i].Product.Name
		if seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, c.batches[i].Product)
	}
	return out
}

// BatchesFor returns the batches of one product, for batch selection after
// a product is picked.
func (c *Catalog) BatchesFor(productName string) []domain.StockBatch {
	c.mu.RLock()
	defer c.mu.RUnlock()
	var out []domain.StockBatch
	for i := range c.batches {
		if c.batches[i].Product.Name == productName {
			out = append(out, c.batches[i])
		}
	}
	return out
}

// Len returns the number of batches in the snapshot.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.batches)
}
