package bulkupload

import (
	"context"
	"log"
	"sync"

	"golang.org/x/sync/errgroup"

	"medibill/internal/domain"
	"medibill/internal/port"
)

// RowError is one failed product add.
type RowError struct {
	Index   int
	Product string
	Err     error
}

// Report summarizes an upload: every row is attempted, failures are
// collected rather than aborting the batch.
type Report struct {
	Total     int
	Succeeded int
	Failures  []RowError
}

// Uploader pushes parsed products to the backend with a bounded fan-out.
type Uploader struct {
	products    port.ProductAPI
	concurrency int
}

// NewUploader creates an Uploader. concurrency caps the in-flight add
// calls; values below one fall back to a safe default.
func NewUploader(products port.ProductAPI, concurrency int) *Uploader {
	if concurrency < 1 {
		concurrency = 4
	}
	return &Uploader{products: products, concurrency: concurrency}
}

// Upload adds every product, best effort.
func (u *Uploader) Upload(ctx context.Context, products []domain.Product) *Report {
	report := &Report{Total: len(products)}
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(u.concurrency)
	for i := range products {
		i, p := i, products[i]
		g.Go(func() error {
			if _, err := u.products.AddProduct(ctx, &p); err != nil {
				log.Printf("bulkupload: add %q failed: %v", p.Name, err)
				mu.Lock()
				report.Failures = append(report.Failures, RowError{Index: i, Product: p.Name, Err: err})
				mu.Unlock()
				return nil
			}
			mu.Lock()
			report.Succeeded++
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()
	return report
}
