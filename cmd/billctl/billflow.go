package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"medibill/internal/billing"
	"medibill/internal/domain"
	"medibill/internal/preview"
)

// cmdBillCreate walks the two-step creation flow: header fields first, then
// line entry against searched stock, then submit and preview.
func (a *app) cmdBillCreate(ctx context.Context) error {
	user, err := a.sessions.User()
	if err != nil {
		return err
	}
	// A new flow invalidates the bill id cached by the previous one.
	if err := a.sessions.ClearBillID(); err != nil {
		return err
	}

	r := bufio.NewReader(os.Stdin)
	catalog := billing.NewCatalog()
	draft := billing.NewDraft(catalog, user.UserID)

	if err := a.readHeader(r, draft); err != nil {
		return err
	}
	if err := a.readLines(ctx, r, catalog, draft); err != nil {
		return err
	}

	coordinator := billing.NewCoordinator(a.bills, a.stock, catalog, a.sessions)
	result, err := coordinator.Submit(ctx, draft)
	if err != nil {
		a.alerts.Error(fmt.Sprintf("bill not created: %v", err))
		return err
	}

	if failed := result.Failed(); len(failed) > 0 {
		a.alerts.Warning(fmt.Sprintf("bill %d created but %d line(s) did not post cleanly", result.Bill.ID, len(failed)))
	} else {
		a.alerts.Success(fmt.Sprintf("bill %d created", result.Bill.ID))
	}

	renderer := preview.NewRenderer(a.bills, a.details)
	return renderer.Render(ctx, os.Stdout, user.UserID, result.Bill.ID)
}

// readHeader collects step-one fields until they validate.
func (a *app) readHeader(r *bufio.Reader, draft *billing.Draft) error {
	for {
		h := domain.BillHeaderDraft{InvoiceDate: domain.FormatDate(time.Now())}
		var err error
		if h.PurchaserName, err = prompt(r, "purchaser name: "); err != nil {
			return err
		}
		if h.DL1, err = prompt(r, "drug license 1: "); err != nil {
			return err
		}
		if h.DL2, err = prompt(r, "drug license 2: "); err != nil {
			return err
		}
		idType, err := prompt(r, "identifier type [GST/PAN/AADHAAR] (default GST): ")
		if err != nil {
			return err
		}
		h.IdentifierType = domain.IdentifierType(strings.ToUpper(idType))
		if h.IdentifierType == "" {
			h.IdentifierType = domain.IdentifierGST
		}
		if h.Identifier, err = prompt(r, "identifier: "); err != nil {
			return err
		}
		if date, err := prompt(r, fmt.Sprintf("invoice date [%s]: ", h.InvoiceDate)); err != nil {
			return err
		} else if date != "" {
			h.InvoiceDate = date
		}

		if err := draft.SetHeader(h); err != nil {
			a.alerts.Error(err.Error())
			a.drainAlerts()
			continue
		}
		return nil
	}
}

// readLines drives the line-entry loop: search stock, pick a batch, enter
// quantities, repeat until "done".
func (a *app) readLines(ctx context.Context, r *bufio.Reader, catalog *billing.Catalog, draft *billing.Draft) error {
	for {
		text, err := prompt(r, fmt.Sprintf("\n[%d line(s)] search product (or 'done', 'drop N'): ", draft.LineCount()))
		if err != nil {
			return err
		}
		switch {
		case text == "done":
			return nil
		case strings.HasPrefix(text, "drop "):
			idx, err := strconv.Atoi(strings.TrimPrefix(text, "drop "))
			if err != nil || draft.RemoveLine(idx) != nil {
				a.alerts.Error("no such line")
				a.drainAlerts()
			}
			continue
		case len(text) < 2:
			a.alerts.Info("type at least two characters to search")
			a.drainAlerts()
			continue
		}

		if _, err := catalog.Refresh(ctx, a.stock, domain.SearchRequest{
			SearchText: text, Page: 0, Size: a.cfg.Search.PageSize,
		}); err != nil {
			a.alerts.Error(fmt.Sprintf("search failed: %v", err))
			a.drainAlerts()
			continue
		}

		products := catalog.Products()
		if len(products) == 0 {
			a.alerts.Info("no matches")
			a.drainAlerts()
			continue
		}
		for i, p := range products {
			fmt.Printf("  %d) %s (%s)\n", i+1, p.Name, p.Packing)
		}
		pick, err := promptInt(r, "product #: ")
		if err != nil || pick < 1 || pick > len(products) {
			a.alerts.Error("invalid selection")
			a.drainAlerts()
			continue
		}
		product := products[pick-1]

		batches := catalog.BatchesFor(product.Name)
		for i, b := range batches {
			fmt.Printf("  %d) batch %s exp %s, %d available\n", i+1, b.BatchNo, b.ExpiryDate, b.Quantity)
		}
		pick, err = promptInt(r, "batch #: ")
		if err != nil || pick < 1 || pick > len(batches) {
			a.alerts.Error("invalid selection")
			a.drainAlerts()
			continue
		}
		batch := batches[pick-1]

		line := billing.NewLineEntry()
		line.ProductName = product.Name
		line.BatchNo = batch.BatchNo
		if line.Quantity, err = promptInt(r, fmt.Sprintf("quantity (available %d): ", batch.Quantity)); err != nil {
			return err
		}
		if line.Free, err = promptInt(r, "free units [0]: "); err != nil {
			a.alerts.Error("invalid free quantity")
			a.drainAlerts()
			continue
		}
		rate, err := prompt(r, fmt.Sprintf("rate (MRP %.2f): ", product.MRP))
		if err != nil {
			return err
		}
		if line.Rate, err = strconv.ParseFloat(rate, 64); err != nil {
			a.alerts.Error("invalid rate")
			a.drainAlerts()
			continue
		}

		if _, err := draft.AddLine(line); err != nil {
			a.alerts.Error(err.Error())
			a.drainAlerts()
			continue
		}
		lines := draft.Lines()
		added := lines[len(lines)-1]
		fmt.Printf("added: %s x%d (+%d free) = %.2f\n", added.ProductName, added.Quantity, added.Free, *added.Amount)
	}
}

func promptInt(r *bufio.Reader, label string) (int, error) {
	s, err := prompt(r, label)
	if err != nil {
		return 0, err
	}
	if s == "" {
		return 0, nil
	}
	return strconv.Atoi(s)
}
