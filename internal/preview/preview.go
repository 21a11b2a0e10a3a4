// Package preview renders a created bill as a printable text invoice.
package preview

import (
	"context"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"medibill/internal/domain"
	"medibill/internal/port"
	"medibill/internal/words"
)

const lineWidth = 78

// Renderer fetches a bill and the distributor profile and writes the
// printable invoice.
type Renderer struct {
	bills   port.BillAPI
	details port.DetailsAPI
}

// NewRenderer creates a Renderer over the given API groups.
func NewRenderer(bills port.BillAPI, details port.DetailsAPI) *Renderer {
	return &Renderer{bills: bills, details: details}
}

// Render fetches the bill by id and the user's profile and writes the
// invoice to w. A missing profile is tolerated; the invoice prints without
// the letterhead block.
func (r *Renderer) Render(ctx context.Context, w io.Writer, userID, billID int64) error {
	bill, err := r.bills.GetBill(ctx, billID)
	if err != nil {
		return fmt.Errorf("preview: %w", err)
	}
	det, err := r.details.GetDetails(ctx, userID)
	if err != nil {
		det = nil
	}
	return RenderBill(w, det, bill)
}

// RenderBill writes the printable invoice for an already-fetched bill.
func RenderBill(w io.Writer, det *domain.Details, bill *domain.Bill) error {
	rule := strings.Repeat("-", lineWidth)

	if det != nil {
		fmt.Fprintf(w, "%s\n", center(det.FirmName))
		if det.Address != "" {
			fmt.Fprintf(w, "%s\n", center(det.Address))
		}
		fmt.Fprintf(w, "%s\n", center(fmt.Sprintf("GSTIN: %s  DL: %s / %s", det.GSTIN, det.DL1, det.DL2)))
		fmt.Fprintln(w, rule)
	}

	fmt.Fprintf(w, "Invoice No: %-12d Date: %s\n", bill.ID, bill.InvoiceDate)
	fmt.Fprintf(w, "Purchaser : %s\n", bill.PurchaserName)
	fmt.Fprintf(w, "Identifier: %-20s DL: %s / %s\n", bill.Identifier, bill.DL1, bill.DL2)
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "%-24s %-10s %-10s %5s %5s %9s %10s\n",
		"Product", "Batch", "Expiry", "Qty", "Free", "Rate", "Amount")
	fmt.Fprintln(w, rule)

	for i := range bill.Items {
		it := &bill.Items[i]
		fmt.Fprintf(w, "%-24s %-10s %-10s %5d %5d %9.2f %10.2f\n",
			truncate(it.ProductName, 24), it.BatchNo, it.ExpiryDate,
			it.Quantity, it.Free, it.Rate, it.Amount)
	}
	fmt.Fprintln(w, rule)

	total := Total(bill)
	fmt.Fprintf(w, "%64s %12.2f\n", "Total:", total)
	fmt.Fprintf(w, "Rupees %s Only\n", words.Words(total))
	return nil
}

// Total returns the bill total, preferring the backend's figure and summing
// the line amounts when the backend did not supply one.
func Total(bill *domain.Bill) float64 {
	if bill.TotalAmount != 0 || len(bill.Items) == 0 {
		return bill.TotalAmount
	}
	sum := decimal.Zero
	for i := range bill.Items {
		sum = sum.Add(decimal.NewFromFloat(bill.Items[i].Amount))
	}
	total, _ := sum.Round(2).Float64()
	return total
}

func center(s string) string {
	if len(s) >= lineWidth {
		return s
	}
	pad := (lineWidth - len(s)) / 2
	return strings.Repeat(" ", pad) + s
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n-1]) + "…"
}
