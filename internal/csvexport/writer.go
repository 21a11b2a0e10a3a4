// Package csvexport writes bills as CSV for download into spreadsheets.
package csvexport

import (
	"encoding/csv"
	"io"
	"strconv"

	"medibill/internal/domain"
)

// UTF-8 BOM bytes for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// columns defines the CSV header row.
var columns = []string{
	"Bill No",
	"Invoice Date",
	"Purchaser",
	"Identifier",
	"DL No 1",
	"DL No 2",
	"Product",
	"Batch No",
	"Expiry Date",
	"Quantity",
	"Free",
	"Rate",
	"Amount",
}

// Writer wraps csv.Writer for exporting bills as CSV.
type Writer struct {
	csv *csv.Writer
}

// NewWriter creates a Writer that writes CSV to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{csv: csv.NewWriter(w)}
}

// WriteHeader writes the header row.
func (w *Writer) WriteHeader() error {
	return w.csv.Write(columns)
}

// WriteBill writes one row per line item of the bill. A bill with no items
// still contributes one row carrying the header fields.
func (w *Writer) WriteBill(bill *domain.Bill) error {
	if len(bill.Items) == 0 {
		return w.csv.Write(billRow(bill, nil))
	}
	for i := range bill.Items {
		if err := w.csv.Write(billRow(bill, &bill.Items[i])); err != nil {
			return err
		}
	}
	return nil
}

// WriteBills writes a batch of bills.
func (w *Writer) WriteBills(bills []domain.Bill) error {
	for i := range bills {
		if err := w.WriteBill(&bills[i]); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the underlying csv.Writer buffer.
func (w *Writer) Flush() {
	w.csv.Flush()
}

// Error returns any error from the underlying csv.Writer.
func (w *Writer) Error() error {
	return w.csv.Error()
}

func billRow(bill *domain.Bill, item *domain.BillItem) []string {
	row := make([]string, len(columns))
	row[0] = strconv.FormatInt(bill.ID, 10)
	row[1] = bill.InvoiceDate
	row[2] = bill.PurchaserName
	row[3] = bill.Identifier
	row[4] = bill.DL1
	row[5] = bill.DL2
	if item == nil {
		return row
	}
	row[6] = item.ProductName
	row[7] = item.BatchNo
	row[8] = item.ExpiryDate
	row[9] = strconv.Itoa(item.Quantity)
	row[10] = strconv.Itoa(item.Free)
	row[11] = formatAmount(item.Rate)
	row[12] = formatAmount(item.Amount)
	return row
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
