package csvexport_test

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medibill/internal/csvexport"
	"medibill/internal/domain"
)

func sampleBill() domain.Bill {
	return domain.Bill{
		ID:            42,
		PurchaserName: "Shree Medical Stores",
		DL1:           "MH-MUM-123456",
		DL2:           "MH-MUM-654321",
		Identifier:    "27AAPFU0939F1ZV",
		InvoiceDate:   "2026-09-01",
		TotalAmount:   1120,
		Items: []domain.BillItem{
			{
				ID: 1, BillID: 42, ProductName: "Paracetamol 500mg", BatchNo: "PCM001",
				Quantity: 10, Free: 2, ExpiryDate: "2027-03-31", Rate: 100, Amount: 1120,
			},
		},
	}
}

func export(t *testing.T, bills ...domain.Bill) [][]string {
	t.Helper()
	var buf bytes.Buffer
	w := csvexport.NewWriter(&buf)
	require.NoError(t, w.WriteHeader())
	require.NoError(t, w.WriteBills(bills))
	w.Flush()
	require.NoError(t, w.Error())

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriteBill(t *testing.T) {
	rows := export(t, sampleBill())
	require.Len(t, rows, 2)

	assert.Equal(t, "Bill No", rows[0][0])
	assert.Equal(t, "Amount", rows[0][12])

	row := rows[1]
	assert.Equal(t, "42", row[0])
	assert.Equal(t, "2026-09-01", row[1])
	assert.Equal(t, "Shree Medical Stores", row[2])
	assert.Equal(t, "Paracetamol 500mg", row[6])
	assert.Equal(t, "PCM001", row[7])
	assert.Equal(t, "10", row[9])
	assert.Equal(t, "2", row[10])
	assert.Equal(t, "100.00", row[11])
	assert.Equal(t, "1120.00", row[12])
}

func TestWriteBill_RowPerItem(t *testing.T) {
	bill := sampleBill()
	bill.Items = append(bill.Items, domain.BillItem{
		ID: 2, BillID: 42, ProductName: "Amoxicillin 250mg", BatchNo: "AMX010",
		Quantity: 5, ExpiryDate: "2026-12-31", Rate: 75, Amount: 442.5,
	})

	rows := export(t, bill)
	require.Len(t, rows, 3)
	assert.Equal(t, "Paracetamol 500mg", rows[1][6])
	assert.Equal(t, "Amoxicillin 250mg", rows[2][6])
	// Header fields repeat on every row.
	assert.Equal(t, rows[1][0], rows[2][0])
	assert.Equal(t, "442.50", rows[2][12])
}

func TestWriteBill_NoItemsStillOneRow(t *testing.T) {
	bill := sampleBill()
	bill.Items = nil

	rows := export(t, bill)
	require.Len(t, rows, 2)
	assert.Equal(t, "42", rows[1][0])
	assert.Equal(t, "", rows[1][6])
}

func TestWriteBills_MultipleBills(t *testing.T) {
	second := sampleBill()
	second.ID = 43
	second.Items = second.Items[:1]

	rows := export(t, sampleBill(), second)
	require.Len(t, rows, 3)
	assert.Equal(t, "42", rows[1][0])
	assert.Equal(t, "43", rows[2][0])
}
