package billing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medibill/internal/billing"
	"medibill/internal/domain"
)

func testCatalog() *billing.Catalog {
	c := billing.NewCatalog()
	c.Replace([]domain.StockBatch{
		{
			Product:    domain.Product{ID: 1, Name: "Paracetamol 500mg", HSN: "3004", MRP: 25, CGSTPercent: 6, SGSTPercent: 6, Packing: "10x10"},
			BatchNo:    "PCM001",
			ExpiryDate: "2027-03-31",
			Quantity:   200,
		},
		{
			Product:    domain.Product{ID: 1, Name: "Paracetamol 500mg", HSN: "3004", MRP: 25, CGSTPercent: 6, SGSTPercent: 6, Packing: "10x10"},
			BatchNo:    "PCM002",
			ExpiryDate: "2027-06-30",
			Quantity:   5,
		},
		{
			Product:    domain.Product{ID: 2, Name: "Amoxicillin 250mg", HSN: "3004", MRP: 80, CGSTPercent: 9, SGSTPercent: 9, Packing: "10x6"},
			BatchNo:    "AMX010",
			ExpiryDate: "2026-12-31",
			Quantity:   50,
		},
	})
	return c
}

func TestLineAmount(t *testing.T) {
	// 100*10 + 100*10*12/100 = 1120
	assert.Equal(t, 1120.0, billing.LineAmount(100, 10, 6, 6))
	assert.Equal(t, 0.0, billing.LineAmount(100, 0, 6, 6))
	// No tax: just rate*quantity.
	assert.Equal(t, 250.0, billing.LineAmount(25, 10, 0, 0))
	// Tax split stays exact before the final rounding: 33.33*3*1.12 = 111.9888.
	assert.Equal(t, 111.99, billing.LineAmount(33.33, 3, 6, 6))
}

func TestRecompute_SetsAmountFromCatalogTax(t *testing.T) {
	calc := billing.NewCalculator(testCatalog())

	line := domain.BillLineDraft{ProductName: "Paracetamol 500mg", BatchNo: "PCM001", Quantity: 10, Rate: 100}
	calc.Recompute(&line)

	require.NotNil(t, line.Amount)
	assert.Equal(t, 1120.0, *line.Amount)
}

func TestRecompute_ClearsAmountWhenInputMissing(t *testing.T) {
	calc := billing.NewCalculator(testCatalog())

	stale := 999.0
	cases := []domain.BillLineDraft{
		{BatchNo: "PCM001", Quantity: 10, Rate: 100, Amount: &stale},
		{ProductName: "Paracetamol 500mg", Quantity: 10, Rate: 100, Amount: &stale},
		{ProductName: "Paracetamol 500mg", BatchNo: "PCM001", Rate: 100, Amount: &stale},
		{ProductName: "Paracetamol 500mg", BatchNo: "PCM001", Quantity: 10, Amount: &stale},
	}
	for _, line := range cases {
		calc.Recompute(&line)
		assert.Nil(t, line.Amount)
	}
}

func TestRecompute_KeepsAmountWhenBatchUnresolved(t *testing.T) {
	calc := billing.NewCalculator(testCatalog())

	stale := 500.0
	line := domain.BillLineDraft{ProductName: "Paracetamol 500mg", BatchNo: "NOPE", Quantity: 10, Rate: 100, Amount: &stale}
	calc.Recompute(&line)

	require.NotNil(t, line.Amount)
	assert.Equal(t, 500.0, *line.Amount)
}
