package billing

import (
	"github.com/shopspring/decimal"

	"medibill/internal/domain"
)

// LineAmount computes the payable amount for a line:
//
//	amount = rate*quantity + rate*quantity*(cgst+sgst)/100
//
// Free units never enter the formula; they reduce stock but are not
// charged. Decimal arithmetic keeps the tax split exact before the final
// 2-decimal rounding.
func LineAmount(rate float64, quantity int, cgstPercent, sgstPercent float64) float64 {
	base := decimal.NewFromFloat(rate).Mul(decimal.NewFromInt(int64(quantity)))
	taxRate := decimal.NewFromFloat(cgstPercent).Add(decimal.NewFromFloat(sgstPercent))
	tax := base.Mul(taxRate).Div(decimal.NewFromInt(100))
	amount, _ := base.Add(tax).Round(2).Float64()
	return amount
}

// Calculator derives line amounts from the catalog's tax percentages.
type Calculator struct {
	catalog *Catalog
}

// NewCalculator creates a calculator reading rates from catalog.
func NewCalculator(catalog *Catalog) *Calculator {
	return &Calculator{catalog: catalog}
}

// Recompute refreshes line.Amount. It runs on every change to product,
// batch, quantity, or rate. When a required input is missing the amount is
// cleared to nil, not zero, so "not yet computable" stays distinguishable
// from a zero-value line. When the batch cannot be resolved in the catalog
// the previous amount is left in place.
func (c *Calculator) Recompute(line *domain.BillLineDraft) {
	if line.ProductName == "" || line.BatchNo == "" || line.Rate == 0 || line.Quantity == 0 {
		line.Amount = nil
		return
	}

	batch, ok := c.catalog.Find(line.ProductName, line.BatchNo)
	if !ok {
		return
	}

	amount := LineAmount(line.Rate, line.Quantity, batch.Product.CGSTPercent, batch.Product.SGSTPercent)
	line.Amount = &amount
}
