package billing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medibill/internal/billing"
	"medibill/internal/domain"
)

func validHeader() domain.BillHeaderDraft {
	return domain.BillHeaderDraft{
		PurchaserName: "Shree Medical Stores",
		DL1:           "MH-MUM-123456",
		DL2:           "MH-MUM-654321",
		Identifier:    "27AAPFU0939F1ZV",
		InvoiceDate:   "2026-09-01",
	}
}

func TestDraft_SetHeaderValidates(t *testing.T) {
	d := billing.NewDraft(testCatalog(), 7)

	h := validHeader()
	h.PurchaserName = ""
	err := d.SetHeader(h)
	require.ErrorIs(t, err, domain.ErrMissingField)
	_, ok := d.Header()
	assert.False(t, ok)

	require.NoError(t, d.SetHeader(validHeader()))
	stored, ok := d.Header()
	require.True(t, ok)
	assert.Equal(t, int64(7), stored.UserID)
}

func TestDraft_SetHeaderRejectsBadIdentifier(t *testing.T) {
	d := billing.NewDraft(testCatalog(), 7)

	h := validHeader()
	h.Identifier = "NOTAGSTIN"
	require.ErrorIs(t, d.SetHeader(h), domain.ErrInvalidIdentifier)

	h = validHeader()
	h.Identifier = "ABCDE1234F"
	h.IdentifierType = domain.IdentifierPAN
	assert.NoError(t, d.SetHeader(h))
}

func TestDraft_SetHeaderOverwrites(t *testing.T) {
	d := billing.NewDraft(testCatalog(), 7)
	require.NoError(t, d.SetHeader(validHeader()))

	h := validHeader()
	h.PurchaserName = "New Purchaser"
	require.NoError(t, d.SetHeader(h))

	stored, _ := d.Header()
	assert.Equal(t, "New Purchaser", stored.PurchaserName)
}

func TestDraft_AddLineQuantityAgainstAvailable(t *testing.T) {
	// PCM002 has 5 units available; billable plus free must fit.
	d := billing.NewDraft(testCatalog(), 7)

	line := domain.BillLineDraft{
		ProductName: "Paracetamol 500mg",
		BatchNo:     "PCM002",
		Quantity:    4,
		Free:        2,
		Rate:        20,
	}
	_, err := d.AddLine(line)
	require.ErrorIs(t, err, domain.ErrInvalidQuantity)
	assert.Zero(t, d.LineCount())

	line.Quantity = 3
	entry, err := d.AddLine(line)
	require.NoError(t, err)
	assert.Equal(t, 1, d.LineCount())
	assert.Equal(t, billing.NewLineEntry(), entry)
}

func TestDraft_AddLineExactlyAvailable(t *testing.T) {
	d := billing.NewDraft(testCatalog(), 7)

	line := domain.BillLineDraft{
		ProductName: "Paracetamol 500mg",
		BatchNo:     "PCM002",
		Quantity:    5,
		Rate:        20,
	}
	_, err := d.AddLine(line)
	assert.NoError(t, err)
}

func TestDraft_AddLineResolvesProductAndExpiry(t *testing.T) {
	d := billing.NewDraft(testCatalog(), 7)

	_, err := d.AddLine(domain.BillLineDraft{
		ProductName: "Amoxicillin 250mg",
		BatchNo:     "AMX010",
		Quantity:    10,
		Rate:        75,
	})
	require.NoError(t, err)

	lines := d.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, int64(2), lines[0].ProductID)
	assert.Equal(t, "2026-12-31", lines[0].ExpiryDate)
	require.NotNil(t, lines[0].Amount)
	// 75*10 + 18% GST
	assert.Equal(t, 885.0, *lines[0].Amount)
}

func TestDraft_AddLineRejectsUnknownBatch(t *testing.T) {
	d := billing.NewDraft(testCatalog(), 7)

	_, err := d.AddLine(domain.BillLineDraft{
		ProductName: "Paracetamol 500mg",
		BatchNo:     "GONE",
		Quantity:    1,
		Rate:        20,
	})
	assert.ErrorIs(t, err, domain.ErrBatchNotInCatalog)
}

func TestDraft_AddLineRejectsMissingFields(t *testing.T) {
	d := billing.NewDraft(testCatalog(), 7)

	cases := []domain.BillLineDraft{
		{BatchNo: "PCM001", Quantity: 1, Rate: 20},
		{ProductName: "Paracetamol 500mg", Quantity: 1, Rate: 20},
		{ProductName: "Paracetamol 500mg", BatchNo: "PCM001", Rate: 20},
		{ProductName: "Paracetamol 500mg", BatchNo: "PCM001", Quantity: 1},
		{ProductName: "Paracetamol 500mg", BatchNo: "PCM001", Quantity: 1, Free: -1, Rate: 20},
	}
	for _, line := range cases {
		_, err := d.AddLine(line)
		assert.ErrorIs(t, err, domain.ErrMissingField)
	}
	assert.Zero(t, d.LineCount())
}

func TestDraft_RemoveLine(t *testing.T) {
	d := billing.NewDraft(testCatalog(), 7)
	for _, batch := range []string{"PCM001", "PCM002"} {
		_, err := d.AddLine(domain.BillLineDraft{
			ProductName: "Paracetamol 500mg",
			BatchNo:     batch,
			Quantity:    1,
			Rate:        20,
		})
		require.NoError(t, err)
	}

	require.NoError(t, d.RemoveLine(0))
	lines := d.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, "PCM002", lines[0].BatchNo)

	assert.ErrorIs(t, d.RemoveLine(5), domain.ErrNotFound)
	assert.ErrorIs(t, d.RemoveLine(-1), domain.ErrNotFound)
}

func TestDraft_Total(t *testing.T) {
	d := billing.NewDraft(testCatalog(), 7)
	assert.Zero(t, d.Total())

	_, err := d.AddLine(domain.BillLineDraft{
		ProductName: "Paracetamol 500mg", BatchNo: "PCM001", Quantity: 10, Rate: 100,
	})
	require.NoError(t, err)
	_, err = d.AddLine(domain.BillLineDraft{
		ProductName: "Amoxicillin 250mg", BatchNo: "AMX010", Quantity: 10, Rate: 75,
	})
	require.NoError(t, err)

	assert.Equal(t, 2005.0, d.Total())
}
