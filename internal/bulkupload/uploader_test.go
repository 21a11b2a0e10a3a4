package bulkupload_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"medibill/internal/bulkupload"
	"medibill/internal/domain"
	"medibill/mocks"
)

func TestUpload_AllSucceed(t *testing.T) {
	api := new(mocks.MockProductAPI)
	api.On("AddProduct", mock.Anything, mock.Anything).Return(&domain.Product{ID: 1}, nil)

	u := bulkupload.NewUploader(api, 2)
	report := u.Upload(context.Background(), []domain.Product{
		{Name: "Paracetamol 500mg", MRP: 25},
		{Name: "Amoxicillin 250mg", MRP: 80},
		{Name: "Cetirizine 10mg", MRP: 30},
	})

	assert.Equal(t, 3, report.Total)
	assert.Equal(t, 3, report.Succeeded)
	assert.Empty(t, report.Failures)
	api.AssertNumberOfCalls(t, "AddProduct", 3)
}

func TestUpload_CollectsFailuresWithoutAborting(t *testing.T) {
	api := new(mocks.MockProductAPI)
	api.On("AddProduct", mock.Anything, mock.MatchedBy(func(p *domain.Product) bool {
		return p.Name == "Amoxicillin 250mg"
	})).Return(nil, assert.AnError)
	api.On("AddProduct", mock.Anything, mock.Anything).Return(&domain.Product{ID: 1}, nil)

	u := bulkupload.NewUploader(api, 2)
	report := u.Upload(context.Background(), []domain.Product{
		{Name: "Paracetamol 500mg", MRP: 25},
		{Name: "Amoxicillin 250mg", MRP: 80},
		{Name: "Cetirizine 10mg", MRP: 30},
	})

	assert.Equal(t, 3, report.Total)
	assert.Equal(t, 2, report.Succeeded)
	require.Len(t, report.Failures, 1)
	assert.Equal(t, "Amoxicillin 250mg", report.Failures[0].Product)
	assert.ErrorIs(t, report.Failures[0].Err, assert.AnError)
	// Every row was still attempted.
	api.AssertNumberOfCalls(t, "AddProduct", 3)
}

func TestUpload_EmptyBatch(t *testing.T) {
	u := bulkupload.NewUploader(new(mocks.MockProductAPI), 2)
	report := u.Upload(context.Background(), nil)
	assert.Zero(t, report.Total)
	assert.Zero(t, report.Succeeded)
}

func TestNewUploader_DefaultsConcurrency(t *testing.T) {
	api := new(mocks.MockProductAPI)
	api.On("AddProduct", mock.Anything, mock.Anything).Return(&domain.Product{ID: 1}, nil)

	u := bulkupload.NewUploader(api, 0)
	report := u.Upload(context.Background(), []domain.Product{{Name: "Paracetamol 500mg", MRP: 25}})
	assert.Equal(t, 1, report.Succeeded)
}
