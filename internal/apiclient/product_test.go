package apiclient_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medibill/internal/apiclient"
	"medibill/internal/domain"
)

func TestProductCRUD(t *testing.T) {
	env := newTestEnv(t)
	products := apiclient.NewProductClient(env.client)
	ctx := context.Background()

	created, err := products.AddProduct(ctx, &domain.Product{
		Name: "Paracetamol 500mg", HSN: "3004", MRP: 25, CGSTPercent: 6, SGSTPercent: 6, Packing: "10x10",
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	fetched, err := products.GetProduct(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Paracetamol 500mg", fetched.Name)

	fetched.MRP = 27.50
	updated, err := products.EditProduct(ctx, created.ID, fetched)
	require.NoError(t, err)
	assert.Equal(t, 27.50, updated.MRP)

	all, err := products.GetProducts(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	require.NoError(t, products.DeleteProduct(ctx, created.ID))
	_, err = products.GetProduct(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSearchProducts(t *testing.T) {
	env := newTestEnv(t)
	env.seedStock(t)
	products := apiclient.NewProductClient(env.client)

	page, err := products.SearchProducts(context.Background(), domain.SearchRequest{
		SearchText: "para", Page: 0, Size: 10,
	})
	require.NoError(t, err)
	require.Len(t, page.Content, 1)
	assert.Equal(t, "Paracetamol 500mg", page.Content[0].Name)
}

func TestDetailsRoundTrip(t *testing.T) {
	env := newTestEnv(t)
	details := apiclient.NewDetailsClient(env.client)
	ctx := context.Background()

	profile := &domain.Details{
		FirmName: "Demo Pharma Distributors",
		Address:  "14 MG Road, Pune 411001",
		GSTIN:    "27AAPFU0939F1ZV",
		DL1:      "MH-PUN-111111",
		DL2:      "MH-PUN-222222",
	}
	created, err := details.CreateDetails(ctx, env.user.UserID, profile)
	require.NoError(t, err)
	assert.Equal(t, env.user.UserID, created.UserID)

	fetched, err := details.GetDetails(ctx, env.user.UserID)
	require.NoError(t, err)
	assert.Equal(t, "Demo Pharma Distributors", fetched.FirmName)

	fetched.Phone = "020-12345678"
	updated, err := details.EditDetails(ctx, env.user.UserID, fetched)
	require.NoError(t, err)
	assert.Equal(t, "020-12345678", updated.Phone)

	require.NoError(t, details.DeleteDetails(ctx, env.user.UserID))
	_, err = details.GetDetails(ctx, env.user.UserID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
