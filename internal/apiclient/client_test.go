package apiclient_test

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medibill/internal/apiclient"
	"medibill/internal/config"
	"medibill/internal/domain"
	"medibill/internal/stubapi"
)

// staticToken is a TokenSource holding a fixed bearer token.
type staticToken struct{ token string }

func (s *staticToken) Token() string { return s.token }

type testEnv struct {
	srv    *stubapi.Server
	client *apiclient.Client
	tokens *staticToken
	user   *domain.User
}

// newTestEnv starts an in-process stub backend, registers a distributor and
// returns a client whose base URL points at it.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	srv := stubapi.New("test-secret", time.Hour)
	ts := httptest.NewServer(srv.Engine)
	t.Cleanup(ts.Close)

	user, err := srv.Store.CreateUser("demo", "demo1234", "Demo Distributor", domain.RoleUser)
	require.NoError(t, err)
	token, err := srv.Tokens.Mint(user)
	require.NoError(t, err)

	tokens := &staticToken{token: token}
	client := apiclient.New(config.APIConfig{
		BaseURL: ts.URL + "/",
		Timeout: 5 * time.Second,
	}, tokens, nil)

	return &testEnv{srv: srv, client: client, tokens: tokens, user: user}
}

func (e *testEnv) seedStock(t *testing.T) domain.StockBatch {
	t.Helper()
	p := e.srv.Store.AddProduct(domain.Product{
		Name: "Paracetamol 500mg", HSN: "3004", MRP: 25, CGSTPercent: 6, SGSTPercent: 6, Packing: "10x10",
	})
	batch := e.srv.Store.AddStock(domain.StockBatch{
		Product: *p, BatchNo: "PCM001", ExpiryDate: "2027-03-31", Quantity: 200, UserID: e.user.UserID,
	})
	return *batch
}

func TestLogin(t *testing.T) {
	env := newTestEnv(t)
	auth := apiclient.NewAuthClient(env.client)

	user, token, err := auth.Login(context.Background(), "demo", "demo1234")
	require.NoError(t, err)
	assert.Equal(t, "demo", user.Username)
	assert.Equal(t, domain.RoleUser, user.Role)
	assert.NotEmpty(t, token)

	claims, err := env.srv.Tokens.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, user.UserID, claims.UserID)
}

func TestLogin_BadCredentials(t *testing.T) {
	env := newTestEnv(t)
	auth := apiclient.NewAuthClient(env.client)

	_, _, err := auth.Login(context.Background(), "demo", "wrong")
	require.ErrorIs(t, err, domain.ErrUnauthorized)

	var apiErr *domain.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 401, apiErr.StatusCode)
}

func TestRegisterThenLogin(t *testing.T) {
	env := newTestEnv(t)
	auth := apiclient.NewAuthClient(env.client)

	user, err := auth.Register(context.Background(), "fresh", "secret99", "Fresh Pharma")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleUser, user.Role)

	_, token, err := auth.Login(context.Background(), "fresh", "secret99")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
}

func TestRegister_DuplicateUsername(t *testing.T) {
	env := newTestEnv(t)
	auth := apiclient.NewAuthClient(env.client)

	_, err := auth.Register(context.Background(), "demo", "whatever1", "")
	require.Error(t, err)
	var apiErr *domain.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 409, apiErr.StatusCode)
}

func TestRefreshToken(t *testing.T) {
	env := newTestEnv(t)
	auth := apiclient.NewAuthClient(env.client)

	token, err := auth.RefreshToken(context.Background())
	require.NoError(t, err)

	claims, err := env.srv.Tokens.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, env.user.UserID, claims.UserID)
}

func TestRequestsRequireToken(t *testing.T) {
	env := newTestEnv(t)
	env.seedStock(t)
	env.tokens.token = ""

	stock := apiclient.NewStockClient(env.client)
	_, err := stock.GetStock(context.Background(), env.user.UserID)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestStockRoundTrip(t *testing.T) {
	env := newTestEnv(t)
	seeded := env.seedStock(t)
	stock := apiclient.NewStockClient(env.client)

	batches, err := stock.GetStock(context.Background(), env.user.UserID)
	require.NoError(t, err)
	require.Len(t, batches, 1)
	assert.Equal(t, 200, batches[0].Quantity)

	updated, err := stock.UpdateStock(context.Background(), domain.StockUpdate{
		UserID:    env.user.UserID,
		ProductID: seeded.Product.ID,
		BatchNo:   "PCM001",
		Quantity:  188,
	})
	require.NoError(t, err)
	assert.Equal(t, 188, updated.Quantity)
}

func TestUpdateStock_UnknownBatch(t *testing.T) {
	env := newTestEnv(t)
	stock := apiclient.NewStockClient(env.client)

	_, err := stock.UpdateStock(context.Background(), domain.StockUpdate{
		UserID: env.user.UserID, ProductID: 99, BatchNo: "NOPE", Quantity: 1,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSearchStock(t *testing.T) {
	env := newTestEnv(t)
	env.seedStock(t)
	stock := apiclient.NewStockClient(env.client)

	page, err := stock.SearchStock(context.Background(), domain.SearchRequest{
		SearchText: "para", Page: 0, Size: 10,
	})
	require.NoError(t, err)
	require.Len(t, page.Content, 1)
	assert.Equal(t, "PCM001", page.Content[0].BatchNo)
	assert.True(t, page.Last)

	page, err = stock.SearchStock(context.Background(), domain.SearchRequest{
		SearchText: "nomatch", Page: 0, Size: 10,
	})
	require.NoError(t, err)
	assert.Empty(t, page.Content)
}

func TestBillFlow(t *testing.T) {
	env := newTestEnv(t)
	seeded := env.seedStock(t)
	bills := apiclient.NewBillClient(env.client)

	created, err := bills.CreateBill(context.Background(), &domain.BillHeaderDraft{
		PurchaserName: "Shree Medical Stores",
		DL1:           "MH-MUM-123456",
		DL2:           "MH-MUM-654321",
		Identifier:    "27AAPFU0939F1ZV",
		InvoiceDate:   "2026-09-01",
		UserID:        env.user.UserID,
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	amount := 1120.0
	item, err := bills.AddBillItem(context.Background(), created.ID, &domain.BillLineDraft{
		ProductName: seeded.Product.Name,
		ProductID:   seeded.Product.ID,
		BatchNo:     "PCM001",
		Quantity:    10,
		Free:        2,
		ExpiryDate:  "2027-03-31",
		Rate:        100,
		Amount:      &amount,
	})
	require.NoError(t, err)
	assert.Equal(t, created.ID, item.BillID)

	fetched, err := bills.GetBill(context.Background(), created.ID)
	require.NoError(t, err)
	require.Len(t, fetched.Items, 1)
	assert.Equal(t, 1120.0, fetched.TotalAmount)

	list, err := bills.GetBills(context.Background(), env.user.UserID)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestGetBill_NotFound(t *testing.T) {
	env := newTestEnv(t)
	bills := apiclient.NewBillClient(env.client)

	_, err := bills.GetBill(context.Background(), 999)
	require.ErrorIs(t, err, domain.ErrNotFound)

	var apiErr *domain.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 404, apiErr.StatusCode)
}

func TestLoadingCounter_BypassedBySearch(t *testing.T) {
	env := newTestEnv(t)
	env.seedStock(t)

	shows, hides := 0, 0
	loading := apiclient.NewLoadingCounter(
		func() { shows++ },
		func() { hides++ },
	)
	client := apiclient.New(config.APIConfig{
		BaseURL: env.client.BaseURL(),
		Timeout: 5 * time.Second,
	}, env.tokens, loading)
	stock := apiclient.NewStockClient(client)

	// Typeahead search must not raise the indicator.
	_, err := stock.SearchStock(context.Background(), domain.SearchRequest{SearchText: "para", Size: 10})
	require.NoError(t, err)
	assert.Zero(t, shows)

	// A regular call toggles it exactly once.
	_, err = stock.GetStock(context.Background(), env.user.UserID)
	require.NoError(t, err)
	assert.Equal(t, 1, shows)
	assert.Equal(t, 1, hides)
	assert.Zero(t, loading.Inflight())
}

func TestDo_BaseURLMissing(t *testing.T) {
	client := apiclient.New(config.APIConfig{}, nil, nil)
	stock := apiclient.NewStockClient(client)

	_, err := stock.GetStock(context.Background(), 1)
	assert.True(t, errors.Is(err, domain.ErrBaseURLMissing))
}
