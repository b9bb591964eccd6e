package api

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tallyhq/tally/internal/common"
)

const baseURL = "https://pos.test/api"

// jsonResponder serves a canned body with the JSON content type the real
// backend sends; resty only decodes SetResult targets when the response
// declares JSON.
func jsonResponder(status int, body string) httpmock.Responder {
	return func(*http.Request) (*http.Response, error) {
		resp := httpmock.NewStringResponse(status, body)
		resp.Header.Set("Content-Type", "application/json")
		return resp, nil
	}
}

func newTestClient(t *testing.T) *Client {
	t.Helper()

	client, err := NewClient(Options{
		BaseURL: baseURL,
		Token:   "test-token",
		Retry: common.RetryOptions{
			MaxAttempts:  3,
			InitialDelay: time.Millisecond,
			MaxDelay:     5 * time.Millisecond,
		},
	}, nil)
	require.NoError(t, err)

	httpmock.ActivateNonDefault(client.http.GetClient())
	t.Cleanup(httpmock.DeactivateAndReset)

	return client
}

func TestNewClientRequiresBaseURL(t *testing.T) {
	_, err := NewClient(Options{}, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrMissingConfig)
}

func TestListProducts(t *testing.T) {
	client := newTestClient(t)

	httpmock.RegisterResponder("GET", baseURL+"/products",
		jsonResponder(200, `{
			"items": [
				{"id": 1, "name": "Espresso Beans", "sku": "ESP-01", "price": "14.50", "stock": 40},
				{"id": 2, "name": "Latte Glass", "sku": "LAT-01", "price": "6.00", "stock": 12}
			],
			"total": 2,
			"page": 1
		}`))

	page, err := client.ListProducts(context.Background(), 1, 50)
	require.NoError(t, err)

	assert.Equal(t, 2, page.Total)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "Espresso Beans", page.Items[0].Name)
	assert.Equal(t, "14.5", page.Items[0].Price.String())
}

func TestListCategories(t *testing.T) {
	client := newTestClient(t)

	httpmock.RegisterResponder("GET", baseURL+"/categories",
		jsonResponder(200, `[
			{"id": 1, "name": "Coffee", "product_num": 14},
			{"id": 2, "name": "Pastry", "product_num": 6}
		]`))

	categories, err := client.ListCategories(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "Pastry", categories[1].Name)
}

func TestSalesSummary(t *testing.T) {
	client := newTestClient(t)

	httpmock.RegisterResponder("GET", baseURL+"/reports/sales",
		func(req *http.Request) (*http.Response, error) {
			assert.Equal(t, "2026-01-01", req.URL.Query().Get("from"))
			assert.Equal(t, "2026-01-31", req.URL.Query().Get("to"))
			return jsonResponder(200, `{
				"total_sales": "1999.90",
				"total_expenses": "500.00",
				"net_profit": "1499.90",
				"order_count": 128,
				"lines": [{"category": "Coffee", "amount": "120.00", "orders": 30, "units_sold": 42}]
			}`)(req)
		})

	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC)

	summary, err := client.SalesSummary(context.Background(), from, to)
	require.NoError(t, err)
	assert.Equal(t, 128, summary.OrderCount)
	require.Len(t, summary.Lines, 1)
	assert.Equal(t, "Coffee", summary.Lines[0].Category)
}

func TestServerErrorsAreRetried(t *testing.T) {
	client := newTestClient(t)

	calls := 0
	httpmock.RegisterResponder("GET", baseURL+"/categories",
		func(*http.Request) (*http.Response, error) {
			calls++
			if calls < 3 {
				return httpmock.NewStringResponse(500, `{"error": "boom"}`), nil
			}
			return jsonResponder(200, `[]`)(nil)
		})

	_, err := client.ListCategories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestClientErrorsAreTerminal(t *testing.T) {
	client := newTestClient(t)

	calls := 0
	httpmock.RegisterResponder("GET", baseURL+"/schemas",
		func(*http.Request) (*http.Response, error) {
			calls++
			return httpmock.NewStringResponse(401, `{"error": "bad token"}`), nil
		})

	_, err := client.ListSchemas(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrUnauthorized)
	assert.Equal(t, 1, calls)
}

func TestUploadImage(t *testing.T) {
	client := newTestClient(t)

	path := filepath.Join(t.TempDir(), "product.png")
	require.NoError(t, os.WriteFile(path, []byte("not really a png"), 0o644))

	httpmock.RegisterResponder("POST", baseURL+"/uploads",
		jsonResponder(200, `{"url": "https://cdn.pos.test/img/product.png"}`))

	url, err := client.UploadImage(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.pos.test/img/product.png", url)
}
