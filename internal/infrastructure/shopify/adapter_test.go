package shopify

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ordersPage = `{
	"orders": [
		{
			"id": 450789469,
			"total_price": "120.50",
			"total_tax": "10.00",
			"total_discounts": "5.00",
			"total_shipping_price_set": {"shop_money": {"amount": "7.90"}},
			"gateway": "shopify_payments",
			"payment_gateway_names": ["shopify_payments"],
			"line_items": [
				{"variant_id": 39072856, "sku": "SKU-1", "quantity": 2, "price": "30.00"},
				{"variant_id": 0, "sku": "SKU-2", "quantity": 1, "price": "55.50"}
			]
		},
		{
			"id": 450789470,
			"total_price": "79.50",
			"total_tax": "not-a-number",
			"gateway": "",
			"payment_gateway_names": ["paypal"],
			"line_items": []
		}
	]
}`

func newTestAdapter(t *testing.T, serverURL string) *Adapter {
	cfg := NewConfig()
	cfg.APIBaseURL = serverURL
	adapter, err := NewAdapter(cfg)
	require.NoError(t, err)
	adapter.SetShopToken("example.myshopify.com", "shpat_test")
	return adapter
}

func TestAdapterFetchOrdersForDate(t *testing.T) {
	ctx := context.Background()

	t.Run("maps the wire payload onto domain orders", func(t *testing.T) {
		var gotPath, gotToken string
		var gotQuery map[string][]string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotToken = r.Header.Get("X-Shopify-Access-Token")
			gotQuery = r.URL.Query()
			fmt.Fprint(w, ordersPage)
		}))
		defer server.Close()

		adapter := newTestAdapter(t, server.URL)
		orders, err := adapter.FetchOrdersForDate(ctx, "example.myshopify.com", "2026-08-15")

		require.NoError(t, err)
		assert.Equal(t, "/admin/api/"+DefaultAPIVersion+"/orders.json", gotPath)
		assert.Equal(t, "shpat_test", gotToken)
		assert.Equal(t, []string{"paid"}, gotQuery["financial_status"])
		assert.Equal(t, []string{"2026-08-15T00:00:00Z"}, gotQuery["created_at_min"])
		assert.Equal(t, []string{"2026-08-15T23:59:59Z"}, gotQuery["created_at_max"])

		require.Len(t, orders, 2)
		assert.Equal(t, "450789469", orders[0].ID)
		assert.Equal(t, "120.50", orders[0].TotalPrice.StringFixed(2))
		assert.Equal(t, "7.90", orders[0].TotalShipping.StringFixed(2))
		assert.Equal(t, "shopify_payments", orders[0].Gateway)
		require.Len(t, orders[0].LineItems, 2)
		assert.Equal(t, "39072856", orders[0].LineItems[0].VariantID)
		// variant_id 0 means the variant no longer exists
		assert.Empty(t, orders[0].LineItems[1].VariantID)

		// gateway falls back to payment_gateway_names, bad money reads as zero
		assert.Equal(t, "paypal", orders[1].Gateway)
		assert.True(t, orders[1].TotalTax.IsZero())
	})

	t.Run("follows the Link header across pages", func(t *testing.T) {
		var server *httptest.Server
		calls := 0
		server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls++
			if r.URL.Query().Get("page_info") == "" {
				w.Header().Set("Link", fmt.Sprintf(`<%s/admin/api/%s/orders.json?page_info=abc&limit=250>; rel="next"`, server.URL, DefaultAPIVersion))
			}
			fmt.Fprint(w, ordersPage)
		}))
		defer server.Close()

		adapter := newTestAdapter(t, server.URL)
		orders, err := adapter.FetchOrdersForDate(ctx, "example.myshopify.com", "2026-08-15")

		require.NoError(t, err)
		assert.Equal(t, 2, calls)
		assert.Len(t, orders, 4)
	})

	t.Run("unconfigured shop is rejected before any request", func(t *testing.T) {
		adapter := newTestAdapter(t, "http://127.0.0.1:0")

		_, err := adapter.FetchOrdersForDate(ctx, "other.myshopify.com", "2026-08-15")

		assert.ErrorIs(t, err, ErrShopNotConfigured)
	})

	t.Run("non-200 responses surface as errors", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
			fmt.Fprint(w, `{"errors":"Too Many Requests"}`)
		}))
		defer server.Close()

		adapter := newTestAdapter(t, server.URL)
		_, err := adapter.FetchOrdersForDate(ctx, "example.myshopify.com", "2026-08-15")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "unexpected status 429")
	})
}

func TestNextPageURL(t *testing.T) {
	assert.Empty(t, nextPageURL(""))
	assert.Empty(t, nextPageURL(`<https://x/orders.json?page_info=a>; rel="previous"`))
	assert.Equal(t, "https://x/orders.json?page_info=b",
		nextPageURL(`<https://x/orders.json?page_info=a>; rel="previous", <https://x/orders.json?page_info=b>; rel="next"`))
}
