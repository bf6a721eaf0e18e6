package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

const productsBody = `{
	"products": [
		{"id": 1, "title": "Widget", "category": "tools", "brand": "Acme", "price": 9.99},
		{"id": 2, "title": "Gadget", "category": "electronics", "brand": "Globex", "price": 24.50}
	],
	"total": 2, "skip": 0, "limit": 0
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := NewClient(server.URL, 5*time.Second, zaptest.NewLogger(t))
	t.Cleanup(func() { client.Close() })
	return client, server
}

func TestFetchAllProducts(t *testing.T) {
	var gotPath, gotLimit string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotLimit = r.URL.Query().Get("limit")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(productsBody))
	})

	products, err := client.FetchAllProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 2)

	assert.Equal(t, "/products", gotPath)
	assert.Equal(t, "0", gotLimit, "limit=0 requests the full catalog")

	assert.Equal(t, 1, products[0].ID)
	assert.Equal(t, "Widget", products[0].Title)
	assert.Equal(t, "tools", products[0].Category)
	assert.Equal(t, "Acme", products[0].Brand)
	assert.Equal(t, 9.99, products[0].Price)
}

func TestFetchAllProductsServerError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := client.FetchAllProducts(context.Background())
	assert.Error(t, err)
}

func TestFetchAllProductsUnreachable(t *testing.T) {
	client, server := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {})
	server.Close()

	_, err := client.FetchAllProducts(context.Background())
	assert.Error(t, err)
}
