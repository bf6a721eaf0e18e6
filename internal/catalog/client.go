// =============================================================================
// Sales Analytics - Product Catalog Client
// =============================================================================
//
// HTTP client for the external product catalog service. The pipeline treats
// the catalog as a black box: one synchronous fetch returns the complete
// product list before enrichment begins. There is no streaming, no partial
// result handling, and no retry policy here; a fetch failure is fatal for
// the whole run.
//
// The default service is the dummyjson products API; any service exposing
// GET <base>/products with the same JSON shape works.
//
// =============================================================================

package catalog

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"resty.dev/v3"
)

// Product is one catalog entry as returned by the service.
type Product struct {
	ID       int     `json:"id"`
	Title    string  `json:"title"`
	Category string  `json:"category"`
	Brand    string  `json:"brand"`
	Price    float64 `json:"price"`
}

// productsPage is the envelope the products endpoint responds with.
type productsPage struct {
	Products []Product `json:"products"`
	Total    int       `json:"total"`
	Skip     int       `json:"skip"`
	Limit    int       `json:"limit"`
}

// Client fetches products from the catalog service.
type Client struct {
	http   *resty.Client
	logger *zap.Logger
}

// NewClient creates a catalog client for the given base URL. The timeout
// bounds the single fetch call.
func NewClient(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")

	return &Client{
		http:   httpClient,
		logger: logger,
	}
}

// Close releases the underlying HTTP client resources.
func (c *Client) Close() error {
	return c.http.Close()
}

// FetchAllProducts retrieves the complete product list in one call.
// limit=0 asks the service for everything instead of the first page.
func (c *Client) FetchAllProducts(ctx context.Context) ([]Product, error) {
	res, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("limit", "0").
		SetResult(&productsPage{}).
		Get("/products")
	if err != nil {
		return nil, fmt.Errorf("catalog fetch failed: %w", err)
	}
	if res.IsError() {
		return nil, fmt.Errorf("catalog fetch failed: unexpected status %s", res.Status())
	}

	page, ok := res.Result().(*productsPage)
	if !ok || page == nil {
		return nil, fmt.Errorf("catalog fetch failed: malformed response body")
	}

	c.logger.Info("fetched product catalog",
		zap.Int("products", len(page.Products)),
		zap.Int("reported_total", page.Total),
	)
	return page.Products, nil
}
