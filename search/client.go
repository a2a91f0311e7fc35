package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"

	"github.com/vtex/ads-sdk-go/observability"
)

// Client performs bulk product lookups against the intelligent-search
// service. Lookups are scoped to an account.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
	metrics    observability.MetricsRegistry
}

// NewClient creates a product-search client.
func NewClient(baseURL string, timeout time.Duration, logger *zap.Logger, metrics observability.MetricsRegistry) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		logger:  logger,
		metrics: metrics,
	}
}

// GetProductsByIDs looks up products by product ID. Products the catalog does
// not know are simply absent from the response; only transport and decoding
// problems are errors.
func (c *Client) GetProductsByIDs(ctx context.Context, accountName string, productIDs []string) (SearchResponse, error) {
	return c.productSearch(ctx, accountName, map[string][]string{"productIds": productIDs})
}

// GetProductsBySkuID looks up products by SKU ID.
func (c *Client) GetProductsBySkuID(ctx context.Context, accountName string, skuIDs []string) (SearchResponse, error) {
	return c.productSearch(ctx, accountName, map[string][]string{"skuIds": skuIDs})
}

func (c *Client) productSearch(ctx context.Context, accountName string, body map[string][]string) (SearchResponse, error) {
	start := time.Now()
	outcome := "success"
	defer func() {
		c.metrics.RecordProductLookupLatency(time.Since(start))
		c.metrics.IncrementProductLookups(outcome)
	}()

	reqBody, err := json.Marshal(body)
	if err != nil {
		outcome = "failure"
		return SearchResponse{}, fmt.Errorf("marshal product search: %w", err)
	}

	url := c.baseURL + "/" + accountName + "/product_search"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(reqBody))
	if err != nil {
		outcome = "failure"
		return SearchResponse{}, fmt.Errorf("create product search request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		outcome = "failure"
		return SearchResponse{}, fmt.Errorf("product search request: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil && c.logger != nil {
			c.logger.Warn("failed to close response body", zap.Error(err))
		}
	}()

	if resp.StatusCode != http.StatusOK {
		outcome = "failure"
		respBody, _ := io.ReadAll(resp.Body)
		return SearchResponse{}, fmt.Errorf("product search http %d: %s", resp.StatusCode, string(respBody))
	}

	var searchResp SearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&searchResp); err != nil {
		outcome = "failure"
		return SearchResponse{}, fmt.Errorf("decode product search response: %w", err)
	}

	c.logger.Debug("product search completed",
		zap.String("account", accountName),
		zap.Int("products", len(searchResp.Products)))

	return searchResp, nil
}
