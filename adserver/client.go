package adserver

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

// Client issues ad requests to the remote ad server.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
	metrics    observability.MetricsRegistry
}

// NewClient creates an ad-server client. The logger and metrics registry are
// required; pass observability.MockMetricsRegistry when metrics are not
// collected.
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

// GetAds requests ads for the publisher. Transport failures and non-2xx
// responses abort the call; there is no retry and no partial result.
func (c *Client) GetAds(ctx context.Context, publisherID string, adReq AdRequest) (AdResponse, error) {
	start := time.Now()
	outcome := "success"
	defer func() {
		c.metrics.RecordAdRequestLatency(time.Since(start))
		c.metrics.IncrementAdRequests(outcome)
	}()

	reqBody, err := json.Marshal(adReq)
	if err != nil {
		outcome = "failure"
		return AdResponse{}, fmt.Errorf("marshal ad request: %w", err)
	}

	url := c.baseURL + "/" + publisherID
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(reqBody))
	if err != nil {
		outcome = "failure"
		return AdResponse{}, fmt.Errorf("create ad request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		outcome = "failure"
		return AdResponse{}, fmt.Errorf("ad request: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil && c.logger != nil {
			c.logger.Warn("failed to close response body", zap.Error(err))
		}
	}()

	if resp.StatusCode != http.StatusOK {
		outcome = "failure"
		body, _ := io.ReadAll(resp.Body)
		return AdResponse{}, fmt.Errorf("ad server http %d: %s", resp.StatusCode, string(body))
	}

	var adResp AdResponse
	if err := json.NewDecoder(resp.Body).Decode(&adResp); err != nil {
		outcome = "failure"
		return AdResponse{}, fmt.Errorf("decode ad response: %w", err)
	}

	c.logger.Debug("ad response received",
		zap.String("publisher_id", publisherID),
		zap.Int("placements", len(adResp.Placements)))

	return adResp, nil
}
