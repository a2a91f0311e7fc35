// Package ads is a client SDK that requests advertisements from a remote ad
// server and optionally hydrates the returned sponsored-product stubs with
// full product data from a pluggable product source.
package ads

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/vtex/ads-sdk-go/adserver"
	"github.com/vtex/ads-sdk-go/config"
	"github.com/vtex/ads-sdk-go/hydration"
	"github.com/vtex/ads-sdk-go/observability"
	"github.com/vtex/ads-sdk-go/search"
)

// Identity identifies the caller's account, publisher and shopper.
type Identity = adserver.Identity

// Facet is an opaque search filter selected by the shopper.
type Facet = adserver.Facet

// SearchParams describes the shopper's current search state.
type SearchParams = adserver.SearchOptions

// GetAdsArgs are the arguments to the SDK entry points.
type GetAdsArgs struct {
	Identity   Identity
	Search     SearchParams
	Placements map[adserver.Placement]adserver.PlacementBody
}

// RawAdsResponse carries ungrouped sponsored products by placement, without
// product hydration.
type RawAdsResponse struct {
	SponsoredProducts map[adserver.Placement][]adserver.SponsoredProductDetail `json:"sponsoredProducts"`
}

// HydratedAdsResponse carries the hydrated sponsored products plus the ads
// that could not be matched to a product.
type HydratedAdsResponse[T any] struct {
	SponsoredProducts hydration.HydratedProductsResult[T] `json:"sponsoredProducts"`
}

// Client groups the SDK's collaborators. A Client is safe for concurrent
// use; each call is independent and keeps no cross-request state.
type Client struct {
	AdServer *adserver.Client
	Search   *search.Client
	Logger   *zap.Logger
	Metrics  observability.MetricsRegistry
	tracer   trace.Tracer
}

// New constructs a Client from configuration. The logger is required; pass a
// nil metrics registry to disable metrics collection.
func New(cfg config.Config, logger *zap.Logger, metrics observability.MetricsRegistry) *Client {
	if metrics == nil {
		metrics = &observability.MockMetricsRegistry{}
	}
	return &Client{
		AdServer: adserver.NewClient(cfg.AdServerBaseURL, cfg.HTTPTimeout, logger, metrics),
		Search:   search.NewClient(cfg.SearchBaseURL, cfg.HTTPTimeout, logger, metrics),
		Logger:   logger,
		Metrics:  metrics,
		tracer:   otel.Tracer("ads-sdk"),
	}
}

// requestAds issues the ad-server call and groups the response down to its
// sponsored products.
func requestAds(ctx context.Context, c *Client, args GetAdsArgs) ([]adserver.AdsByPlacement, error) {
	adReq := adserver.BuildAdRequest(args.Identity, args.Search, args.Placements)

	resp, err := c.AdServer.GetAds(ctx, args.Identity.PublisherID, adReq)
	if err != nil {
		return nil, fmt.Errorf("get ads: %w", err)
	}

	return adserver.SponsoredProductsByPlacement(resp), nil
}

// GetRawAds fetches sponsored products without enriching them with product
// details.
func GetRawAds(ctx context.Context, c *Client, args GetAdsArgs) (*RawAdsResponse, error) {
	ctx, span := c.tracer.Start(ctx, "ads.GetRawAds")
	defer span.End()

	grouped, err := requestAds(ctx, c, args)
	if err != nil {
		return nil, err
	}

	byPlacement := make(map[adserver.Placement][]adserver.SponsoredProductDetail)
	for _, group := range grouped {
		byPlacement[group.Placement] = append(byPlacement[group.Placement], group.Ads...)
	}

	return &RawAdsResponse{SponsoredProducts: byPlacement}, nil
}

// GetHydratedAds runs the full pipeline: request ads, fetch the sponsored
// products from the caller's product source, and merge the two. The ad-server
// call strictly precedes the product fetch, which needs the response's offers
// as input. A failing fetch aborts the call with no partial result; ads that
// merely found no matching product come back in the result's Failed list.
func GetHydratedAds[T any](ctx context.Context, c *Client, args GetAdsArgs, fetcher hydration.ProductFetcher[T], matcher hydration.ProductMatcher[T]) (*HydratedAdsResponse[T], error) {
	ctx, span := c.tracer.Start(ctx, "ads.GetHydratedAds")
	defer span.End()

	start := time.Now()

	grouped, err := requestAds(ctx, c, args)
	if err != nil {
		return nil, err
	}

	offers := hydration.BuildOffers(grouped)

	products, err := fetcher.Fetch(ctx, offers, args.Identity)
	if err != nil {
		return nil, fmt.Errorf("fetch products: %w", err)
	}

	result := hydration.MergeAdsWithProducts(products, grouped, matcher)

	hydrated := 0
	for _, list := range result.ByPlacement {
		hydrated += len(list)
	}
	c.Metrics.AddHydratedAds(hydrated)
	c.Metrics.AddUnmatchedAds(len(result.Failed))
	c.Metrics.RecordHydrationLatency(time.Since(start))
	span.SetAttributes(
		attribute.Int("ads.hydrated", hydrated),
		attribute.Int("ads.unmatched", len(result.Failed)),
	)

	c.Logger.Info("ads hydrated",
		zap.String("account", args.Identity.AccountName),
		zap.Int("hydrated", hydrated),
		zap.Int("unmatched", len(result.Failed)))

	return &HydratedAdsResponse[T]{SponsoredProducts: result}, nil
}

// GetHydratedSearchAds is GetHydratedAds wired to the intelligent-search
// fetcher and matcher, the SDK's reference product source.
func GetHydratedSearchAds(ctx context.Context, c *Client, args GetAdsArgs) (*HydratedAdsResponse[search.Product], error) {
	return GetHydratedAds[search.Product](ctx, c, args, hydration.IntelligentSearchFetcher(c.Search), hydration.IntelligentSearchMatcher)
}
