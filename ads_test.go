package ads

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/vtex/ads-sdk-go/adserver"
	"github.com/vtex/ads-sdk-go/config"
	"github.com/vtex/ads-sdk-go/hydration"
	"github.com/vtex/ads-sdk-go/observability"
)

func testArgs() GetAdsArgs {
	return GetAdsArgs{
		Identity: Identity{
			AccountName: "acct",
			PublisherID: "pub1",
			UserID:      "u1",
			SessionID:   "sess1",
		},
		Search: SearchParams{Term: "tv"},
		Placements: map[adserver.Placement]adserver.PlacementBody{
			adserver.PlacementSearchTopProduct: {Quantity: 2, Types: []adserver.AdType{adserver.AdTypeProduct}},
		},
	}
}

func testClient(adServerURL, searchURL string) *Client {
	cfg := config.Config{
		AdServerBaseURL: adServerURL,
		SearchBaseURL:   searchURL,
		HTTPTimeout:     time.Second,
	}
	return New(cfg, zap.NewNop(), &observability.MockMetricsRegistry{})
}

const adResponseBody = `{
	"search_top_product": [
		{"product_sku": "sku1", "seller_id": "s1", "click_url": "c1", "impression_url": "i1", "view_url": "v1", "product_name": "A", "product_metadata": {"productId": "p1"}},
		{"product_sku": "sku2", "click_url": "c2", "impression_url": "i2", "view_url": "v2", "product_name": "B"}
	],
	"search_top_brand": [
		{"brand_name": "Acme", "ad_id": "a1", "click_url": "c", "impression_url": "i", "view_url": "v", "brand_url": "u"}
	]
}`

func TestGetRawAds(t *testing.T) {
	adServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req adserver.AdRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, adserver.ContextSearch, req.Context)
		_, _ = w.Write([]byte(adResponseBody))
	}))
	defer adServer.Close()

	c := testClient(adServer.URL, "http://unused.invalid")
	resp, err := GetRawAds(context.Background(), c, testArgs())
	require.NoError(t, err)

	// Brand ads are filtered out; both sponsored products survive.
	require.Len(t, resp.SponsoredProducts, 1)
	products := resp.SponsoredProducts[adserver.PlacementSearchTopProduct]
	require.Len(t, products, 2)
	assert.Equal(t, "sku1", products[0].ProductSku)
	assert.Equal(t, "sku2", products[1].ProductSku)
}

func TestGetRawAdsUpstreamFailure(t *testing.T) {
	adServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer adServer.Close()

	c := testClient(adServer.URL, "http://unused.invalid")
	_, err := GetRawAds(context.Background(), c, testArgs())
	assert.Error(t, err)
}

func TestGetHydratedSearchAds(t *testing.T) {
	adServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(adResponseBody))
	}))
	defer adServer.Close()

	searchSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string][]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, []string{"p1"}, body["productIds"])
		_, _ = w.Write([]byte(`{"products": [{"productId": "p1", "productName": "A", "items": [{"itemId": "sku1", "sellers": [{"sellerId": "s1"}]}]}]}`))
	}))
	defer searchSrv.Close()

	c := testClient(adServer.URL, searchSrv.URL)
	resp, err := GetHydratedSearchAds(context.Background(), c, testArgs())
	require.NoError(t, err)

	result := resp.SponsoredProducts
	require.Len(t, result.ByPlacement[adserver.PlacementSearchTopProduct], 1)
	assert.Equal(t, "p1", result.ByPlacement[adserver.PlacementSearchTopProduct][0].Product.ProductID)

	// sku2 had no catalog product and lands in Failed.
	require.Len(t, result.Failed, 1)
	assert.Equal(t, "sku2", result.Failed[0].ProductSku)
}

func TestGetHydratedAdsCustomFetcherAndMatcher(t *testing.T) {
	adServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(adResponseBody))
	}))
	defer adServer.Close()

	type customProduct struct {
		Sku    string
		Seller string
	}

	var gotOffers []hydration.Offer
	fetcher := hydration.ProductFetcherFunc[customProduct](func(ctx context.Context, offers []hydration.Offer, identity adserver.Identity) ([]customProduct, error) {
		gotOffers = offers
		return []customProduct{
			{Sku: "sku1", Seller: "s1"},
			{Sku: "sku2", Seller: "1"},
		}, nil
	})
	matcher := func(p customProduct, offer hydration.Offer) bool {
		return p.Sku == offer.SkuID && p.Seller == offer.SellerID
	}

	c := testClient(adServer.URL, "http://unused.invalid")
	resp, err := GetHydratedAds[customProduct](context.Background(), c, testArgs(), fetcher, matcher)
	require.NoError(t, err)

	// The fetcher sees the derived offers, seller defaulted for sku2.
	assert.Equal(t, []hydration.Offer{
		{SkuID: "sku1", SellerID: "s1", ProductID: "p1"},
		{SkuID: "sku2", SellerID: "1", ProductID: ""},
	}, gotOffers)

	result := resp.SponsoredProducts
	require.Len(t, result.ByPlacement[adserver.PlacementSearchTopProduct], 2)
	assert.Empty(t, result.Failed)
}

func TestGetHydratedAdsFetcherFailureAborts(t *testing.T) {
	adServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(adResponseBody))
	}))
	defer adServer.Close()

	fetcher := hydration.ProductFetcherFunc[string](func(ctx context.Context, offers []hydration.Offer, identity adserver.Identity) ([]string, error) {
		return nil, errors.New("catalog down")
	})
	matcher := func(p string, offer hydration.Offer) bool { return false }

	c := testClient(adServer.URL, "http://unused.invalid")
	resp, err := GetHydratedAds[string](context.Background(), c, testArgs(), fetcher, matcher)
	require.Error(t, err)
	assert.Nil(t, resp)
	assert.Contains(t, err.Error(), "catalog down")
}

func TestGetHydratedAdsAdServerFailureAborts(t *testing.T) {
	adServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no ads for you", http.StatusBadGateway)
	}))
	defer adServer.Close()

	fetchCalled := false
	fetcher := hydration.ProductFetcherFunc[string](func(ctx context.Context, offers []hydration.Offer, identity adserver.Identity) ([]string, error) {
		fetchCalled = true
		return nil, nil
	})
	matcher := func(p string, offer hydration.Offer) bool { return false }

	c := testClient(adServer.URL, "http://unused.invalid")
	_, err := GetHydratedAds[string](context.Background(), c, testArgs(), fetcher, matcher)
	require.Error(t, err)
	assert.False(t, fetchCalled, "fetch must not run when the ad call fails")
}
