package hydration

import (
	"context"

	"github.com/vtex/ads-sdk-go/adserver"
)

// Offer identifies one sponsorable sellable unit. See adserver.ExtractOffer
// for the derivation rules.
type Offer = adserver.Offer

// ProductMatcher reports whether a product and an offer represent the same
// sellable unit. Implementations must be pure predicates: no side effects,
// no I/O, callable many times per product.
type ProductMatcher[T any] func(product T, offer Offer) bool

// ProductFetcher retrieves product records for the given offers. A fetcher
// may return products that were not requested (the merge engine ignores
// non-matches) and may return fewer products than offers; absence is
// expressed by omission, never by an error. Errors are reserved for
// transport-level failures and abort the whole pipeline.
type ProductFetcher[T any] interface {
	Fetch(ctx context.Context, offers []Offer, identity adserver.Identity) ([]T, error)
}

// ProductFetcherFunc adapts a function to the ProductFetcher interface.
type ProductFetcherFunc[T any] func(ctx context.Context, offers []Offer, identity adserver.Identity) ([]T, error)

func (f ProductFetcherFunc[T]) Fetch(ctx context.Context, offers []Offer, identity adserver.Identity) ([]T, error) {
	return f(ctx, offers, identity)
}

// EventURLs are the tracking endpoints issued by the ad server for one ad.
type EventURLs struct {
	Click      string `json:"click"`
	Impression string `json:"impression"`
	View       string `json:"view"`
}

// Advertisement is the ad metadata attached to a hydrated product.
type Advertisement struct {
	EventURLs EventURLs `json:"eventUrls"`
	// EventParameters is the base64 encoding of the impression URL, consumed
	// by activity-flow tracking.
	EventParameters     string `json:"eventParameters"`
	SponsoredBySellerID string `json:"sponsoredBySellerId,omitempty"`
}

// HydratedSponsoredProduct pairs a fetched product with the advertisement
// that sponsored it.
type HydratedSponsoredProduct[T any] struct {
	Product       T             `json:"product"`
	Advertisement Advertisement `json:"advertisement"`
}

// HydratedProductsResult is the merge engine's output. Every input ad lands
// in exactly one of ByPlacement or Failed.
type HydratedProductsResult[T any] struct {
	ByPlacement map[adserver.Placement][]HydratedSponsoredProduct[T] `json:"byPlacement"`
	Failed      []adserver.SponsoredProductDetail                    `json:"failed"`
}
