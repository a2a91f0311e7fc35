package hydration

import (
	"github.com/vtex/ads-sdk-go/adserver"
)

// MergeAdsWithProducts associates each sponsored ad with the product record
// that sponsors it. Ads are visited in placement order, then in the ad
// server's ranking order within each placement; products are scanned
// linearly and the first match wins, so duplicate catalog entries resolve
// deterministically to the fetcher's first. Ads no product matches are
// collected in Failed, which is routine data rather than an error.
//
// The merge is a pure function of its inputs: identical inputs produce
// identical output, including ordering.
func MergeAdsWithProducts[T any](products []T, adsByPlacement []adserver.AdsByPlacement, matches ProductMatcher[T]) HydratedProductsResult[T] {
	merged := make(map[adserver.Placement][]HydratedSponsoredProduct[T])
	failed := []adserver.SponsoredProductDetail{}

	for _, group := range adsByPlacement {
		for _, ad := range group.Ads {
			offer := adserver.ExtractOffer(ad)

			found := false
			for _, product := range products {
				if matches(product, offer) {
					merged[group.Placement] = append(merged[group.Placement], BuildHydratedProduct(product, ad, offer))
					found = true
					break
				}
			}

			if !found {
				failed = append(failed, ad)
			}
		}
	}

	return HydratedProductsResult[T]{
		ByPlacement: merged,
		Failed:      failed,
	}
}
