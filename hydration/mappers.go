package hydration

import (
	"encoding/base64"

	"github.com/vtex/ads-sdk-go/adserver"
)

// BuildHydratedProduct combines a matched product with the ad's tracking
// metadata.
func BuildHydratedProduct[T any](product T, ad adserver.SponsoredProductDetail, offer Offer) HydratedSponsoredProduct[T] {
	return HydratedSponsoredProduct[T]{
		Product: product,
		Advertisement: Advertisement{
			EventURLs: EventURLs{
				Click:      ad.ClickURL,
				Impression: ad.ImpressionURL,
				View:       ad.ViewURL,
			},
			EventParameters:     base64.StdEncoding.EncodeToString([]byte(ad.ImpressionURL)),
			SponsoredBySellerID: offer.SellerID,
		},
	}
}

// BuildOffers flattens the grouped ads into their offers, in iteration order.
func BuildOffers(ads []adserver.AdsByPlacement) []Offer {
	var offers []Offer
	for _, group := range ads {
		for _, ad := range group.Ads {
			offers = append(offers, adserver.ExtractOffer(ad))
		}
	}
	return offers
}

// BuildOffersMap indexes the sponsoring seller IDs by SKU.
func BuildOffersMap(offers []Offer) map[string][]string {
	m := make(map[string][]string, len(offers))
	for _, offer := range offers {
		m[offer.SkuID] = append(m[offer.SkuID], offer.SellerID)
	}
	return m
}
