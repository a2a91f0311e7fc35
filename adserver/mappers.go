package adserver

// DefaultSellerID is assumed when the ad server omits the seller: an absent
// seller means the first-party seller.
//
// Known limitation, kept on purpose: when the sponsorship has no seller
// constraint at all (any seller offering the SKU), this narrows matching to
// seller "1" only.
const DefaultSellerID = "1"

// Offer uniquely identifies one sponsorable sellable unit derived from an ad.
type Offer struct {
	SkuID     string `json:"skuId"`
	SellerID  string `json:"sellerId"`
	ProductID string `json:"productId"`
}

// AdsByPlacement is one placement's sponsored products, in the ad server's
// ranking order.
type AdsByPlacement struct {
	Placement Placement
	Ads       []SponsoredProductDetail
}

// SponsoredProductsByPlacement partitions an ad response down to its
// sponsored-product entries, grouped by placement. Placements whose ads are
// all brands/banners are dropped; placement order and per-placement ad order
// follow the server response.
func SponsoredProductsByPlacement(resp AdResponse) []AdsByPlacement {
	var grouped []AdsByPlacement
	for _, p := range resp.Placements {
		var products []SponsoredProductDetail
		for _, ad := range p.Ads {
			if ad.Kind == AdKindProduct && ad.Product != nil {
				products = append(products, *ad.Product)
			}
		}
		if len(products) == 0 {
			continue
		}
		grouped = append(grouped, AdsByPlacement{Placement: p.Placement, Ads: products})
	}
	return grouped
}

// ExtractOffer derives the offer an ad sponsors, defaulting absent fields.
func ExtractOffer(ad SponsoredProductDetail) Offer {
	sellerID := ad.SellerID
	if sellerID == "" {
		sellerID = DefaultSellerID
	}
	productID := ""
	if ad.ProductMetadata != nil {
		productID = ad.ProductMetadata.ProductID
	}
	return Offer{
		SkuID:     ad.ProductSku,
		SellerID:  sellerID,
		ProductID: productID,
	}
}

// SkuIDs flattens the SKU IDs of all grouped ads, in iteration order.
func SkuIDs(ads []AdsByPlacement) []string {
	var ids []string
	for _, group := range ads {
		for _, ad := range group.Ads {
			ids = append(ids, ad.ProductSku)
		}
	}
	return ids
}

// ProductIDs collects the distinct product IDs referenced by the offers,
// preserving first-occurrence order. Offers without a product ID are skipped.
func ProductIDs(offers []Offer) []string {
	seen := make(map[string]struct{}, len(offers))
	var ids []string
	for _, offer := range offers {
		if offer.ProductID == "" {
			continue
		}
		if _, ok := seen[offer.ProductID]; ok {
			continue
		}
		seen[offer.ProductID] = struct{}{}
		ids = append(ids, offer.ProductID)
	}
	return ids
}
